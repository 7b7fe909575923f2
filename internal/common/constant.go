package common

const (
	// AccessTokenHeaderName is the gRPC metadata key carrying the access token.
	AccessTokenHeaderName = "access_token"

	// APIKeyHeaderName carries the shared key of the service principal.
	APIKeyHeaderName = "x-api-key"

	// RefreshTokenCookieName names the cookie holding the raw refresh token.
	RefreshTokenCookieName = "refresh_token"
)

// Roles known to the service.
const (
	RoleAdmin     = "admin"
	RoleUser      = "user"
	RoleService   = "service"
	RoleAnonymous = "anonymous"
)
