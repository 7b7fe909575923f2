package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// ServicePrincipalID identifies callers authenticated by the API key.
const ServicePrincipalID = "service"

// Authenticator resolves the caller from an access token or the service
// API key.
type Authenticator struct {
	codec  *Codec
	apiKey []byte
}

// NewAuthenticator builds an Authenticator. An empty apiKey disables the
// service principal.
func NewAuthenticator(codec *Codec, apiKey string) *Authenticator {
	a := &Authenticator{codec: codec}
	if apiKey != "" {
		a.apiKey = []byte(apiKey)
	}
	return a
}

// Authenticate checks the API key first, then the access token. With neither
// present it returns common.ErrTokenNotFound.
func (a *Authenticator) Authenticate(accessToken, apiKey string) (Principal, error) {
	if apiKey != "" {
		if a.apiKey == nil || subtle.ConstantTimeCompare([]byte(apiKey), a.apiKey) != 1 {
			return Principal{}, common.ErrInvalidCredentials
		}
		return Principal{ID: ServicePrincipalID, Role: common.RoleService}, nil
	}
	if accessToken == "" {
		return Principal{}, common.ErrTokenNotFound
	}
	claims, err := a.codec.Verify(accessToken)
	if err != nil {
		return Principal{}, err
	}
	role := claims.Role
	if role == "" {
		role = common.RoleUser
	}
	return Principal{ID: claims.Subject, Role: role, Username: claims.Username}, nil
}

// Verify exposes the underlying codec check.
func (a *Authenticator) Verify(accessToken string) (*Claims, error) {
	return a.codec.Verify(accessToken)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
