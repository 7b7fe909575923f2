package models

import "time"

// RefreshToken is the persisted record of an issued refresh token.
// Only the digest of the raw token is stored.
type RefreshToken struct {
	ID            string
	JTI           string
	PrincipalID   string
	ClientID      *string
	TokenHash     string
	CreatedAt     time.Time
	LastUsedAt    *time.Time
	ExpiresAt     time.Time
	Revoked       bool
	ReplacedByJTI *string
	IPAddress     *string
	UserAgent     *string
}

// Active reports whether the token can still be rotated at now.
func (t *RefreshToken) Active(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// IssuedTokenPair is returned to the caller once; the raw refresh token is
// not recoverable afterwards.
type IssuedTokenPair struct {
	AccessToken  string
	RefreshToken string
	JTI          string
	ExpiresAt    time.Time
}
