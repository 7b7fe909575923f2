// Package auth issues and verifies the signed access tokens carried by every
// authenticated request, and carries the acting principal through contexts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified content of an access token.
type Claims struct {
	Subject   string
	Role      string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
	// Extra holds every claim not mapped to a field above.
	Extra map[string]any
}

// Codec signs access tokens with HS256 under a single symmetric key.
type Codec struct {
	key []byte
	now timex.Clock
}

// NewCodec fails with common.ErrConfiguration on an empty key.
// A nil clock means timex.Now.
func NewCodec(secretKey []byte, now timex.Clock) (*Codec, error) {
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("%w: empty signing key", common.ErrConfiguration)
	}
	if now == nil {
		now = timex.Now
	}
	return &Codec{key: secretKey, now: now}, nil
}

// Issue signs a token for subject valid for ttl. claims are copied into the
// payload; sub, iat and exp are always set by the codec.
func (c *Codec) Issue(subject string, claims map[string]any, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("%w: empty subject", common.ErrorValidation)
	}

	now := c.now()
	payload := jwt.MapClaims{}
	for k, v := range claims {
		payload[k] = v
	}
	payload["sub"] = subject
	payload["iat"] = jwt.NewNumericDate(now)
	payload["exp"] = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	tokenString, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry. Failures are reported as
// common.ErrTokenExpired or common.ErrTokenInvalid.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	payload := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(tokenString, payload, func(t *jwt.Token) (interface{}, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrTokenInvalid, err)
	}

	sub, err := payload.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", common.ErrTokenInvalid)
	}

	claims := &Claims{Subject: sub, Extra: map[string]any{}}
	if exp, err := payload.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := payload.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	for k, v := range payload {
		switch k {
		case "sub", "exp", "iat":
		case "role":
			claims.Role, _ = v.(string)
		case "username":
			claims.Username, _ = v.(string)
		default:
			claims.Extra[k] = v
		}
	}

	return claims, nil
}
