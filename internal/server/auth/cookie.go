package auth

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// RefreshCookie builds the cookie carrying a refresh token. An empty value
// with a zero maxAge clears it.
func RefreshCookie(value string, maxAge time.Duration, secure bool) *http.Cookie {
	c := &http.Cookie{
		Name:     common.RefreshTokenCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(maxAge.Seconds()),
	}
	if maxAge <= 0 {
		c.MaxAge = -1
	}
	return c
}
