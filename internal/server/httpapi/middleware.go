package httpapi

import (
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/ratelimit"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
)

const principalKey = "principal"

func credentials(c *gin.Context) (accessToken, apiKey string) {
	return auth.BearerToken(c.GetHeader("Authorization")), c.GetHeader(common.APIKeyHeaderName)
}

// requestLogger logs one line per request; client errors at Debug, server
// errors at Error.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
		}
		switch {
		case status >= 500:
			s.logger.Error(c.Request.Context(), "request failed", args...)
		case status >= 400:
			s.logger.Debug(c.Request.Context(), "request rejected", args...)
		default:
			s.logger.Info(c.Request.Context(), "request", args...)
		}
	}
}

// rateLimit resolves the caller, stores it for later handlers and charges
// its bucket. Invalid credentials fall back to the anonymous bucket.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ratelimit.AnonymousKey

		accessToken, apiKey := credentials(c)
		if accessToken != "" || apiKey != "" {
			if p, err := s.authn.Authenticate(accessToken, apiKey); err == nil {
				c.Set(principalKey, p)
				c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
				key = ratelimit.Key(p.ID, p.Role)
			}
		}

		if !s.limiter.TryAcquire(key) {
			s.logger.Warn(c.Request.Context(), "rate limit exceeded", "key", key, "path", c.FullPath())
			fail(c, codes.ResourceExhausted, common.ErrRateLimitExceeded.Error())
			return
		}
		c.Next()
	}
}

// requirePrincipal rejects requests rateLimit could not authenticate.
func (s *Server) requirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(principalKey); ok {
			c.Next()
			return
		}
		accessToken, apiKey := credentials(c)
		if _, err := s.authn.Authenticate(accessToken, apiKey); err != nil {
			failWith(c, err)
			return
		}
		fail(c, codes.Unauthenticated, "unauthenticated")
	}
}

func principal(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
