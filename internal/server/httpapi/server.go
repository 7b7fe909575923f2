// Package httpapi exposes the auth service over JSON/HTTP with gin. Refresh
// tokens travel in an HttpOnly cookie as well as in the response body.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/ratelimit"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Users is the part of services.UserService exposed over HTTP.
type Users interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, *models.IssuedTokenPair, error)
	Login(ctx context.Context, email, password string, client services.ClientInfo) (*models.User, *models.IssuedTokenPair, error)
	Refresh(ctx context.Context, raw string, client services.ClientInfo) (*models.IssuedTokenPair, error)
	Logout(ctx context.Context, jti string, principal *auth.Principal) error
	RevokeAll(ctx context.Context, principalID string) (int64, error)
	Sessions(ctx context.Context, principalID string) ([]*models.RefreshToken, error)
	Me(ctx context.Context, principalID string) (*models.User, error)
	StartPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, raw, newPassword string) error
}

type Options struct {
	Address      string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	CookieSecure bool
}

type Server struct {
	opts    Options
	users   Users
	authn   *auth.Authenticator
	limiter *ratelimit.Limiter
	logger  logging.Logger
}

func NewServer(opts Options, l logging.Logger, users Users, authn *auth.Authenticator, limiter *ratelimit.Limiter) *Server {
	return &Server{
		opts:    opts,
		users:   users,
		authn:   authn,
		limiter: limiter,
		logger:  l.With("module", "http_server"),
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.health)

	v1 := r.Group("/api/v1/auth", s.rateLimit())
	{
		v1.POST("/register", s.register)
		v1.POST("/login", s.login)
		v1.POST("/refresh", s.refresh)
		v1.POST("/logout", s.logout)
		v1.POST("/start-password-reset", s.startPasswordReset)
		v1.POST("/password-reset", s.completePasswordReset)
	}

	protected := v1.Group("", s.requirePrincipal())
	{
		protected.POST("/logout-all", s.logoutAll)
		protected.GET("/sessions", s.sessions)
		protected.GET("/me", s.me)
	}

	return r
}

// Serve handles connections on lis until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}
