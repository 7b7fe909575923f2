package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto/gophauth/v1"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/ratelimit"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// Users is the part of services.UserService exposed over gRPC.
type Users interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, *models.IssuedTokenPair, error)
	Login(ctx context.Context, email, password string, client services.ClientInfo) (*models.User, *models.IssuedTokenPair, error)
	Refresh(ctx context.Context, raw string, client services.ClientInfo) (*models.IssuedTokenPair, error)
	Logout(ctx context.Context, jti string, principal *auth.Principal) error
	RevokeAll(ctx context.Context, principalID string) (int64, error)
	Sessions(ctx context.Context, principalID string) ([]*models.RefreshToken, error)
	StartPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, raw, newPassword string) error
}

// Options holds the transport settings of the gRPC server.
type Options struct {
	Address      string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	CookieSecure bool
}

type GRPCServer struct {
	address string
	opts    Options
	users   Users
	authn   *auth.Authenticator
	limiter *ratelimit.Limiter
	logger  logging.Logger
}

func NewGRPCServer(opts Options, l logging.Logger, users Users, authn *auth.Authenticator, limiter *ratelimit.Limiter) *GRPCServer {
	return &GRPCServer{
		address: opts.Address,
		opts:    opts,
		users:   users,
		authn:   authn,
		limiter: limiter,
		logger:  l.With("module", "grpc_server"),
	}
}

// newServer creates the grpc.Server with tracing and the interceptor chain
// and registers the service.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.rateLimitInterceptor, s.accessTokenInterceptor),
	)
	pb.RegisterAuthServiceServer(srv, &handler{s: s})
	return srv
}

// Serve accepts connections on lis until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}
