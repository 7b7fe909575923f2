// Package server wires storage, services and both transports into a running
// auth service and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/archive"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/events"
	"github.com/dmitrijs2005/gophauth/internal/server/httpapi"
	"github.com/dmitrijs2005/gophauth/internal/server/ratelimit"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/secrets"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/dmitrijs2005/gophauth/internal/server/sweeper"
	"github.com/dmitrijs2005/gophauth/internal/telemetry"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

// MemoryDSN selects the in-process store instead of PostgreSQL.
const MemoryDSN = "memory"

const serviceName = "gophauth"

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   events.Publisher
	tokens      *services.TokenService
	userService *services.UserService
	authn       *auth.Authenticator
	limiter     *ratelimit.Limiter
}

// NewLogger builds the process logger from c.
func NewLogger(w io.Writer, c *config.Config) logging.Logger {
	return logging.New(w, c.LogFormat, c.LogLevel)
}

// NewApp opens storage and builds every service. It does not run migrations;
// see Migrate.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	if c.DatabaseDSN == MemoryDSN {
		logger.Warn(ctx, "using in-memory storage, data is lost on exit")
		app.repomanager = memory.NewManager()
	} else {
		db, err := repomanager.Open(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		m, err := repomanager.NewPostgresRepositoryManager(db)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		app.repomanager = m
	}

	hasher, err := secrets.NewHasher(secrets.WithPepper(c.TokenPepper))
	if err != nil {
		return nil, app.closeOnError(err)
	}
	codec, err := auth.NewCodec([]byte(c.SecretKey), nil)
	if err != nil {
		return nil, app.closeOnError(err)
	}

	app.publisher = events.Nop{}
	if len(c.KafkaBrokers) > 0 {
		app.publisher = events.NewKafkaPublisher(c.KafkaBrokers, c.KafkaEventsTopic, c.KafkaMailTopic, logger)
	}

	opts := []services.TokenOption{
		services.WithClaimsResolver(services.UserClaims(app.repomanager)),
		services.WithEvents(app.publisher),
		services.WithLogger(logger),
	}
	if c.S3Bucket != "" {
		archiver, err := archive.NewS3Archiver(ctx, archive.Options{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
		})
		if err != nil {
			return nil, app.closeOnError(err)
		}
		opts = append(opts, services.WithArchiver(archiver))
	}

	app.tokens = services.NewTokenService(app.repomanager, hasher, codec, c, opts...)
	resets := services.NewPasswordResetService(app.repomanager, hasher, c.PasswordResetValidity, nil)
	app.userService = services.NewUserService(app.repomanager, app.tokens, resets, app.publisher, logger, c)
	app.authn = auth.NewAuthenticator(codec, c.APIKey)

	app.limiter, err = ratelimit.New(map[string]int{
		common.RoleAdmin:     c.RateLimitAdmin,
		common.RoleUser:      c.RateLimitUser,
		common.RoleService:   c.RateLimitService,
		common.RoleAnonymous: c.RateLimitAnonymous,
	}, c.RateLimitWindow, nil)
	if err != nil {
		return nil, app.closeOnError(err)
	}

	return app, nil
}

func (app *App) closeOnError(err error) error {
	return errors.Join(err, app.Close())
}

// Users exposes the user service to administrative commands.
func (app *App) Users() *services.UserService { return app.userService }

// Tokens exposes the refresh token lifecycle to administrative commands.
func (app *App) Tokens() *services.TokenService { return app.tokens }

// Migrate applies pending schema migrations.
func (app *App) Migrate(ctx context.Context) error {
	if err := app.repomanager.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Close releases the database and the event writers.
func (app *App) Close() error {
	var errs []error
	if app.publisher != nil {
		errs = append(errs, app.publisher.Close())
	}
	if app.db != nil {
		errs = append(errs, app.db.Close())
	}
	return errors.Join(errs...)
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s := gs.NewGRPCServer(gs.Options{
		Address:      app.config.EndpointAddrGRPC,
		AccessTTL:    app.config.AccessTokenValidityDuration,
		RefreshTTL:   app.config.RefreshTokenValidityDuration,
		CookieSecure: app.config.CookieSecure,
	}, app.logger, app.userService, app.authn, app.limiter)

	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("gRPC server: %w", err)
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context) error {
	s := httpapi.NewServer(httpapi.Options{
		Address:      app.config.EndpointAddrHTTP,
		AccessTTL:    app.config.AccessTokenValidityDuration,
		RefreshTTL:   app.config.RefreshTokenValidityDuration,
		CookieSecure: app.config.CookieSecure,
	}, app.logger, app.userService, app.authn, app.limiter)

	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("HTTP server: %w", err)
	}
	return nil
}

// Run migrates the schema, then serves both transports and the sweeper until
// ctx is canceled or a server fails. The first server error stops the rest
// and is returned.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, app.config.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			app.logger.Error(ctx, "tracing shutdown", "error", err)
		}
	}()

	if err := app.Migrate(ctx); err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	serve := func(start func(context.Context) error) {
		defer wg.Done()
		if err := start(ctx); err != nil {
			app.logger.Error(ctx, "server failed", "error", err)
			errOnce.Do(func() { firstErr = err })
			cancelFunc()
		}
	}

	wg.Add(3)
	go serve(app.startGRPCServer)
	go serve(app.startHTTPServer)
	go func() {
		defer wg.Done()
		sweeper.New(app.tokens, app.config.SweepInterval, app.logger).Run(ctx)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return firstErr
}

// Main loads configuration and runs the service until ctx is done. It is
// the body of cmd/server.
func Main(ctx context.Context) error {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := NewLogger(os.Stdout, cfg)

	app, err := NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(context.Background(), "close", "error", err)
		}
	}()

	return app.Run(ctx)
}
