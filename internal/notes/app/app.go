package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/technotes/internal/notes/http"
	"github.com/aussiebroadwan/technotes/internal/notes/service"
	"github.com/aussiebroadwan/technotes/internal/notes/store"
	"github.com/aussiebroadwan/technotes/internal/notes/store/drivers/mongo"
	"github.com/aussiebroadwan/technotes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/technotes/pkg/cryptox"
	"github.com/aussiebroadwan/technotes/pkg/httpx"
	"github.com/aussiebroadwan/technotes/pkg/jwtx"
	"github.com/aussiebroadwan/technotes/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// Application encapsulates the notes service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db           store.Store
	events       *slog.Logger
	eventsCloser io.Closer
	loginLimiter *httpx.WindowLimiter

	// Services
	noteService         *service.NoteService
	userService         *service.UserService
	authService         *service.AuthService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	events, closer, err := slogx.NewFileLogger(cfg.EventLogFile)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	app.events = events
	app.eventsCloser = closer

	if err := app.initServices(); err != nil {
		_ = closer.Close()
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "notes-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// OpenStore connects to the store selected by cfg.StoreDriver. Migrations are
// not applied.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case DriverMongo:
		s, err := mongo.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		s, err := sqlite.NewStore(dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("notes service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.StoreDriver,
		"auth_required", app.cfg.AuthRequired,
		"trust_proxy", app.cfg.TrustProxy,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.eventsCloser.Close()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the HTTP server, stops the housekeeping worker and closes
// the event log and store, in that order.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down notes service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.eventsCloser.Close(); err != nil {
		app.logger.Error("error closing event log", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("notes service stopped")
	return nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// initDatabase opens the configured store and applies migrations.
func (app *Application) initDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.StoreDriver)
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	secret := []byte(app.cfg.JWTSecret)
	if len(secret) == 0 {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = []byte(token)
		app.logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to create token signer: %w", err)
	}
	app.cfg.JWTSecret = string(secret)

	app.noteService = &service.NoteService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.authService = &service.AuthService{
		Store:     app.db,
		Signer:    signer,
		Issuer:    app.cfg.JWTIssuer,
		AccessTTL: app.cfg.AccessTokenTTL,
	}

	app.loginLimiter = httpx.NewWindowLimiter(app.cfg.LoginLimitRequests, app.cfg.LoginLimitWindow, httpx.SystemClock)

	app.housekeepingService = service.NewHousekeepingService(
		app.logger,
		app.cfg.HousekeepingInterval,
		service.Task{Name: "login_limiter_sweep", Run: func(ctx context.Context) error {
			if n := app.loginLimiter.Sweep(); n > 0 {
				app.logger.Debug("swept login limiter", "removed", n)
			}
			return nil
		}},
		service.Task{Name: "store_ping", Run: app.db.Ping},
	)

	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		jwtx.NewVerifierHS256([]byte(app.cfg.JWTSecret), app.cfg.JWTIssuer),
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthRequired = app.cfg.AuthRequired
	router.TrustProxy = app.cfg.TrustProxy
	router.LoginLimiter = app.loginLimiter
	router.EventLog = app.events
	router.NoteService = app.noteService
	router.UserService = app.userService
	router.AuthService = app.authService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
