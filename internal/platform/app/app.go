package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scooply/creamery/internal/platform/geocode"
	httpapi "github.com/scooply/creamery/internal/platform/http"
	"github.com/scooply/creamery/internal/platform/mail"
	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/internal/platform/store/drivers/sqlite"
	"github.com/scooply/creamery/pkg/jwtx"
	"github.com/scooply/creamery/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the platform service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	geocoder geocode.Geocoder
	mailer   mail.Mailer

	// Services
	serviceAreaService  *service.ServiceAreaService
	outletService       *service.OutletService
	inviteService       *service.InviteService
	productService      *service.ProductService
	agentService        *service.AgentService
	orderService        *service.OrderService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("PLATFORM_JWT_SECRET is required")
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "platform-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.geocoder = geocode.NewNominatim(cfg.NominatimURL)

	if cfg.ResendAPIKey != "" {
		app.mailer = mail.NewResend(cfg.ResendAPIKey, cfg.FromEmail)
	} else {
		app.logger.Warn("RESEND_API_KEY not set, invitation emails will be logged only")
		app.mailer = mail.NopMailer{}
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("platform service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down platform service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("platform service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.serviceAreaService = &service.ServiceAreaService{
		Store:    app.db,
		Geocoder: app.geocoder,
	}

	app.inviteService = &service.InviteService{
		Store:      app.db,
		Mailer:     app.mailer,
		AppBaseURL: app.cfg.AppBaseURL,
	}

	app.outletService = &service.OutletService{
		Store:    app.db,
		Geocoder: app.geocoder,
		Invites:  app.inviteService,
	}

	app.productService = &service.ProductService{
		Store:   app.db,
		Outlets: app.outletService,
	}

	app.agentService = &service.AgentService{
		Store:   app.db,
		Outlets: app.outletService,
	}

	app.orderService = &service.OrderService{
		Store:   app.db,
		Outlets: app.outletService,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	verifier := jwtx.NewHS256([]byte(app.cfg.JWTSecret), app.cfg.JWTIssuer)

	router := httpapi.NewRouter(
		verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.ServiceAreaService = app.serviceAreaService
	router.OutletService = app.outletService
	router.InviteService = app.inviteService
	router.ProductService = app.productService
	router.AgentService = app.agentService
	router.OrderService = app.orderService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
