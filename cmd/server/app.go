package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mdhasanali39/taskQuest-server/internal/config"
	"github.com/mdhasanali39/taskQuest-server/internal/events"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/metrics"
	"github.com/mdhasanali39/taskQuest-server/internal/service"
	"github.com/mdhasanali39/taskQuest-server/internal/service/auth"
	"github.com/mdhasanali39/taskQuest-server/internal/service/listing"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// taskStore is the instrumented store every component talks to.
	taskStore store.TaskStore

	registry *prometheus.Registry
	metrics  *metrics.Metrics

	jwtService    auth.JWTService
	listingEngine *listing.Engine
	taskService   service.TaskService
	eventEmitter  *events.InMemoryEventEmitter
}

// newApplication opens the configured task store and wires every component
// around it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	backing, err := openTaskStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	app, err := newApplicationWithStore(cfg, logger, backing)
	if err != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), storeTimeout(cfg.Database))
		defer cancel()
		_ = backing.Close(closeCtx)
		return nil, err
	}
	return app, nil
}

// newApplicationWithStore wires the application around an already opened
// store. The application takes ownership of backing and closes it in cleanup.
func newApplicationWithStore(
	cfg *config.Config,
	logger *slog.Logger,
	backing store.TaskStore,
) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)
	app.taskStore = app.metrics.InstrumentStore(backing)

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger,
		events.NewLoggingHandler(logger),
		app.metrics.EventHandler(),
	)

	app.listingEngine, err = listing.NewEngine(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing engine: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.taskStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout(app.config.Database))
		defer cancel()
		if err := app.taskStore.Close(ctx); err != nil {
			app.logger.Error("Error closing task store", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

// storeTimeout returns the configured per-operation store timeout.
func storeTimeout(cfg config.DatabaseConfig) time.Duration {
	if cfg.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
