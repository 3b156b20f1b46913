package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/phrazzld/tasks-api/internal/platform/telemetry"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// telemetryFlushTimeout bounds how long cleanup waits for spans to export.
const telemetryFlushTimeout = 5 * time.Second

// application holds the shared application dependencies so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore    store.TaskStore
	taskService  service.TaskService
	eventEmitter *events.InMemoryEventEmitter

	shutdownTelemetry telemetry.ShutdownFunc
}

// newApplication creates an application with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.shutdownTelemetry, err = telemetry.Setup(ctx, cfg.Telemetry, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	app.taskStore = memory.NewTaskStore(logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditHandler(logger))

	app.taskService, err = service.NewTaskService(
		app.taskStore,
		logger,
		service.WithEventEmitter(app.eventEmitter),
	)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.shutdownTelemetry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := app.shutdownTelemetry(ctx); err != nil {
			app.logger.Error("Error shutting down telemetry", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
