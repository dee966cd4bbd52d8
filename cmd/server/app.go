package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/readme-api/internal/api"
	"github.com/phrazzld/readme-api/internal/app"
	"github.com/phrazzld/readme-api/internal/config"
	"github.com/phrazzld/readme-api/internal/platform/metrics"
	"github.com/phrazzld/readme-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	metrics       *metrics.Recorder
	readmeService service.ReadmeService
	readmeHandler *api.ReadmeHandler
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...func(*app.Options)) (*application, error) {
	var o app.Options
	for _, opt := range opts {
		opt(&o)
	}

	c, err := app.Build(ctx, cfg, logger, o)
	if err != nil {
		return nil, err
	}

	a := &application{
		config:        cfg,
		logger:        logger,
		metrics:       c.Metrics,
		readmeService: c.ReadmeService,
	}
	a.readmeHandler = api.NewReadmeHandler(c.ReadmeService, cfg.Server.MaxInputChars, logger)

	logger.Info("Application initialized successfully")
	return a, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (a *application) Run(ctx context.Context) error {
	router := a.setupRouter()

	if err := a.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (a *application) cleanup() {
	a.logger.Info("Application shutdown completed")
}
