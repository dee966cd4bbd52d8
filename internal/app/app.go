// Package app assembles the README service and its adapters from
// configuration. Both the HTTP server and the CLI build on it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/readme-api/internal/config"
	"github.com/phrazzld/readme-api/internal/generation"
	"github.com/phrazzld/readme-api/internal/platform/gemini"
	"github.com/phrazzld/readme-api/internal/platform/github"
	"github.com/phrazzld/readme-api/internal/platform/metrics"
	"github.com/phrazzld/readme-api/internal/service"
)

// Components holds the assembled dependencies.
type Components struct {
	Config        *config.Config
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
	Tracker       *service.AvailabilityTracker
	ReadmeService service.ReadmeService

	// Generator is nil when no Gemini API key is configured.
	Generator generation.Generator
}

// Options customize Build.
type Options struct {
	// HTTPClient is used by the Gemini and GitHub adapters. Nil means the
	// default client.
	HTTPClient *http.Client

	// DisableMetrics skips creating the metrics recorder.
	DisableMetrics bool
}

// Build creates all components for cfg.
//
// A missing Gemini API key is not an error: the service then answers every
// request from the fallback template.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Components, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	c := &Components{
		Config:  cfg,
		Logger:  logger,
		Tracker: service.NewAvailabilityTracker(time.Duration(cfg.LLM.DegradedCooldownMinutes) * time.Minute),
	}

	var geminiOpts []gemini.Option
	if opts.HTTPClient != nil {
		geminiOpts = append(geminiOpts, gemini.WithHTTPClient(opts.HTTPClient))
	}
	gen, err := gemini.NewGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM, geminiOpts...)
	switch {
	case errors.Is(err, generation.ErrMissingAPIKey):
		logger.Warn("Gemini API key not configured; every README will use the fallback template")
	case err != nil:
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	default:
		c.Generator = gen
		logger.Info("LLM generator initialized",
			"model", cfg.LLM.ModelName,
			"api_version", cfg.LLM.APIVersion,
			"fallback_model", cfg.LLM.FallbackModelName)
	}

	fetcher, err := github.NewClient(logger, cfg.GitHub, opts.HTTPClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GitHub client: %w", err)
	}
	logger.Info("GitHub client initialized", "authenticated", cfg.GitHub.Token != "")

	var observer service.Observer
	if !opts.DisableMetrics {
		c.Metrics = metrics.New()
		observer = c.Metrics
	}

	c.ReadmeService, err = service.NewReadmeService(c.Generator, fetcher, c.Tracker, observer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create readme service: %w", err)
	}

	return c, nil
}
