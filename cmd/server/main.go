// Package main implements the entry point for the README API server, which
// turns project descriptions into README documents using the Gemini API with
// a local template fallback.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/readme-api/internal/config"
	"github.com/phrazzld/readme-api/internal/platform/logger"
)

func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"max_input_chars", cfg.Server.MaxInputChars)
	l.Debug("LLM configuration",
		"api_key_present", cfg.LLM.GeminiAPIKey != "",
		"model", cfg.LLM.ModelName,
		"api_version", cfg.LLM.APIVersion)
	l.Debug("GitHub configuration", "token_present", cfg.GitHub.Token != "")

	return cfg, l, nil
}
