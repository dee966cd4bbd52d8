package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"text/template"
	"time"

	"github.com/phrazzld/readme-api/internal/config"
	"github.com/phrazzld/readme-api/internal/generation"
	"google.golang.org/genai"
)

// Generator implements the generation.Generator interface using Google's
// Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// promptTemplate is the parsed template for the instruction prompt
	promptTemplate *template.Template

	// client is the Gemini API client for making requests
	client *genai.Client

	// endpoints are tried in order until one call succeeds
	endpoints []endpoint
}

// Option customizes a Generator.
type Option func(*genai.ClientConfig)

// WithHTTPClient makes the generator send requests through client.
func WithHTTPClient(client *http.Client) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPClient = client
	}
}

// NewGenerator creates a new Generator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, models and generation settings
//   - opts: Optional client customizations
//
// Returns:
//   - A properly initialized Generator, or an error wrapping
//     generation.ErrMissingAPIKey or generation.ErrInvalidConfig
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, generation.ErrMissingAPIKey
	}
	if cfg.ModelName == "" || cfg.APIVersion == "" {
		return nil, fmt.Errorf("%w: model name and API version cannot be empty", generation.ErrInvalidConfig)
	}

	promptTemplate, err := loadPromptTemplate(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	endpoints := []endpoint{{APIVersion: cfg.APIVersion, Model: cfg.ModelName}}
	if cfg.FallbackModelName != "" {
		endpoints = append(endpoints, endpoint{APIVersion: cfg.FallbackAPIVersion, Model: cfg.FallbackModelName})
	}

	logger = logger.With("component", "gemini_generator")
	logger.InfoContext(ctx, "Gemini generator initialized",
		"endpoints", len(endpoints),
		"primary", endpoints[0].String())

	return &Generator{
		logger:         logger,
		config:         cfg,
		promptTemplate: promptTemplate,
		client:         client,
		endpoints:      endpoints,
	}, nil
}

// GenerateReadme writes a README for req.
//
// The primary endpoint is called first. If that call fails, the fallback
// endpoint is called once and its outcome is returned. A response that arrives
// but cannot be used (no candidates, blank text, safety block) is returned as
// is without trying the fallback.
func (g *Generator) GenerateReadme(ctx context.Context, req generation.Request) (string, error) {
	prompt, err := createPrompt(ctx, g.logger, g.promptTemplate, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
		genai.NewContentFromText(req.Input(), genai.RoleUser),
	}

	var resp *genai.GenerateContentResponse
	for i, ep := range g.endpoints {
		resp, err = g.call(ctx, ep, contents)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, ctx.Err())
		}
		if i < len(g.endpoints)-1 {
			g.logger.WarnContext(ctx, "Gemini call failed, trying fallback endpoint",
				"endpoint", ep.String(),
				"next_endpoint", g.endpoints[i+1].String(),
				"error", err)
		}
	}
	if err != nil {
		return "", wrapAPIError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini response unusable", "error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini call successful", "readme_length", len(text))
	return text, nil
}

// call makes one GenerateContent request against ep.
func (g *Generator) call(ctx context.Context, ep endpoint, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	if g.config.RequestTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(g.config.RequestTimeoutSeconds)*time.Second)
		defer cancel()
	}

	g.logger.DebugContext(ctx, "Making Gemini API call", "endpoint", ep.String())

	return g.client.Models.GenerateContent(ctx, ep.Model, contents, &genai.GenerateContentConfig{
		HTTPOptions:     &genai.HTTPOptions{APIVersion: ep.APIVersion},
		Temperature:     genai.Ptr(g.config.Temperature),
		MaxOutputTokens: g.config.MaxOutputTokens,
	})
}
