package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/readme-api/internal/domain"
	"github.com/phrazzld/readme-api/internal/generation"
	"github.com/phrazzld/readme-api/internal/platform/logger"
	"github.com/phrazzld/readme-api/internal/readme"
	"github.com/phrazzld/readme-api/internal/redact"
)

// Warnings reported alongside a fallback README.
const (
	WarningRepoUnavailable   = "Repository context unavailable."
	WarningAPIKeyMissing     = "Gemini API key is not configured."
	WarningTemporarilyDown   = "Gemini API is temporarily unavailable; using fallback template."
	WarningEmptyContent      = "Gemini returned empty content."
	WarningUnexpectedPayload = "Unexpected Gemini API response."
)

// Repository fetch outcomes passed to Observer.ObserveRepoFetch.
const (
	RepoFetchOK          = "ok"
	RepoFetchNotFound    = "not_found"
	RepoFetchFailed      = "failed"
	RepoFetchUnavailable = "unconfigured"
)

// RepoFetcher loads repository metadata.
type RepoFetcher interface {
	FetchRepository(ctx context.Context, ref domain.RepoRef) (*domain.Repository, error)
}

// Observer receives an event for every generation and repository fetch.
type Observer interface {
	ObserveGeneration(source, errorType string, elapsed time.Duration)
	ObserveRepoFetch(outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveGeneration(string, string, time.Duration) {}
func (noopObserver) ObserveRepoFetch(string)                         {}

// GenerateInput is a single README request.
type GenerateInput struct {
	// Input is the free-text project description. May be empty when RepoURL is set.
	Input string

	// RepoURL optionally names a GitHub repository whose metadata enriches the request.
	RepoURL string

	// UseGemini selects the language model. When false the local template is used.
	UseGemini bool
}

// ReadmeService produces README documents.
type ReadmeService interface {
	// Generate returns a README for in. It only fails when the request itself
	// cannot be served (ErrEmptyInput, ErrInvalidRepoURL, ErrRepoUnavailable);
	// every upstream failure results in a fallback README instead.
	Generate(ctx context.Context, in GenerateInput) (*domain.Readme, error)

	// GeminiConfigured reports whether a language model generator is available.
	GeminiConfigured() bool

	// Availability returns the state of the quota cooldown.
	Availability() AvailabilityStatus
}

type readmeService struct {
	generator generation.Generator
	fetcher   RepoFetcher
	tracker   *AvailabilityTracker
	observer  Observer
	logger    *slog.Logger
}

// NewReadmeService creates a ReadmeService.
//
// Parameters:
//   - generator: the language model generator, or nil when no API key is configured
//   - fetcher: the repository fetcher, or nil to disable repository context
//   - tracker: the quota cooldown tracker, or nil to disable it
//   - observer: metrics sink, or nil
//   - logger: structured logger; required
func NewReadmeService(
	generator generation.Generator,
	fetcher RepoFetcher,
	tracker *AvailabilityTracker,
	observer Observer,
	logger *slog.Logger,
) (ReadmeService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &readmeService{
		generator: generator,
		fetcher:   fetcher,
		tracker:   tracker,
		observer:  observer,
		logger:    logger.With("component", "readme_service"),
	}, nil
}

func (s *readmeService) GeminiConfigured() bool {
	return s.generator != nil
}

func (s *readmeService) Availability() AvailabilityStatus {
	return s.tracker.Status()
}

// Generate implements ReadmeService.
func (s *readmeService) Generate(ctx context.Context, in GenerateInput) (*domain.Readme, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	start := time.Now()

	hasRepo := strings.TrimSpace(in.RepoURL) != ""
	if in.Input == "" && !hasRepo {
		return nil, ErrEmptyInput
	}
	// Blank input is still a description when no repository is named; it
	// yields the placeholder document.
	hasInput := strings.TrimSpace(in.Input) != ""

	var warnings []string
	var repo *domain.Repository
	if hasRepo {
		var err error
		repo, err = s.resolveRepository(ctx, log, in.RepoURL)
		if err != nil {
			if errors.Is(err, ErrInvalidRepoURL) || !hasInput {
				return nil, err
			}
			warnings = append(warnings, WarningRepoUnavailable)
		}
	}

	description := in.Input
	if !hasInput && repo != nil {
		description = repo.FallbackDescription()
	}

	result := s.generate(ctx, log, in, description, repo, warnings)
	result.Repository = repo

	s.observer.ObserveGeneration(string(result.Source), result.ErrorType, time.Since(start))
	log.InfoContext(ctx, "README generated",
		"source", result.Source,
		"error_type", result.ErrorType,
		"warning", result.Warning,
		"has_repository", repo != nil,
		"duration_ms", time.Since(start).Milliseconds())

	return result, nil
}

// generate runs the model-or-fallback decision for an already resolved request.
func (s *readmeService) generate(
	ctx context.Context,
	log *slog.Logger,
	in GenerateInput,
	description string,
	repo *domain.Repository,
	warnings []string,
) *domain.Readme {
	fallback := func(warning string, errMsg string, errType generation.ErrorType) *domain.Readme {
		if warning != "" {
			warnings = append(warnings, warning)
		}
		return &domain.Readme{
			Content:   readme.Synthesize(description),
			Source:    domain.SourceFallback,
			Warning:   strings.Join(warnings, " "),
			Error:     errMsg,
			ErrorType: string(errType),
		}
	}

	if !in.UseGemini {
		return fallback("", "", generation.ErrorTypeNone)
	}
	if s.generator == nil {
		return fallback(WarningAPIKeyMissing, "", generation.ErrorTypeAPIKeyMissing)
	}
	if s.tracker.Degraded() {
		log.DebugContext(ctx, "Skipping Gemini call during quota cooldown")
		return fallback(WarningTemporarilyDown, "", generation.ErrorTypeQuotaExceeded)
	}

	req := generation.Request{Description: in.Input}
	if repo != nil {
		req.Repository = repo
		req.RepositoryName = repo.Ref.String()
	}

	content, err := s.generator.GenerateReadme(ctx, req)
	switch {
	case err == nil:
		s.tracker.MarkHealthy()
		return &domain.Readme{
			Content: content,
			Source:  domain.SourceGemini,
			Warning: strings.Join(warnings, " "),
		}
	case errors.Is(err, generation.ErrEmptyContent):
		return fallback(WarningEmptyContent, "", generation.ErrorTypeNone)
	case errors.Is(err, generation.ErrInvalidResponse):
		return fallback(WarningUnexpectedPayload, "", generation.ErrorTypeNone)
	}

	errType := generation.Classify(err)
	if errType == generation.ErrorTypeQuotaExceeded {
		s.tracker.MarkDegraded(string(errType))
	}
	log.ErrorContext(ctx, "Gemini generation failed, using fallback template",
		"error", redact.Error(err),
		"error_type", errType)

	return fallback("", redact.Secrets(generation.Message(err)), errType)
}

// resolveRepository parses rawURL and fetches its metadata.
func (s *readmeService) resolveRepository(ctx context.Context, log *slog.Logger, rawURL string) (*domain.Repository, error) {
	ref, err := domain.ParseRepoURL(rawURL)
	if err != nil {
		return nil, NewReadmeServiceError("parse_repo_url", "repository URL is not a GitHub repository", errors.Join(ErrInvalidRepoURL, err))
	}

	if s.fetcher == nil {
		s.observer.ObserveRepoFetch(RepoFetchUnavailable)
		return nil, NewReadmeServiceError("fetch_repository", "repository fetching is not configured", ErrRepoUnavailable)
	}

	repo, err := s.fetcher.FetchRepository(ctx, ref)
	if err != nil {
		outcome := RepoFetchFailed
		if errors.Is(err, domain.ErrRepoNotFound) {
			outcome = RepoFetchNotFound
		}
		s.observer.ObserveRepoFetch(outcome)
		log.WarnContext(ctx, "Repository context unavailable",
			"repo", ref.String(),
			"error", redact.Error(err))
		return nil, NewReadmeServiceError("fetch_repository", "could not fetch "+ref.String(), errors.Join(ErrRepoUnavailable, err))
	}

	s.observer.ObserveRepoFetch(RepoFetchOK)
	return repo, nil
}
