package api

import (
	"time"

	"github.com/phrazzld/readme-api/internal/domain"
	"github.com/phrazzld/readme-api/internal/service"
)

// GenerateReadmeRequest defines the payload for POST /api/generate-readme.
type GenerateReadmeRequest struct {
	// Input is the free-text project description.
	Input string `json:"input" validate:"required_without=RepoURL"`

	// RepoURL optionally names a GitHub repository to enrich the request.
	RepoURL string `json:"repoUrl,omitempty" validate:"omitempty,url"`

	// UseGemini defaults to true when absent.
	UseGemini *bool `json:"useGemini,omitempty"`
}

// GeminiRequested reports whether the language model should be used.
func (r GenerateReadmeRequest) GeminiRequested() bool {
	return r.UseGemini == nil || *r.UseGemini
}

// GenerateReadmeResponse is returned for every generation outcome, fallbacks included.
type GenerateReadmeResponse struct {
	Readme     string              `json:"readme"`
	Source     string              `json:"source"`
	Warning    string              `json:"warning,omitempty"`
	Error      string              `json:"error,omitempty"`
	ErrorType  string              `json:"errorType,omitempty"`
	Repository *RepositoryResponse `json:"repository,omitempty"`
}

// RepositoryResponse summarizes the repository used to enrich a README.
type RepositoryResponse struct {
	FullName    string   `json:"fullName"`
	URL         string   `json:"url,omitempty"`
	Description string   `json:"description,omitempty"`
	Stars       int      `json:"stars"`
	Languages   []string `json:"languages,omitempty"`
	Topics      []string `json:"topics,omitempty"`
}

// StatusResponse defines the response for GET /api/status.
type StatusResponse struct {
	Gemini GeminiStatus `json:"gemini"`
}

// GeminiStatus reports whether the language model path is usable.
type GeminiStatus struct {
	Configured    bool       `json:"configured"`
	Degraded      bool       `json:"degraded"`
	DegradedUntil *time.Time `json:"degradedUntil,omitempty"`
	Reason        string     `json:"reason,omitempty"`
}

func readmeToResponse(r *domain.Readme) GenerateReadmeResponse {
	resp := GenerateReadmeResponse{
		Readme:    r.Content,
		Source:    string(r.Source),
		Warning:   r.Warning,
		Error:     r.Error,
		ErrorType: r.ErrorType,
	}
	if repo := r.Repository; repo != nil {
		resp.Repository = &RepositoryResponse{
			FullName:    repo.Ref.String(),
			URL:         repo.HTMLURL,
			Description: repo.Description,
			Stars:       repo.Stars,
			Languages:   repo.Languages,
			Topics:      repo.Topics,
		}
	}
	return resp
}

func statusToResponse(configured bool, s service.AvailabilityStatus) StatusResponse {
	resp := StatusResponse{Gemini: GeminiStatus{
		Configured: configured,
		Degraded:   s.Degraded,
		Reason:     s.Reason,
	}}
	if s.Degraded {
		until := s.DegradedUntil.UTC()
		resp.Gemini.DegradedUntil = &until
	}
	return resp
}
