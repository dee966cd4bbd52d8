package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/readme-api/internal/api/shared"
	"github.com/phrazzld/readme-api/internal/platform/logger"
	"github.com/phrazzld/readme-api/internal/service"
)

// ReadmeHandler handles README generation requests.
type ReadmeHandler struct {
	readmeService service.ReadmeService
	maxInputChars int
	logger        *slog.Logger
}

// NewReadmeHandler creates a ReadmeHandler. maxInputChars caps the length of
// the description in characters; zero disables the check.
func NewReadmeHandler(readmeService service.ReadmeService, maxInputChars int, logger *slog.Logger) *ReadmeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadmeHandler{
		readmeService: readmeService,
		maxInputChars: maxInputChars,
		logger:        logger.With("component", "readme_handler"),
	}
}

// GenerateReadme handles POST /api/generate-readme.
func (h *ReadmeHandler) GenerateReadme(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateReadmeRequest
	if !decodeAndValidate(w, r, &req, maxBodyBytes(h.maxInputChars)) {
		return
	}

	if h.maxInputChars > 0 {
		if err := shared.ValidateVar(req.Input, "max="+strconv.Itoa(h.maxInputChars)); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				fmt.Sprintf("Project description is too long. Maximum length is %d characters.", h.maxInputChars),
				err)
			return
		}
	}

	readme, err := h.readmeService.Generate(r.Context(), service.GenerateInput{
		Input:     req.Input,
		RepoURL:   req.RepoURL,
		UseGemini: req.GeminiRequested(),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate README")
		return
	}

	log.DebugContext(r.Context(), "README response ready",
		"source", readme.Source,
		"bytes", len(readme.Content))

	shared.RespondWithJSON(w, r, http.StatusOK, readmeToResponse(readme))
}

// Status handles GET /api/status.
func (h *ReadmeHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK,
		statusToResponse(h.readmeService.GeminiConfigured(), h.readmeService.Availability()))
}
