package gemini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/readme-api/internal/generation"
	"google.golang.org/genai"
)

// extractText returns the README text from the first candidate of resp.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}
	if candidate.Content == nil {
		return "", generation.ErrEmptyContent
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyContent
	}
	return text, nil
}

// wrapAPIError converts an error returned by the genai client into one the
// rest of the application can classify.
func wrapAPIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "Gemini API error"
		}
		return generation.NewUpstreamError(msg, apiErr.Code)
	}
	return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
}
