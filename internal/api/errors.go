package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/readme-api/internal/api/shared"
	"github.com/phrazzld/readme-api/internal/domain"
	"github.com/phrazzld/readme-api/internal/service"
)

// InvalidBodyMessage is returned for unreadable bodies and missing descriptions.
const InvalidBodyMessage = "Invalid request body. Please provide a project description."

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, service.ErrEmptyInput),
		errors.Is(err, service.ErrInvalidRepoURL),
		errors.Is(err, domain.ErrInvalidRepoURL),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Upstream errors
	case errors.Is(err, service.ErrRepoUnavailable):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return InvalidBodyMessage

	case errors.Is(err, service.ErrInvalidRepoURL),
		errors.Is(err, domain.ErrInvalidRepoURL):
		return "Invalid repository URL. Expected https://github.com/{owner}/{repo}."

	case errors.Is(err, service.ErrRepoUnavailable):
		return "Repository information could not be retrieved. Provide a project description or try again later."

	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. defaultMsg replaces the
// generic message for unmapped errors when it is non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		msg = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}

// HandleValidationError writes a 400 response for a request that failed
// decoding or validation.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message. Anything that is not a field
// validation error, such as malformed JSON, maps to InvalidBodyMessage.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return InvalidBodyMessage
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required", "required_without":
		return InvalidBodyMessage
	}
	if fe.Field() == "" {
		return "Validation error"
	}
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "url", "http_url":
		return "invalid URL"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
