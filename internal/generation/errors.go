package generation

import (
	"context"
	"errors"
	"strings"
)

// Common errors returned by generators.
var (
	// ErrGenerationFailed is returned when generation fails for any general reason.
	ErrGenerationFailed = errors.New("failed to generate readme")

	// ErrInvalidResponse is returned when the model response has no usable candidate.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyContent is returned when the model answered with blank text.
	ErrEmptyContent = errors.New("language model returned empty content")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrQuotaExceeded is returned when the upstream quota or rate limit is exhausted.
	ErrQuotaExceeded = errors.New("language model quota exceeded")

	// ErrInvalidAPIKey is returned when the upstream rejects the API key.
	ErrInvalidAPIKey = errors.New("language model API key rejected")

	// ErrModelNotFound is returned when the configured model is missing or unsupported.
	ErrModelNotFound = errors.New("language model not found")

	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("language model API key is not configured")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ErrorType is the client-facing classification of a generation failure.
type ErrorType string

// Error types reported to API clients.
const (
	ErrorTypeNone          ErrorType = ""
	ErrorTypeAPIKeyMissing ErrorType = "api_key_missing"
	ErrorTypeAPIKeyInvalid ErrorType = "api_key_invalid"
	ErrorTypeQuotaExceeded ErrorType = "quota_exceeded"
	ErrorTypeModelNotFound ErrorType = "model_not_found"
	ErrorTypeUnknown       ErrorType = "unknown_error"
)

// Classify maps an error to an ErrorType. Errors wrapping one of this
// package's sentinels are classified by the sentinel; anything else is
// classified by its message text.
func Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ErrorTypeNone
	case errors.Is(err, ErrMissingAPIKey):
		return ErrorTypeAPIKeyMissing
	case errors.Is(err, ErrQuotaExceeded):
		return ErrorTypeQuotaExceeded
	case errors.Is(err, ErrInvalidAPIKey):
		return ErrorTypeAPIKeyInvalid
	case errors.Is(err, ErrModelNotFound):
		return ErrorTypeModelNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeUnknown
	}
	return ClassifyMessage(err.Error())
}

// ClassifyMessage classifies an upstream error message. The checks run in
// order, so a message mentioning both "quota" and "key" is a quota error.
func ClassifyMessage(msg string) ErrorType {
	switch {
	case strings.Contains(msg, "quota"):
		return ErrorTypeQuotaExceeded
	case strings.Contains(msg, "key"):
		return ErrorTypeAPIKeyInvalid
	case strings.Contains(msg, "not found"), strings.Contains(msg, "not supported"):
		return ErrorTypeModelNotFound
	default:
		return ErrorTypeUnknown
	}
}

// Sentinel returns the sentinel error matching an ErrorType, or
// ErrGenerationFailed for unknown types.
func Sentinel(t ErrorType) error {
	switch t {
	case ErrorTypeAPIKeyMissing:
		return ErrMissingAPIKey
	case ErrorTypeQuotaExceeded:
		return ErrQuotaExceeded
	case ErrorTypeAPIKeyInvalid:
		return ErrInvalidAPIKey
	case ErrorTypeModelNotFound:
		return ErrModelNotFound
	default:
		return ErrGenerationFailed
	}
}

// UpstreamError is an error reported by the language model service. Message
// is the service's own text, which is what clients see in the "error" field.
type UpstreamError struct {
	// Type is the classification of Message.
	Type ErrorType

	// Message is the upstream error message.
	Message string

	// StatusCode is the upstream HTTP status, or 0 when the request never
	// produced a response.
	StatusCode int
}

// NewUpstreamError classifies message and wraps it in an UpstreamError.
func NewUpstreamError(message string, statusCode int) *UpstreamError {
	return &UpstreamError{
		Type:       ClassifyMessage(message),
		Message:    message,
		StatusCode: statusCode,
	}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel matching the error's type so that errors.Is
// works against the package sentinels.
func (e *UpstreamError) Unwrap() error {
	return Sentinel(e.Type)
}

// Message returns the text to report to clients for err: the upstream message
// when err carries one, err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Message
	}
	return err.Error()
}
