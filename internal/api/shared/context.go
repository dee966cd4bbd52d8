package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/readme-api/internal/platform/logger"
)

// TraceIDHeader carries the trace ID on requests and responses.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a random trace ID.
func NewTraceID() string {
	return uuid.NewString()
}

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, NewTraceID())
}

// WithTraceID adds the given trace ID to the context. The logger's context
// handler picks it up, so every record logged with ctx carries it.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return logger.WithRequestID(ctx, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	return logger.RequestIDFromContext(ctx)
}

// ValidTraceID reports whether an incoming trace ID can be reused.
func ValidTraceID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
