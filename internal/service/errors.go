package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in ReadmeServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrEmptyInput indicates that neither a description nor a repository was given.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyInput = errors.New("project description or repository is required")

	// ErrInvalidRepoURL indicates that the repository URL could not be parsed.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidRepoURL = errors.New("invalid repository URL")

	// ErrRepoUnavailable indicates that repository context was the only input
	// and could not be fetched.
	// API layer should map this to HTTP 502 Bad Gateway.
	ErrRepoUnavailable = errors.New("repository context unavailable")
)

// ReadmeServiceError wraps errors from the readme service with context.
type ReadmeServiceError struct {
	// Operation is the operation that failed (e.g., "parse_repo_url", "fetch_repository")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ReadmeServiceError.
func (e *ReadmeServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("readme service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("readme service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ReadmeServiceError) Unwrap() error {
	return e.Err
}

// NewReadmeServiceError creates a new ReadmeServiceError.
func NewReadmeServiceError(operation, message string, err error) *ReadmeServiceError {
	return &ReadmeServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
