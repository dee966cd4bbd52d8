package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRepoURL is returned when a repository URL cannot be parsed
	// into an owner and a name.
	ErrInvalidRepoURL = errors.New("invalid repository URL")

	// ErrRepoNotFound is returned when a repository does not exist or is not visible.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
