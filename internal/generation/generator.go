package generation

import (
	"context"
	"strings"
)

// RepoContext carries repository metadata gathered before generation.
// It is rendered into the prompt as an extra block after the description.
type RepoContext interface {
	// Summary renders the repository metadata as plain text.
	Summary() string
}

// Request is the input to a single README generation.
type Request struct {
	// Description is the free-text project description supplied by the user.
	Description string

	// Repository is optional repository metadata. Nil when none was requested
	// or it could not be fetched.
	Repository RepoContext

	// RepositoryName is the "owner/name" of the repository, if any.
	RepositoryName string
}

// Input returns the text sent to the model as user content.
func (r Request) Input() string {
	if r.Repository == nil {
		return r.Description
	}
	summary := strings.TrimSpace(r.Repository.Summary())
	if summary == "" {
		return r.Description
	}
	if strings.TrimSpace(r.Description) == "" {
		return summary
	}
	return r.Description + "\n\n" + summary
}

// Generator produces README documents from project descriptions.
type Generator interface {
	// GenerateReadme returns a Markdown README for the request, or an error
	// wrapping one of the sentinel errors in this package.
	GenerateReadme(ctx context.Context, req Request) (string, error)
}
