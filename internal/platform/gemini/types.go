package gemini

// promptData is the data passed to the prompt template.
type promptData struct {
	// RepositoryName is "owner/name" when the request came with a repository.
	RepositoryName string

	// HasRepositoryContext reports whether repository metadata is appended to the input.
	HasRepositoryContext bool
}

// endpoint is one API version and model pair the generator can call.
type endpoint struct {
	APIVersion string
	Model      string
}

// String formats the endpoint for logs.
func (e endpoint) String() string {
	return e.APIVersion + "/" + e.Model
}
