package domain

// ReadmeSource identifies which path produced a README.
type ReadmeSource string

// README sources reported to clients.
const (
	SourceGemini   ReadmeSource = "gemini"
	SourceFallback ReadmeSource = "fallback"
)

// Readme is the result of one generation request. Content is always set;
// Warning, Error and ErrorType describe why the fallback was used, if it was.
type Readme struct {
	Content   string
	Source    ReadmeSource
	Warning   string
	Error     string
	ErrorType string

	// Repository is the metadata used to enrich the request, or nil.
	Repository *Repository
}

// UsedFallback reports whether the README came from the local template.
func (r *Readme) UsedFallback() bool {
	return r.Source == SourceFallback
}
