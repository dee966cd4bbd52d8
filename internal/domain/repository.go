package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// GitHubHost is the only host accepted by ParseRepoURL.
const GitHubHost = "github.com"

// readmeExcerptLimit caps how much of a repository README goes into a summary.
const readmeExcerptLimit = 4000

var (
	ownerPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// RepoRef identifies a GitHub repository.
type RepoRef struct {
	Owner string
	Name  string
}

// String returns "owner/name".
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepoURL extracts the owner and name from a GitHub repository URL.
//
// Accepted forms are https://github.com/{owner}/{repo}, the same with http or
// without a scheme, an optional "www." prefix, a trailing ".git" and any extra
// path segments (tree/main/..., issues, ...).
func ParseRepoURL(raw string) (RepoRef, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return RepoRef{}, fmt.Errorf("%w: empty", ErrInvalidRepoURL)
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return RepoRef{}, fmt.Errorf("%w: %v", ErrInvalidRepoURL, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return RepoRef{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidRepoURL, u.Scheme)
	}
	if strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.") != GitHubHost {
		return RepoRef{}, fmt.Errorf("%w: host must be %s", ErrInvalidRepoURL, GitHubHost)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return RepoRef{}, fmt.Errorf("%w: missing owner or repository name", ErrInvalidRepoURL)
	}

	ref := RepoRef{
		Owner: segments[0],
		Name:  strings.TrimSuffix(segments[1], ".git"),
	}
	if err := ref.Validate(); err != nil {
		return RepoRef{}, err
	}
	return ref, nil
}

// Validate checks that the owner and name use only characters GitHub allows.
func (r RepoRef) Validate() error {
	if !ownerPattern.MatchString(r.Owner) {
		return fmt.Errorf("%w: invalid owner %q", ErrInvalidRepoURL, r.Owner)
	}
	if !namePattern.MatchString(r.Name) || r.Name == "." || r.Name == ".." {
		return fmt.Errorf("%w: invalid repository name %q", ErrInvalidRepoURL, r.Name)
	}
	return nil
}

// Repository is the metadata gathered from a GitHub repository to enrich a
// README request. Only Ref is guaranteed; every other field is best effort.
type Repository struct {
	Ref           RepoRef
	Description   string
	HTMLURL       string
	DefaultBranch string
	Homepage      string
	License       string
	Stars         int

	// Languages are ordered by bytes of code, largest first.
	Languages []string
	Topics    []string

	// Readme is the decoded content of the existing README, if any.
	Readme string

	// Package holds the fields read from package.json, if the repository has one.
	Package *PackageManifest

	// Commits are the first lines of recent commit messages, newest first.
	Commits []string
}

// PackageManifest is the subset of package.json used in summaries.
type PackageManifest struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// DisplayName returns the best short label for the repository.
func (r *Repository) DisplayName() string {
	if r.Ref.Name != "" {
		return r.Ref.Name
	}
	if r.Package != nil {
		return r.Package.Name
	}
	return ""
}

// FallbackDescription returns text usable as a project description when the
// caller supplied none: the repository's own description when set, otherwise
// its name.
func (r *Repository) FallbackDescription() string {
	if r == nil {
		return ""
	}
	name := r.DisplayName()
	desc := strings.TrimSpace(r.Description)
	if desc == "" && r.Package != nil {
		desc = strings.TrimSpace(r.Package.Description)
	}
	switch {
	case desc == "":
		return name
	case name == "":
		return desc
	default:
		return name + "\n" + desc
	}
}

// Summary renders the repository as a plain-text block to append to a prompt.
func (r *Repository) Summary() string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Repository context:\n")
	line := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			b.WriteString(label + ": " + value + "\n")
		}
	}

	line("Name", r.Ref.String())
	line("URL", r.HTMLURL)
	line("Description", r.Description)
	line("Homepage", r.Homepage)
	line("Default branch", r.DefaultBranch)
	line("License", r.License)
	line("Languages", strings.Join(r.Languages, ", "))
	line("Topics", strings.Join(r.Topics, ", "))

	if p := r.Package; p != nil {
		line("Package", p.Name)
		line("Dependencies", strings.Join(sortedKeys(p.Dependencies), ", "))
		line("Dev dependencies", strings.Join(sortedKeys(p.DevDependencies), ", "))
		if len(p.Scripts) > 0 {
			b.WriteString("Scripts:\n")
			for _, name := range sortedKeys(p.Scripts) {
				b.WriteString("- " + name + ": " + p.Scripts[name] + "\n")
			}
		}
	}

	if len(r.Commits) > 0 {
		b.WriteString("Recent commits:\n")
		for _, msg := range r.Commits {
			b.WriteString("- " + msg + "\n")
		}
	}

	if readme := strings.TrimSpace(r.Readme); readme != "" {
		b.WriteString("Existing README:\n")
		b.WriteString(excerpt(readme, readmeExcerptLimit))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// excerpt keeps the first limit runes of s.
func excerpt(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "\n[truncated]"
}
