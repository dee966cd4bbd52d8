// Package github fetches repository metadata from the GitHub REST API through
// github.com/google/go-github and turns it into domain.Repository values.
//
// Only the repository record itself is required. README, package.json,
// languages, topics and recent commits are fetched concurrently and silently
// skipped when they are missing or the request fails.
package github
