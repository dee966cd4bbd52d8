// Package service contains the application-specific use cases. It orchestrates
// the generation port, the repository fetcher and the local README synthesizer
// to fulfill a README request.
//
// The central use case is ReadmeService.Generate, which always produces a
// README unless the request itself is unusable: when the language model is
// disabled, unconfigured, temporarily unavailable or failing, the service
// falls back to the deterministic synthesizer and reports why.
//
// Key components:
//
// 1. ReadmeService:
//   - Resolves optional repository context
//   - Decides between the language model and the local template
//   - Records every outcome through an Observer
//
// 2. AvailabilityTracker:
//   - Remembers a recent quota failure for a cooldown period so that later
//     requests skip the upstream call
//
// The service depends on the generation port and on small interfaces it
// defines itself (RepoFetcher, Observer), never on concrete adapters.
package service
