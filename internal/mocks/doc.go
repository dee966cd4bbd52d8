// Package mocks holds hand-written test doubles for the ports of the readme
// service: MockGenerator (generation.Generator), MockRepoFetcher
// (service.RepoFetcher) and MockObserver (service.Observer).
//
// Each double returns its configured values, or delegates to an optional
// function field, and records its calls behind a mutex so tests can assert on
// them after concurrent use.
package mocks
