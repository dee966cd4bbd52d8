package mocks

import (
	"sync"
	"time"
)

// GenerationObservation is one call to MockObserver.ObserveGeneration.
type GenerationObservation struct {
	Source    string
	ErrorType string
	Elapsed   time.Duration
}

// MockObserver implements service.Observer and records every observation.
type MockObserver struct {
	mu          sync.Mutex
	generations []GenerationObservation
	repoFetches []string
}

// ObserveGeneration records a generation.
func (m *MockObserver) ObserveGeneration(source, errorType string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generations = append(m.generations, GenerationObservation{Source: source, ErrorType: errorType, Elapsed: elapsed})
}

// ObserveRepoFetch records a repository fetch outcome.
func (m *MockObserver) ObserveRepoFetch(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repoFetches = append(m.repoFetches, outcome)
}

// Generations returns the recorded generations.
func (m *MockObserver) Generations() []GenerationObservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GenerationObservation(nil), m.generations...)
}

// RepoFetches returns the recorded fetch outcomes.
func (m *MockObserver) RepoFetches() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.repoFetches...)
}
