package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/readme-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateReadmeFn allows test cases to mock the GenerateReadme behavior
	GenerateReadmeFn func(ctx context.Context, req generation.Request) (string, error)

	// Default response values
	Readme string
	Err    error

	// Call tracking for verification
	GenerateReadmeCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateReadme was called
		Count int

		// Requests contains all requests passed to GenerateReadme calls
		Requests []generation.Request
	}
}

// GenerateReadme implements the generation.Generator interface
func (m *MockGenerator) GenerateReadme(ctx context.Context, req generation.Request) (string, error) {
	m.GenerateReadmeCalls.mu.Lock()
	m.GenerateReadmeCalls.Count++
	m.GenerateReadmeCalls.Requests = append(m.GenerateReadmeCalls.Requests, req)
	m.GenerateReadmeCalls.mu.Unlock()

	if m.GenerateReadmeFn != nil {
		return m.GenerateReadmeFn(ctx, req)
	}
	return m.Readme, m.Err
}

// CallCount returns how many times GenerateReadme was called.
func (m *MockGenerator) CallCount() int {
	m.GenerateReadmeCalls.mu.Lock()
	defer m.GenerateReadmeCalls.mu.Unlock()
	return m.GenerateReadmeCalls.Count
}

// LastRequest returns the most recent request, or the zero Request when there
// has been no call.
func (m *MockGenerator) LastRequest() generation.Request {
	m.GenerateReadmeCalls.mu.Lock()
	defer m.GenerateReadmeCalls.mu.Unlock()
	if n := len(m.GenerateReadmeCalls.Requests); n > 0 {
		return m.GenerateReadmeCalls.Requests[n-1]
	}
	return generation.Request{}
}

// NewMockGeneratorWithReadme creates a MockGenerator that returns readme
func NewMockGeneratorWithReadme(readme string) *MockGenerator {
	return &MockGenerator{Readme: readme}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}
