package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/readme-api/internal/domain"
)

// MockRepoFetcher implements service.RepoFetcher for testing
type MockRepoFetcher struct {
	FetchRepositoryFn func(ctx context.Context, ref domain.RepoRef) (*domain.Repository, error)

	Repository *domain.Repository
	Err        error

	mu   sync.Mutex
	refs []domain.RepoRef
}

// FetchRepository records ref and returns the configured result.
func (m *MockRepoFetcher) FetchRepository(ctx context.Context, ref domain.RepoRef) (*domain.Repository, error) {
	m.mu.Lock()
	m.refs = append(m.refs, ref)
	m.mu.Unlock()

	if m.FetchRepositoryFn != nil {
		return m.FetchRepositoryFn(ctx, ref)
	}
	return m.Repository, m.Err
}

// Refs returns the refs passed to FetchRepository so far.
func (m *MockRepoFetcher) Refs() []domain.RepoRef {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.RepoRef, len(m.refs))
	copy(out, m.refs)
	return out
}
