package memory

import (
	"context"
	"sync"

	"github.com/iho/revsync/internal/domain"
)

// RunSummaryStore implements usecase.RunSummaryStore.
type RunSummaryStore struct {
	mu     sync.RWMutex
	latest map[domain.Cadence]domain.SyncRunResult
}

// NewRunSummaryStore creates a new RunSummaryStore.
func NewRunSummaryStore() *RunSummaryStore {
	return &RunSummaryStore{latest: make(map[domain.Cadence]domain.SyncRunResult)}
}

// Save replaces the latest summary for the run's cadence.
func (s *RunSummaryStore) Save(_ context.Context, run *domain.SyncRunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[run.Cadence] = *run
	return nil
}

// Latest returns the latest summary for cadence.
func (s *RunSummaryStore) Latest(_ context.Context, cadence domain.Cadence) (*domain.SyncRunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.latest[cadence]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return &run, nil
}
