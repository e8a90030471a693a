package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/revsync/internal/domain"
)

// RunSummaryStore implements usecase.RunSummaryStore using Redis.
// Only the latest summary per cadence is kept.
type RunSummaryStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRunSummaryStore creates a new RunSummaryStore. A zero ttl keeps summaries forever.
func NewRunSummaryStore(client *redis.Client, ttl time.Duration) *RunSummaryStore {
	return &RunSummaryStore{
		client: client,
		prefix: "runs:latest:",
		ttl:    ttl,
	}
}

// Save replaces the latest summary for the run's cadence.
func (s *RunSummaryStore) Save(ctx context.Context, run *domain.SyncRunResult) error {
	payload, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("encode run summary: %w", err)
	}
	return s.client.Set(ctx, s.prefix+string(run.Cadence), payload, s.ttl).Err()
}

// Latest returns the latest summary for cadence.
func (s *RunSummaryStore) Latest(ctx context.Context, cadence domain.Cadence) (*domain.SyncRunResult, error) {
	payload, err := s.client.Get(ctx, s.prefix+string(cadence)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	var run domain.SyncRunResult
	if err := json.Unmarshal(payload, &run); err != nil {
		return nil, fmt.Errorf("decode run summary: %w", err)
	}
	return &run, nil
}
