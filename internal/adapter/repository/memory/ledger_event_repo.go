// Package memory provides in-memory repository implementations for local
// development and tests. They honor the same contracts as the postgres
// repositories, including upsert outcomes and lease exclusivity.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// LedgerEventRepository implements usecase.LedgerEventRepository.
type LedgerEventRepository struct {
	mu     sync.RWMutex
	events map[string]domain.LedgerEvent
}

// NewLedgerEventRepository creates a new LedgerEventRepository.
func NewLedgerEventRepository() *LedgerEventRepository {
	return &LedgerEventRepository{
		events: make(map[string]domain.LedgerEvent),
	}
}

// Upsert inserts the event or refreshes its non-identity fields.
func (r *LedgerEventRepository) Upsert(_ context.Context, event *domain.LedgerEvent) (domain.UpsertOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.events[event.ID]
	if !ok {
		r.events[event.ID] = copyEvent(event)
		return domain.UpsertInserted, nil
	}

	changed := false
	if event.UpstreamRef != nil && (existing.UpstreamRef == nil || *existing.UpstreamRef != *event.UpstreamRef) {
		ref := *event.UpstreamRef
		existing.UpstreamRef = &ref
		changed = true
	}
	if event.Description != "" && event.Description != existing.Description {
		existing.Description = event.Description
		changed = true
	}
	if !changed {
		return domain.UpsertUnchanged, nil
	}

	existing.UpdatedAt = event.UpdatedAt
	r.events[event.ID] = existing
	return domain.UpsertUpdated, nil
}

// SumByAccount sums the basis amount over an account's events.
func (r *LedgerEventRepository) SumByAccount(_ context.Context, _ usecase.Transaction, accountID string, basis domain.RevenueBasis) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, e := range r.events {
		if e.AccountID == accountID {
			total += e.Amount(basis)
		}
	}
	return total, nil
}

// SumBySourceKind groups an account's basis total by source kind.
func (r *LedgerEventRepository) SumBySourceKind(_ context.Context, accountID string, basis domain.RevenueBasis) ([]domain.SourceKindTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byKind := make(map[domain.SourceKind]*domain.SourceKindTotal)
	for _, e := range r.events {
		if e.AccountID != accountID {
			continue
		}
		t, ok := byKind[e.SourceKind]
		if !ok {
			t = &domain.SourceKindTotal{SourceKind: e.SourceKind}
			byKind[e.SourceKind] = t
		}
		t.Total += e.Amount(basis)
		t.EventCount++
	}

	totals := make([]domain.SourceKindTotal, 0, len(byKind))
	for _, t := range byKind {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].SourceKind < totals[j].SourceKind })
	return totals, nil
}

// CountByAccount counts an account's events.
func (r *LedgerEventRepository) CountByAccount(_ context.Context, accountID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, e := range r.events {
		if e.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

// ListByAccount lists an account's events newest first.
func (r *LedgerEventRepository) ListByAccount(_ context.Context, accountID string, limit, offset int) ([]*domain.LedgerEvent, error) {
	all := r.byAccount(accountID)
	sort.Slice(all, func(i, j int) bool {
		if all[i].OccurredAt.Equal(all[j].OccurredAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].OccurredAt.After(all[j].OccurredAt)
	})

	if offset >= len(all) {
		return []*domain.LedgerEvent{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// Get returns a stored event by identifier.
func (r *LedgerEventRepository) Get(id string) (*domain.LedgerEvent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, false
	}
	c := copyEvent(&e)
	return &c, true
}

// Len returns the number of stored events.
func (r *LedgerEventRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

func (r *LedgerEventRepository) byAccount(accountID string) []*domain.LedgerEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.LedgerEvent
	for _, e := range r.events {
		if e.AccountID == accountID {
			c := copyEvent(&e)
			out = append(out, &c)
		}
	}
	return out
}

func copyEvent(e *domain.LedgerEvent) domain.LedgerEvent {
	c := *e
	if e.UpstreamRef != nil {
		ref := *e.UpstreamRef
		c.UpstreamRef = &ref
	}
	return c
}
