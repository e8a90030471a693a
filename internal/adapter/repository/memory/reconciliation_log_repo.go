package memory

import (
	"context"
	"sync"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// ReconciliationLogRepository implements usecase.ReconciliationLogRepository.
type ReconciliationLogRepository struct {
	mu      sync.RWMutex
	records []domain.ReconciliationRecord
}

// NewReconciliationLogRepository creates a new ReconciliationLogRepository.
func NewReconciliationLogRepository() *ReconciliationLogRepository {
	return &ReconciliationLogRepository{}
}

// Create appends a record.
func (r *ReconciliationLogRepository) Create(_ context.Context, _ usecase.Transaction, record *domain.ReconciliationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

// ListByAccount returns an account's records newest first.
func (r *ReconciliationLogRepository) ListByAccount(_ context.Context, accountID string, limit int) ([]*domain.ReconciliationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.ReconciliationRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].AccountID != accountID {
			continue
		}
		rec := r.records[i]
		out = append(out, &rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
