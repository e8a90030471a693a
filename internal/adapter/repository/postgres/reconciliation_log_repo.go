package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/postgres/generated"
	"github.com/iho/revsync/internal/usecase"
)

const defaultReconciliationListLimit = 1000

// ReconciliationLogRepository implements usecase.ReconciliationLogRepository.
type ReconciliationLogRepository struct {
	queries *generated.Queries
}

// NewReconciliationLogRepository creates a new ReconciliationLogRepository.
func NewReconciliationLogRepository(pool *pgxpool.Pool) *ReconciliationLogRepository {
	return newReconciliationLogRepository(pool)
}

func newReconciliationLogRepository(db generated.DBTX) *ReconciliationLogRepository {
	return &ReconciliationLogRepository{queries: generated.New(db)}
}

// Create appends a record, inside tx when given.
func (r *ReconciliationLogRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.ReconciliationRecord) error {
	return queriesFor(r.queries, tx).CreateReconciliationRecord(ctx, generated.CreateReconciliationRecordParams{
		ID:        record.ID,
		AccountID: record.AccountID,
		Mode:      string(record.Mode),
		OldTotal:  record.OldTotal,
		NewTotal:  record.NewTotal,
		Applied:   record.Applied,
		Reason:    record.Reason,
		CreatedAt: timeToPgTimestamptz(record.CreatedAt),
	})
}

// ListByAccount lists the account's records, newest first.
func (r *ReconciliationLogRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]*domain.ReconciliationRecord, error) {
	if limit <= 0 {
		limit = defaultReconciliationListLimit
	}

	rows, err := r.queries.ListReconciliationRecords(ctx, generated.ListReconciliationRecordsParams{
		AccountID: accountID,
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, err
	}

	records := make([]*domain.ReconciliationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.ReconciliationRecord{
			ID:        row.ID,
			AccountID: row.AccountID,
			Mode:      domain.ReconcileMode(row.Mode),
			OldTotal:  row.OldTotal,
			NewTotal:  row.NewTotal,
			Applied:   row.Applied,
			Reason:    row.Reason,
			CreatedAt: row.CreatedAt.Time,
		})
	}

	return records, nil
}
