package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/postgres/generated"
	"github.com/iho/revsync/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return newAccountRepository(pool)
}

func newAccountRepository(db generated.DBTX) *AccountRepository {
	return &AccountRepository{queries: generated.New(db)}
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByID(ctx, id)
	if err != nil {
		return nil, accountError(err)
	}

	return rowToAccount(row), nil
}

// GetByIDForUpdate retrieves an account by ID with a FOR UPDATE lock.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	row, err := queriesFor(r.queries, tx).GetAccountByIDForUpdate(ctx, id)
	if err != nil {
		return nil, accountError(err)
	}

	return rowToAccount(row), nil
}

// GetByPlatformUserID retrieves an account by its platform user id.
func (r *AccountRepository) GetByPlatformUserID(ctx context.Context, platformUserID string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByPlatformUserID(ctx, platformUserID)
	if err != nil {
		return nil, accountError(err)
	}

	return rowToAccount(row), nil
}

// ListSyncable lists active accounts, restricted to ids when given.
func (r *AccountRepository) ListSyncable(ctx context.Context, ids []string) ([]*domain.Account, error) {
	if ids == nil {
		ids = []string{}
	}

	rows, err := r.queries.ListSyncableAccounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	return rowsToAccounts(rows), nil
}

// SearchByName finds accounts whose name contains term, case-insensitively.
func (r *AccountRepository) SearchByName(ctx context.Context, term string, limit int) ([]*domain.Account, error) {
	rows, err := r.queries.SearchAccountsByName(ctx, generated.SearchAccountsByNameParams{
		Term:     likeEscaper.Replace(strings.TrimSpace(term)),
		RowLimit: int32(limit),
	})
	if err != nil {
		return nil, err
	}

	return rowsToAccounts(rows), nil
}

// UpdateCachedTotal overwrites the cached revenue total.
func (r *AccountRepository) UpdateCachedTotal(ctx context.Context, tx usecase.Transaction, id string, total int64, updatedAt time.Time) error {
	n, err := queriesFor(r.queries, tx).UpdateAccountCachedTotal(ctx, generated.UpdateAccountCachedTotalParams{
		ID:               id,
		CachedTotal:      total,
		SummaryUpdatedAt: timeToPgTimestamptz(updatedAt),
	})
	return affected(n, err)
}

// MarkFailed parks the account until it is reactivated.
func (r *AccountRepository) MarkFailed(ctx context.Context, id, reason string, at time.Time) error {
	n, err := r.queries.MarkAccountFailed(ctx, generated.MarkAccountFailedParams{
		ID:            id,
		FailureReason: reason,
		UpdatedAt:     timeToPgTimestamptz(at),
	})
	return affected(n, err)
}

// Reactivate returns a failed account to scheduled syncs.
func (r *AccountRepository) Reactivate(ctx context.Context, id string, at time.Time) error {
	n, err := r.queries.ReactivateAccount(ctx, generated.ReactivateAccountParams{
		ID:        id,
		UpdatedAt: timeToPgTimestamptz(at),
	})
	return affected(n, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func accountError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrAccountNotFound
	}
	return err
}

func affected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func rowsToAccounts(rows []generated.Account) []*domain.Account {
	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}
	return accounts
}

func rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:               row.ID,
		Name:             row.Name,
		PlatformUserID:   row.PlatformUserID,
		Status:           domain.AccountStatus(row.Status),
		FailureReason:    row.FailureReason,
		CachedTotal:      row.CachedTotal,
		SummaryUpdatedAt: pgTimestamptzToPtr(row.SummaryUpdatedAt),
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func optionalPgTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return timeToPgTimestamptz(t)
}

func pgTimestamptzToPtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}

func stringPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
