package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/revsync/internal/infrastructure/postgres/generated"
	"github.com/iho/revsync/internal/usecase"
)

// dbPool is the slice of *pgxpool.Pool the repositories depend on; pgxmock
// satisfies it in tests.
type dbPool interface {
	generated.DBTX
	Begin(context.Context) (pgx.Tx, error)
}

// TxManager opens the transactions reconciliation runs under.
type TxManager struct {
	pool dbPool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return newTxManagerWithPool(pool)
}

func newTxManagerWithPool(pool dbPool) *TxManager {
	return &TxManager{pool: pool}
}

// Begin opens a transaction. Callers defer Rollback and Commit on success.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Tx is a usecase.Transaction backed by pgx.
type Tx struct {
	tx pgx.Tx
}

func (t *Tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback is a no-op once the transaction has been committed.
func (t *Tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

// PgxTx exposes the underlying transaction to sqlc queries.
func (t *Tx) PgxTx() pgx.Tx {
	return t.tx
}

// queriesFor binds base to tx. Transactions from another driver are
// ignored and the pool-bound queries are returned.
func queriesFor(base *generated.Queries, tx usecase.Transaction) *generated.Queries {
	pgTx, ok := tx.(*Tx)
	if !ok || pgTx == nil {
		return base
	}
	return base.WithTx(pgTx.PgxTx())
}
