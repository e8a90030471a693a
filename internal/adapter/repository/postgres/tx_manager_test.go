package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/iho/revsync/internal/infrastructure/postgres/generated"
)

func TestTxManager_Finish(t *testing.T) {
	tests := []struct {
		name   string
		expect func(pgxmock.PgxPoolIface)
		finish func(*Tx, context.Context) error
	}{
		{
			name:   "commit",
			expect: func(p pgxmock.PgxPoolIface) { p.ExpectBegin(); p.ExpectCommit() },
			finish: (*Tx).Commit,
		},
		{
			name:   "rollback",
			expect: func(p pgxmock.PgxPoolIface) { p.ExpectBegin(); p.ExpectRollback() },
			finish: (*Tx).Rollback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockPool := newMockPool(t)
			tt.expect(mockPool)

			tx, err := newTxManagerWithPool(mockPool).Begin(ctx)
			if err != nil {
				t.Fatalf("begin: %v", err)
			}
			if err := tt.finish(tx.(*Tx), ctx); err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			assertExpectations(t, mockPool)
		})
	}
}

func TestTxManager_BeginError(t *testing.T) {
	mockPool := newMockPool(t)
	lockTimeout := errors.New("lock timeout")
	mockPool.ExpectBegin().WillReturnError(lockTimeout)

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if !errors.Is(err, lockTimeout) || tx != nil {
		t.Fatalf("expected begin error and no tx, got err=%v tx=%v", err, tx)
	}
}

func TestQueriesFor(t *testing.T) {
	mockPool := newMockPool(t)
	base := generated.New(mockPool)

	if got := queriesFor(base, nil); got != base {
		t.Fatal("expected base queries without a transaction")
	}

	mockPool.ExpectBegin()
	mockPool.ExpectRollback()
	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if got := queriesFor(base, tx); got == base {
		t.Fatal("expected queries bound to the transaction")
	}
	if got := queriesFor(base, foreignTx{}); got != base {
		t.Fatal("expected base queries for a non-pgx transaction")
	}
}

type foreignTx struct{}

func (foreignTx) Commit(context.Context) error   { return nil }
func (foreignTx) Rollback(context.Context) error { return nil }

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func assertExpectations(t *testing.T, pool pgxmock.PgxPoolIface) {
	t.Helper()
	if err := pool.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}
