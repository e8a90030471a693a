package memory

import (
	"context"
	"sync"

	"github.com/iho/revsync/internal/usecase"
)

// TxManager implements usecase.TransactionManager. Transactions are fully
// serialized, which stands in for the row lock postgres takes on the account.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a new TxManager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Begin starts a new transaction, blocking until no other is open.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	return &Tx{release: m.mu.Unlock}, nil
}

// Tx is a serialized in-memory transaction. Writes are applied immediately.
type Tx struct {
	once    sync.Once
	release func()
}

// Commit ends the transaction.
func (t *Tx) Commit(context.Context) error {
	t.once.Do(t.release)
	return nil
}

// Rollback ends the transaction.
func (t *Tx) Rollback(context.Context) error {
	t.once.Do(t.release)
	return nil
}
