package memory

import (
	"context"
	"sync"
	"time"

	"github.com/iho/revsync/internal/domain"
)

// CursorStore implements usecase.CursorStore as a map from account to lease state.
type CursorStore struct {
	mu      sync.Mutex
	cursors map[string]domain.SyncCursor
	now     func() time.Time
}

// NewCursorStore creates a new CursorStore.
func NewCursorStore() *CursorStore {
	return &CursorStore{
		cursors: make(map[string]domain.SyncCursor),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the store's clock.
func (s *CursorStore) WithClock(now func() time.Time) *CursorStore {
	s.now = now
	return s
}

// Acquire takes the lease for owner, creating the cursor on first sync.
func (s *CursorStore) Acquire(_ context.Context, accountID, owner string, staleAfter time.Duration) (*domain.SyncCursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, ok := s.cursors[accountID]
	if !ok {
		c = domain.SyncCursor{AccountID: accountID}
	}
	if !c.LeaseAvailable(now, staleAfter) {
		return nil, domain.ErrSyncInProgress
	}

	c.SyncInProgress = true
	c.LeaseOwner = owner
	c.LeaseAcquiredAt = &now
	c.UpdatedAt = now
	s.cursors[accountID] = c

	out := c
	return &out, nil
}

// Advance moves the watermark while owner holds the lease.
func (s *CursorStore) Advance(_ context.Context, accountID, owner string, position domain.Cursor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cursors[accountID]
	if !ok || !c.SyncInProgress || c.LeaseOwner != owner {
		return domain.ErrLeaseLost
	}

	if !position.Since.IsZero() {
		since := position.Since
		c.LastSyncedAt = &since
	}
	c.PageToken = position.PageToken
	c.UpdatedAt = s.now()
	s.cursors[accountID] = c
	return nil
}

// Release clears the lease held by owner.
func (s *CursorStore) Release(_ context.Context, accountID, owner, lastError string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cursors[accountID]
	if !ok || c.LeaseOwner != owner {
		return domain.ErrLeaseLost
	}

	c.SyncInProgress = false
	c.LastError = lastError
	c.UpdatedAt = s.now()
	s.cursors[accountID] = c
	return nil
}

// Get returns the account's cursor.
func (s *CursorStore) Get(_ context.Context, accountID string) (*domain.SyncCursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cursors[accountID]
	if !ok {
		return nil, domain.ErrCursorNotFound
	}
	return &c, nil
}
