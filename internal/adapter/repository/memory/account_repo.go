package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

// Save inserts or replaces an account.
func (r *AccountRepository) Save(account *domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := *account
	if a.Status == "" {
		a.Status = domain.AccountStatusActive
	}
	r.accounts[a.ID] = a
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

// GetByIDForUpdate retrieves an account by ID. Row locking is provided by the
// memory TxManager, which serializes transactions.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, _ usecase.Transaction, id string) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

// GetByPlatformUserID retrieves an account by its platform user id.
func (r *AccountRepository) GetByPlatformUserID(_ context.Context, platformUserID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.PlatformUserID == platformUserID {
			return &a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// ListSyncable returns active accounts, optionally restricted to ids.
func (r *AccountRepository) ListSyncable(_ context.Context, ids []string) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []*domain.Account
	for _, a := range r.accounts {
		if !a.IsSyncable() {
			continue
		}
		if len(ids) > 0 && !wanted[a.ID] {
			continue
		}
		c := a
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SearchByName finds accounts whose name contains term, case-insensitively.
func (r *AccountRepository) SearchByName(_ context.Context, term string, limit int) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	var out []*domain.Account
	for _, a := range r.accounts {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			c := a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// UpdateCachedTotal overwrites the cached revenue total.
func (r *AccountRepository) UpdateCachedTotal(_ context.Context, _ usecase.Transaction, id string, total int64, updatedAt time.Time) error {
	return r.mutate(id, func(a *domain.Account) {
		a.CachedTotal = total
		a.SummaryUpdatedAt = &updatedAt
		a.UpdatedAt = updatedAt
	})
}

// MarkFailed parks the account until it is reactivated.
func (r *AccountRepository) MarkFailed(_ context.Context, id, reason string, at time.Time) error {
	return r.mutate(id, func(a *domain.Account) {
		a.Status = domain.AccountStatusFailed
		a.FailureReason = reason
		a.UpdatedAt = at
	})
}

// Reactivate returns a failed account to scheduled syncs.
func (r *AccountRepository) Reactivate(_ context.Context, id string, at time.Time) error {
	return r.mutate(id, func(a *domain.Account) {
		a.Status = domain.AccountStatusActive
		a.FailureReason = ""
		a.UpdatedAt = at
	})
}

func (r *AccountRepository) mutate(id string, fn func(a *domain.Account)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	fn(&a)
	r.accounts[id] = a
	return nil
}
