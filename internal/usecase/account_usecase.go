package usecase

import (
	"context"
	"time"

	"github.com/iho/revsync/internal/domain"
)

// AccountUseCase handles operator-facing account operations.
type AccountUseCase struct {
	accountRepo AccountRepository
	eventRepo   LedgerEventRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, eventRepo LedgerEventRepository) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		eventRepo:   eventRepo,
	}
}

// ListEventsInput represents input for listing an account's ledger events.
type ListEventsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return uc.accountRepo.GetByID(ctx, id)
}

// ListEvents lists ledger events for an account, newest first.
func (uc *AccountUseCase) ListEvents(ctx context.Context, input ListEventsInput) ([]*domain.LedgerEvent, error) {
	if err := domain.ValidateID(input.AccountID); err != nil {
		return nil, err
	}
	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	limit, offset := domain.NormalizePage(input.Limit, input.Offset)
	return uc.eventRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}

// Reactivate returns a failed account to scheduled syncs.
func (uc *AccountUseCase) Reactivate(ctx context.Context, id string) (*domain.Account, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	if err := uc.accountRepo.Reactivate(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}
	return uc.accountRepo.GetByID(ctx, id)
}
