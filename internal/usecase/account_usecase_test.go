package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

func TestAccountUseCase_ListEvents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, usecase.SyncConfig{})
	f.accounts.Save(&domain.Account{ID: "A", Name: "Alpha"})
	seedLedger(t, f, "A", 100, 200, 300)

	uc := usecase.NewAccountUseCase(f.accounts, f.events)

	tests := []struct {
		name      string
		input     usecase.ListEventsInput
		wantCount int
		wantErr   error
	}{
		{name: "default page", input: usecase.ListEventsInput{AccountID: "A"}, wantCount: 3},
		{name: "limited", input: usecase.ListEventsInput{AccountID: "A", Limit: 2}, wantCount: 2},
		{name: "offset past end", input: usecase.ListEventsInput{AccountID: "A", Offset: 10}, wantCount: 0},
		{name: "unknown account", input: usecase.ListEventsInput{AccountID: "B"}, wantErr: domain.ErrAccountNotFound},
		{name: "negative offset clamps", input: usecase.ListEventsInput{AccountID: "A", Offset: -1}, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := uc.ListEvents(ctx, tt.input)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error %v", tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(events) != tt.wantCount {
				t.Errorf("expected %d events, got %d", tt.wantCount, len(events))
			}
		})
	}
}

func TestAccountUseCase_Reactivate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, usecase.SyncConfig{})
	f.accounts.Save(&domain.Account{ID: "A", Name: "Alpha"})
	if err := f.accounts.MarkFailed(ctx, "A", "gone", time.Now()); err != nil {
		t.Fatal(err)
	}

	uc := usecase.NewAccountUseCase(f.accounts, f.events)
	account, err := uc.Reactivate(ctx, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Status != domain.AccountStatusActive || account.FailureReason != "" {
		t.Errorf("expected active account, got %+v", account)
	}

	if _, err := uc.Reactivate(ctx, "missing"); err == nil {
		t.Error("expected error for missing account")
	}
	if _, err := uc.Reactivate(ctx, "  "); !errors.Is(err, domain.ErrInvalidIDFormat) {
		t.Errorf("expected ErrInvalidIDFormat, got %v", err)
	}
}
