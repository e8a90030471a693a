package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request's struct tags.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("validation: %s", strings.Join(msgs, "; "))
}

// SyncRequest is the optional body of a sync trigger.
type SyncRequest struct {
	AccountIDs []string `json:"account_ids" validate:"omitempty,max=1000,dive,required,max=64"`
	FullResync bool     `json:"full_resync"`
}

// ToRunOptions converts to use case input.
func (r *SyncRequest) ToRunOptions(cadence domain.Cadence) usecase.RunOptions {
	return usecase.RunOptions{
		Cadence:    cadence,
		AccountIDs: r.AccountIDs,
		FullResync: r.FullResync,
	}
}

// WebhookEventRequest is a platform-pushed ledger event. Amounts are decimal
// major units.
type WebhookEventRequest struct {
	PlatformUserID string          `json:"platform_user_id" validate:"required,max=128"`
	EventID        string          `json:"event_id"         validate:"max=256"`
	OccurredAt     time.Time       `json:"occurred_at"      validate:"required"`
	Category       string          `json:"category"         validate:"required,max=64"`
	Gross          decimal.Decimal `json:"gross"`
	Net            decimal.Decimal `json:"net"`
	CounterpartyID string          `json:"counterparty_id"  validate:"max=128"`
	Description    string          `json:"description"      validate:"max=1024"`
}

// ToUseCaseInput converts to use case input. Amounts must be exact in minor units.
func (r *WebhookEventRequest) ToUseCaseInput() (usecase.WebhookEventInput, error) {
	gross, err := domain.ToMinorUnits(r.Gross)
	if err != nil {
		return usecase.WebhookEventInput{}, fmt.Errorf("gross: %w", err)
	}
	net, err := domain.ToMinorUnits(r.Net)
	if err != nil {
		return usecase.WebhookEventInput{}, fmt.Errorf("net: %w", err)
	}
	return usecase.WebhookEventInput{
		PlatformUserID: r.PlatformUserID,
		OccurredAt:     r.OccurredAt,
		Category:       r.Category,
		GrossAmount:    gross,
		NetAmount:      net,
		CounterpartyID: r.CounterpartyID,
		UpstreamRef:    r.EventID,
		Description:    r.Description,
	}, nil
}
