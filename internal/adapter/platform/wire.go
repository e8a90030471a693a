package platform

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/revsync/internal/domain"
)

type transactionItem struct {
	EventID        *string         `json:"event_id"`
	OccurredAt     time.Time       `json:"occurred_at"`
	Category       string          `json:"category"`
	Gross          decimal.Decimal `json:"gross"`
	Net            decimal.Decimal `json:"net"`
	CounterpartyID *string         `json:"counterparty_id"`
	Description    *string         `json:"description"`
}

type transactionsResponse struct {
	Items         []transactionItem `json:"items"`
	NextPageToken string            `json:"next_page_token"`
	HasMore       bool              `json:"has_more"`
}

type campaignItem struct {
	CampaignID  string `json:"campaign_id"`
	Name        string `json:"name"`
	Clicks      int64  `json:"clicks"`
	Subscribers int64  `json:"subscribers"`
}

type campaignsResponse struct {
	Items []campaignItem `json:"items"`
}

type earningsResponse struct {
	Net   decimal.Decimal `json:"net"`
	Gross decimal.Decimal `json:"gross"`
}

// toPage converts a decoded response into ledger events. An item whose
// amounts are not exact in minor units, or that has no timestamp, is left
// out and listed in Rejected; the rest of the page is kept.
func (r *transactionsResponse) toPage(accountID string) *domain.LedgerPage {
	page := &domain.LedgerPage{
		Events:        make([]*domain.LedgerEvent, 0, len(r.Items)),
		NextPageToken: r.NextPageToken,
		HasMore:       r.HasMore,
	}
	for i, item := range r.Items {
		gross, err := domain.ToMinorUnits(item.Gross)
		if err != nil {
			page.Rejected = append(page.Rejected, rejectedItem(i, item, "gross", err))
			continue
		}
		net, err := domain.ToMinorUnits(item.Net)
		if err != nil {
			page.Rejected = append(page.Rejected, rejectedItem(i, item, "net", err))
			continue
		}
		if item.OccurredAt.IsZero() {
			page.Rejected = append(page.Rejected, rejectedItem(i, item, "occurred_at", errors.New("missing timestamp")))
			continue
		}

		event := &domain.LedgerEvent{
			AccountID:   accountID,
			OccurredAt:  item.OccurredAt,
			SourceKind:  domain.ParseSourceKind(item.Category),
			GrossAmount: gross,
			NetAmount:   net,
		}
		if item.CounterpartyID != nil {
			event.CounterpartyID = *item.CounterpartyID
		}
		if item.EventID != nil && *item.EventID != "" {
			ref := *item.EventID
			event.UpstreamRef = &ref
		}
		if item.Description != nil {
			event.Description = *item.Description
		}
		page.Events = append(page.Events, event)
	}
	return page
}

func (r *campaignsResponse) toStats(accountID string) []domain.CampaignStat {
	stats := make([]domain.CampaignStat, 0, len(r.Items))
	for _, item := range r.Items {
		if item.CampaignID == "" {
			continue
		}
		stats = append(stats, domain.CampaignStat{
			AccountID:   accountID,
			CampaignID:  item.CampaignID,
			Name:        item.Name,
			Clicks:      item.Clicks,
			Subscribers: item.Subscribers,
		})
	}
	return stats
}

func rejectedItem(index int, item transactionItem, field string, err error) string {
	if item.EventID != nil && *item.EventID != "" {
		return fmt.Sprintf("item %d (%s): invalid %s: %v", index, *item.EventID, field, err)
	}
	return fmt.Sprintf("item %d: invalid %s: %v", index, field, err)
}

// parseRetryAfter reads a Retry-After header in either delta-seconds or
// HTTP-date form.
func parseRetryAfter(header string) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
	}
	return 0
}
