package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/revsync/internal/domain"
)

// RollupRepository implements usecase.RollupRepository over a memory ledger.
type RollupRepository struct {
	events *LedgerEventRepository

	mu        sync.RWMutex
	fans      map[string][]domain.FanTotal
	campaigns map[string]domain.CampaignStat
}

// NewRollupRepository creates a new RollupRepository reading from events.
func NewRollupRepository(events *LedgerEventRepository) *RollupRepository {
	return &RollupRepository{
		events:    events,
		fans:      make(map[string][]domain.FanTotal),
		campaigns: make(map[string]domain.CampaignStat),
	}
}

// RefreshFanTotals recomputes per-counterparty aggregates for the account.
func (r *RollupRepository) RefreshFanTotals(_ context.Context, accountID string) (int, error) {
	byFan := make(map[string]*domain.FanTotal)
	for _, e := range r.events.byAccount(accountID) {
		f, ok := byFan[e.CounterpartyID]
		if !ok {
			f = &domain.FanTotal{AccountID: accountID, CounterpartyID: e.CounterpartyID}
			byFan[e.CounterpartyID] = f
		}
		f.EventCount++
		f.GrossTotal += e.GrossAmount
		f.NetTotal += e.NetAmount
		if e.OccurredAt.After(f.LastEventAt) {
			f.LastEventAt = e.OccurredAt
		}
	}

	fans := make([]domain.FanTotal, 0, len(byFan))
	for _, f := range byFan {
		fans = append(fans, *f)
	}
	sort.Slice(fans, func(i, j int) bool {
		if fans[i].NetTotal == fans[j].NetTotal {
			return fans[i].CounterpartyID < fans[j].CounterpartyID
		}
		return fans[i].NetTotal > fans[j].NetTotal
	})

	r.mu.Lock()
	r.fans[accountID] = fans
	r.mu.Unlock()

	return len(fans), nil
}

// UpsertCampaignStats stores campaign counters keyed by account and campaign.
func (r *RollupRepository) UpsertCampaignStats(_ context.Context, stats []domain.CampaignStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range stats {
		r.campaigns[s.AccountID+"/"+s.CampaignID] = s
	}
	return nil
}

// TopFans returns the account's highest-spending counterparties.
func (r *RollupRepository) TopFans(_ context.Context, accountID string, limit int) ([]domain.FanTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fans := r.fans[accountID]
	if limit > 0 && len(fans) > limit {
		fans = fans[:limit]
	}
	return append([]domain.FanTotal(nil), fans...), nil
}

// CampaignStats returns the stored stats for an account.
func (r *RollupRepository) CampaignStats(accountID string) []domain.CampaignStat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.CampaignStat
	for _, s := range r.campaigns {
		if s.AccountID == accountID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CampaignID < out[j].CampaignID })
	return out
}
