package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// FakeLedgerEventRepository is a hand-rolled LedgerEventRepository with optional overrides.
// Without func overrides it behaves as a map keyed on event identifier.
type FakeLedgerEventRepository struct {
	mu     sync.RWMutex
	events map[string]domain.LedgerEvent

	UpsertFunc       func(ctx context.Context, event *domain.LedgerEvent) (domain.UpsertOutcome, error)
	SumByAccountFunc func(ctx context.Context, tx usecase.Transaction, accountID string, basis domain.RevenueBasis) (int64, error)
}

func NewFakeLedgerEventRepository() *FakeLedgerEventRepository {
	return &FakeLedgerEventRepository{
		events: make(map[string]domain.LedgerEvent),
	}
}

func (m *FakeLedgerEventRepository) Upsert(ctx context.Context, event *domain.LedgerEvent) (domain.UpsertOutcome, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.events[event.ID]
	if !ok {
		m.events[event.ID] = *event
		return domain.UpsertInserted, nil
	}
	if event.Description != "" && event.Description != existing.Description {
		existing.Description = event.Description
		m.events[event.ID] = existing
		return domain.UpsertUpdated, nil
	}
	return domain.UpsertUnchanged, nil
}

func (m *FakeLedgerEventRepository) SumByAccount(ctx context.Context, tx usecase.Transaction, accountID string, basis domain.RevenueBasis) (int64, error) {
	if m.SumByAccountFunc != nil {
		return m.SumByAccountFunc(ctx, tx, accountID, basis)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total int64
	for _, e := range m.events {
		if e.AccountID == accountID {
			total += e.Amount(basis)
		}
	}
	return total, nil
}

func (m *FakeLedgerEventRepository) SumBySourceKind(ctx context.Context, accountID string, basis domain.RevenueBasis) ([]domain.SourceKindTotal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	byKind := make(map[domain.SourceKind]int64)
	counts := make(map[domain.SourceKind]int64)
	for _, e := range m.events {
		if e.AccountID == accountID {
			byKind[e.SourceKind] += e.Amount(basis)
			counts[e.SourceKind]++
		}
	}
	var totals []domain.SourceKindTotal
	for kind, total := range byKind {
		totals = append(totals, domain.SourceKindTotal{SourceKind: kind, Total: total, EventCount: counts[kind]})
	}
	return totals, nil
}

func (m *FakeLedgerEventRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, e := range m.events {
		if e.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (m *FakeLedgerEventRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.LedgerEvent
	for _, e := range m.events {
		if e.AccountID == accountID {
			c := e
			out = append(out, &c)
		}
	}
	return out, nil
}

// Len returns the number of stored events.
func (m *FakeLedgerEventRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// FakeLedgerFetcher serves scripted pages keyed by page token. The empty token
// is the first page.
type FakeLedgerFetcher struct {
	mu    sync.Mutex
	Pages map[string]*domain.LedgerPage
	Calls []domain.Cursor

	FetchPageFunc          func(ctx context.Context, account *domain.Account, position domain.Cursor) (*domain.LedgerPage, error)
	FetchCampaignsFunc     func(ctx context.Context, account *domain.Account) ([]domain.CampaignStat, error)
	FetchEarningsTotalFunc func(ctx context.Context, account *domain.Account, basis domain.RevenueBasis) (int64, error)
}

func NewFakeLedgerFetcher() *FakeLedgerFetcher {
	return &FakeLedgerFetcher{
		Pages: make(map[string]*domain.LedgerPage),
	}
}

func (m *FakeLedgerFetcher) FetchPage(ctx context.Context, account *domain.Account, position domain.Cursor) (*domain.LedgerPage, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, position)
	m.mu.Unlock()

	if m.FetchPageFunc != nil {
		return m.FetchPageFunc(ctx, account, position)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	page, ok := m.Pages[position.PageToken]
	if !ok {
		return &domain.LedgerPage{}, nil
	}
	return clonePage(page), nil
}

func (m *FakeLedgerFetcher) FetchCampaigns(ctx context.Context, account *domain.Account) ([]domain.CampaignStat, error) {
	if m.FetchCampaignsFunc != nil {
		return m.FetchCampaignsFunc(ctx, account)
	}
	return nil, nil
}

func (m *FakeLedgerFetcher) FetchEarningsTotal(ctx context.Context, account *domain.Account, basis domain.RevenueBasis) (int64, error) {
	if m.FetchEarningsTotalFunc != nil {
		return m.FetchEarningsTotalFunc(ctx, account, basis)
	}
	return 0, fmt.Errorf("earnings total not scripted")
}

// CallCount returns how many pages were requested.
func (m *FakeLedgerFetcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// clonePage copies events so each fetch hands out fresh values, as a real
// decoder would.
func clonePage(p *domain.LedgerPage) *domain.LedgerPage {
	out := &domain.LedgerPage{NextPageToken: p.NextPageToken, HasMore: p.HasMore}
	out.Rejected = append(out.Rejected, p.Rejected...)
	for _, e := range p.Events {
		c := *e
		out.Events = append(out.Events, &c)
	}
	return out
}

// FakeRetrier runs the operation once unless RetryFunc is set.
type FakeRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewFakeRetrier() *FakeRetrier {
	return &FakeRetrier{}
}

func (m *FakeRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// SequentialIDGenerator returns sequential identifiers.
type SequentialIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	return &SequentialIDGenerator{prefix: prefix}
}

func (m *SequentialIDGenerator) Generate() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("%s-%d", m.prefix, m.next)
}
