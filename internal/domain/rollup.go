package domain

import "time"

// FanTotal aggregates one counterparty's spend on an account.
type FanTotal struct {
	AccountID      string
	CounterpartyID string
	EventCount     int64
	GrossTotal     int64
	NetTotal       int64
	LastEventAt    time.Time
}

// CampaignStat holds link click-through counts for one promotional campaign.
type CampaignStat struct {
	AccountID   string
	CampaignID  string
	Name        string
	Clicks      int64
	Subscribers int64
	UpdatedAt   time.Time
}
