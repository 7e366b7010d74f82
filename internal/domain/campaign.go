package domain

import (
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Valid verifica se o status informado pertence ao conjunto conhecido
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

type Campaign struct {
	ID         string         `json:"id"`
	UserID     int            `json:"user_id"`
	Name       string         `json:"name"`
	Objective  string         `json:"objective"`
	Platform   string         `json:"platform"`
	ExternalID *string        `json:"external_id,omitempty"`
	Status     CampaignStatus `json:"status"`
	Budget     float64        `json:"budget"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// HasExternalID indica se a campanha possui identificador na plataforma externa
func (c *Campaign) HasExternalID() bool {
	return c != nil && c.ExternalID != nil && *c.ExternalID != ""
}

type AdGroup struct {
	ID         string         `json:"id"`
	CampaignID string         `json:"campaign_id"`
	Name       string         `json:"name"`
	ExternalID *string        `json:"external_id,omitempty"`
	Status     CampaignStatus `json:"status"`
	BidAmount  *float64       `json:"bid_amount,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type Ad struct {
	ID          string         `json:"id"`
	AdGroupID   string         `json:"ad_group_id"`
	Name        string         `json:"name"`
	Headline    string         `json:"headline"`
	PrimaryText string         `json:"primary_text"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type CreateCampaignRequest struct {
	Name      string  `json:"name"`
	Objective string  `json:"objective"`
	Platform  string  `json:"platform"`
	Budget    float64 `json:"budget"`
}

type UpdateCampaignRequest struct {
	ID        string   `json:"id"`
	Name      *string  `json:"name,omitempty"`
	Objective *string  `json:"objective,omitempty"`
	Status    *string  `json:"status,omitempty"`
	Budget    *float64 `json:"budget,omitempty"`
}

type CreateAdGroupRequest struct {
	Name      string   `json:"name"`
	BidAmount *float64 `json:"bid_amount,omitempty"`
}
