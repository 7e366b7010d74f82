package domain

import (
	"time"
)

// PerformanceRecord representa uma linha diária de performance, imutável após gravada.
// As razões derivadas (CTR, CPC, ROAS) nunca são lidas daqui: o agregador recalcula
// tudo a partir dos contadores brutos para evitar divergência.
type PerformanceRecord struct {
	ID          int64     `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	AdGroupID   *string   `json:"ad_group_id,omitempty"`
	AdID        *string   `json:"ad_id,omitempty"`
	Platform    string    `json:"platform"`
	Date        time.Time `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	Cost        float64   `json:"cost"`
	Revenue     float64   `json:"revenue"`
	CreatedAt   time.Time `json:"created_at"`
}

// CampaignMetrics é o conjunto agregado de métricas de uma campanha em uma janela de datas
type CampaignMetrics struct {
	CampaignID     string  `json:"campaign_id"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	Cost           float64 `json:"cost"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	ROAS           float64 `json:"roas"`
	ConversionRate float64 `json:"conversion_rate"`
}

func (m *CampaignMetrics) IsEmpty() bool {
	if m == nil {
		return true
	}

	return m.Impressions == 0 && m.Clicks == 0 && m.Cost == 0 && m.Revenue == 0
}
