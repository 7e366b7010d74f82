package domain

import (
	"time"
)

type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

type RecommendationType string

const (
	RecommendationLowCTR            RecommendationType = "low_ctr"
	RecommendationLowROAS           RecommendationType = "low_roas"
	RecommendationHighCPC           RecommendationType = "high_cpc"
	RecommendationLowConversionRate RecommendationType = "low_conversion_rate"
	RecommendationScaleOpportunity  RecommendationType = "scale_opportunity"
)

// Recommendation é uma sugestão pontuada produzida pelo passo de otimização.
// Não é persistida pelo motor: o chamador decide se armazena.
type Recommendation struct {
	CampaignID       string                 `json:"campaign_id"`
	CampaignName     string                 `json:"campaign_name"`
	Type             RecommendationType     `json:"type"`
	Priority         RecommendationPriority `json:"priority"`
	CurrentValue     float64                `json:"current_value"`
	Benchmark        float64                `json:"benchmark"`
	Message          string                 `json:"message"`
	SuggestedActions []string               `json:"suggested_actions"`
	CreatedAt        time.Time              `json:"created_at"`
}
