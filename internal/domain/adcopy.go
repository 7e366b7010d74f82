package domain

// AdCopyVariation é uma variação de texto de anúncio gerada para uma campanha
type AdCopyVariation struct {
	Headline    string `json:"headline"`
	PrimaryText string `json:"primary_text"`
	Description string `json:"description,omitempty"`
}

type GenerateAdCopyRequest struct {
	Product    string `json:"product"`
	Audience   string `json:"audience,omitempty"`
	Tone       string `json:"tone,omitempty"`
	Variations int    `json:"variations,omitempty"`
}

type GenerateAdCopyResponse struct {
	CampaignID string            `json:"campaign_id"`
	Variations []AdCopyVariation `json:"variations"`
}
