package metaclient

import (
	"context"
	"net/http"

	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
)

// Client é a superfície do integrador Meta consumida pelos casos de uso
type Client interface {
	UpdateCampaignStatus(ctx context.Context, campaignID, status string) error
	UpdateCampaignDailyBudget(ctx context.Context, campaignID string, budget float64) error
	UpdateAdSetBid(ctx context.Context, adSetID string, bid float64) error
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

// MetaClient fala com o Graph API; o ciclo de vida do token fica no TokenManager
type MetaClient struct {
	cfg    *config.Config
	tokens *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		cfg:    cfg,
		tokens: tokenManager,
	}
}

func (c *MetaClient) RefreshToken() error {
	return c.tokens.RefreshToken()
}

func (c *MetaClient) EnsureValidToken() error {
	return c.tokens.EnsureValidToken()
}

func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.tokens.HandleResponse(resp)
}
