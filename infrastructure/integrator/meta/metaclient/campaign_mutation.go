package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// MutationResponse representa a resposta da API do Meta para operações de escrita
type MutationResponse struct {
	Success bool `json:"success"`
}

// UpdateCampaignStatus altera o status de uma campanha no Meta (ACTIVE ou PAUSED)
func (c *MetaClient) UpdateCampaignStatus(ctx context.Context, campaignID, status string) error {
	params := url.Values{}
	params.Add("status", status)

	return c.postMutation(ctx, campaignID, params)
}

// UpdateCampaignDailyBudget altera o orçamento diário de uma campanha no Meta.
// A API do Meta espera o valor em centavos.
func (c *MetaClient) UpdateCampaignDailyBudget(ctx context.Context, campaignID string, budget float64) error {
	budgetInCents := int64(budget * 100)

	params := url.Values{}
	params.Add("daily_budget", fmt.Sprintf("%d", budgetInCents))

	return c.postMutation(ctx, campaignID, params)
}

// UpdateAdSetBid altera o valor de lance de um conjunto de anúncios no Meta.
// A API do Meta espera o valor em centavos.
func (c *MetaClient) UpdateAdSetBid(ctx context.Context, adSetID string, bid float64) error {
	bidInCents := int64(bid * 100)

	params := url.Values{}
	params.Add("bid_amount", fmt.Sprintf("%d", bidInCents))

	return c.postMutation(ctx, adSetID, params)
}

// postMutation envia um POST para o Graph API no nó informado
func (c *MetaClient) postMutation(ctx context.Context, nodeID string, params url.Values) error {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	requestURL := fmt.Sprintf("%s/%s", c.cfg.Meta.URL, nodeID)

	// Set em vez de Add para não duplicar o token no retry após renovação
	params.Set("access_token", c.cfg.Meta.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	// Usar o manipulador de resposta que verifica tokens expirados
	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.postMutation(ctx, nodeID, params)
		}
		return err
	}

	var response MutationResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	if !response.Success {
		return fmt.Errorf("a API do Meta não confirmou a alteração no nó %s", nodeID)
	}

	return nil
}
