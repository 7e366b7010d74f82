package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/integrator/openai/openaiclient"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

const systemPrompt = "Você é um redator publicitário especializado em anúncios de mídia paga. " +
	"Responda somente com JSON válido no formato " +
	`{"variations":[{"headline":"...","primary_text":"...","description":"..."}]}.`

const defaultVariations = 3

type OpenAIIntegrator interface {
	GenerateAdCopy(ctx context.Context, req *domain.GenerateAdCopyRequest) ([]domain.AdCopyVariation, error)
}

type OpenAIService struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) OpenAIIntegrator {
	return &OpenAIService{
		cfg:    cfg,
		Client: client,
	}
}

// GenerateAdCopy gera variações de texto de anúncio para o produto informado
func (s *OpenAIService) GenerateAdCopy(ctx context.Context, req *domain.GenerateAdCopyRequest) ([]domain.AdCopyVariation, error) {
	variations := req.Variations
	if variations <= 0 {
		variations = defaultVariations
	}

	prompt := buildPrompt(req, variations)

	resp, err := s.Client.CreateChatCompletion(ctx, openaiclient.ChatCompletionRequest{
		Model: s.cfg.OpenAI.Model,
		Messages: []openaiclient.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.8,
		ResponseFormat: &openaiclient.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product": req.Product,
			"error":   err.Error(),
		}).Error("adcopy: failed to generate ad copy")
		return nil, err
	}

	var parsed struct {
		Variations []domain.AdCopyVariation `json:"variations"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("erro ao decodificar variações geradas: %w", err)
	}

	if len(parsed.Variations) == 0 {
		return nil, fmt.Errorf("nenhuma variação de anúncio foi gerada")
	}

	logrus.WithFields(logrus.Fields{
		"product":      req.Product,
		"variations":   len(parsed.Variations),
		"total_tokens": resp.Usage.TotalTokens,
	}).Debug("adcopy: ad copy generated successfully")

	return parsed.Variations, nil
}

func buildPrompt(req *domain.GenerateAdCopyRequest, variations int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Gere %d variações de anúncio para o produto: %s.", variations, req.Product)

	if req.Audience != "" {
		fmt.Fprintf(&sb, " Público-alvo: %s.", req.Audience)
	}

	if req.Tone != "" {
		fmt.Fprintf(&sb, " Tom de voz: %s.", req.Tone)
	}

	return sb.String()
}
