package copywriting

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/integrator/openai"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/repository"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

// Copywriter gera variações de texto de anúncio para campanhas
type Copywriter interface {
	GenerateForCampaign(ctx context.Context, campaignID string, request *domain.GenerateAdCopyRequest) (*domain.GenerateAdCopyResponse, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	openaiService      openai.OpenAIIntegrator
}

func NewService(
	campaignRepository repository.CampaignRepository,
	openaiService openai.OpenAIIntegrator,
) Copywriter {
	return &Service{
		campaignRepository: campaignRepository,
		openaiService:      openaiService,
	}
}

func (s *Service) GenerateForCampaign(ctx context.Context, campaignID string, request *domain.GenerateAdCopyRequest) (*domain.GenerateAdCopyResponse, error) {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}

	if campaign == nil {
		return nil, fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	// Sem produto explícito, o nome e o objetivo da campanha guiam a geração
	if request.Product == "" {
		request.Product = campaign.Name
		if campaign.Objective != "" {
			request.Product = fmt.Sprintf("%s (objetivo: %s)", campaign.Name, campaign.Objective)
		}
	}

	variations, err := s.openaiService.GenerateAdCopy(ctx, request)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"variations":  len(variations),
	}).Info("Variações de texto de anúncio geradas para a campanha")

	return &domain.GenerateAdCopyResponse{
		CampaignID: campaign.ID,
		Variations: variations,
	}, nil
}
