package meta

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/integrator/meta/metaclient"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

// Mapeamento do status local para o effective_status do Graph API
var statusMapping = map[domain.CampaignStatus]string{
	domain.CampaignStatusActive: "ACTIVE",
	domain.CampaignStatusPaused: "PAUSED",
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// SetCampaignStatus propaga uma mudança de status para a campanha na plataforma
func (s *MetaIntegrator) SetCampaignStatus(ctx context.Context, externalID string, status domain.CampaignStatus) error {
	platformStatus, ok := statusMapping[status]
	if !ok {
		return fmt.Errorf("status %q não possui equivalente na plataforma Meta", status)
	}

	if err := s.Client.UpdateCampaignStatus(ctx, externalID, platformStatus); err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"status":      platformStatus,
			"error":       err.Error(),
		}).Error("Erro ao sincronizar o status da campanha na plataforma Meta")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"external_id": externalID,
		"status":      platformStatus,
	}).Debug("Status da campanha sincronizado na plataforma Meta")

	return nil
}

// SetCampaignBudget propaga uma mudança de orçamento diário para a plataforma
func (s *MetaIntegrator) SetCampaignBudget(ctx context.Context, externalID string, budget float64) error {
	if err := s.Client.UpdateCampaignDailyBudget(ctx, externalID, budget); err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"budget":      budget,
			"error":       err.Error(),
		}).Error("Erro ao sincronizar o orçamento da campanha na plataforma Meta")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"external_id": externalID,
		"budget":      budget,
	}).Debug("Orçamento da campanha sincronizado na plataforma Meta")

	return nil
}

// SetAdGroupBid propaga uma mudança de lance de um grupo de anúncios para a plataforma
func (s *MetaIntegrator) SetAdGroupBid(ctx context.Context, externalID string, bid float64) error {
	if err := s.Client.UpdateAdSetBid(ctx, externalID, bid); err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"bid":         bid,
			"error":       err.Error(),
		}).Error("Erro ao sincronizar o lance do conjunto de anúncios na plataforma Meta")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"external_id": externalID,
		"bid":         bid,
	}).Debug("Lance do conjunto de anúncios sincronizado na plataforma Meta")

	return nil
}
