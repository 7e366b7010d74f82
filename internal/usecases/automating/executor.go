package automating

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/utils"
)

// Executor executa as ações de uma regra sobre a campanha alvo.
// Toda mudança é confirmada localmente antes da propagação para a plataforma:
// falha de sincronização vira log, nunca rollback.
type Executor struct {
	campaignStore CampaignStore
	adGroupStore  AdGroupStore
	syncer        PlatformSyncer
	syncTimeout   time.Duration
}

func NewExecutor(
	campaignStore CampaignStore,
	adGroupStore AdGroupStore,
	syncer PlatformSyncer,
	syncTimeout time.Duration,
) *Executor {
	if syncTimeout <= 0 {
		syncTimeout = 10 * time.Second
	}

	return &Executor{
		campaignStore: campaignStore,
		adGroupStore:  adGroupStore,
		syncer:        syncer,
		syncTimeout:   syncTimeout,
	}
}

// Execute executa uma única ação e devolve o resultado. Um pânico dentro da
// execução é capturado e convertido em resultado de falha.
func (ex *Executor) Execute(ctx context.Context, campaign *domain.Campaign, action domain.Action) (result domain.ActionResult) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"action":      action.Type,
				"panic":       r,
			}).Error("Pânico ao executar ação da regra de automação")
			result = domain.ActionResult{
				Success: false,
				Error:   fmt.Sprintf("pânico ao executar ação %s: %v", action.Type, r),
			}
		}
	}()

	switch action.Type {
	case domain.ActionPause:
		return ex.pauseCampaign(ctx, campaign)
	case domain.ActionResume:
		return ex.resumeCampaign(ctx, campaign)
	case domain.ActionAdjustBudget:
		return ex.adjustBudget(ctx, campaign, action.Adjustment)
	case domain.ActionAdjustBid:
		return ex.adjustBids(ctx, campaign, action.Adjustment)
	case domain.ActionNotify:
		return ex.notify(campaign, action.Message)
	default:
		return domain.ActionResult{
			Success: false,
			Error:   fmt.Sprintf("tipo de ação desconhecido: %q", action.Type),
		}
	}
}

func (ex *Executor) pauseCampaign(ctx context.Context, campaign *domain.Campaign) domain.ActionResult {
	if campaign.Status == domain.CampaignStatusPaused {
		// Pausar campanha já pausada é um no-op bem-sucedido
		return domain.ActionResult{Success: true, Description: "Campanha já estava pausada"}
	}

	if err := ex.campaignStore.UpdateStatus(campaign.ID, domain.CampaignStatusPaused); err != nil {
		return domain.ActionResult{
			Success: false,
			Error:   fmt.Sprintf("erro ao pausar campanha: %v", err),
		}
	}

	campaign.Status = domain.CampaignStatusPaused

	ex.syncCampaignStatus(ctx, campaign, domain.CampaignStatusPaused)

	return domain.ActionResult{Success: true, Description: "Campanha pausada"}
}

func (ex *Executor) resumeCampaign(ctx context.Context, campaign *domain.Campaign) domain.ActionResult {
	if campaign.Status == domain.CampaignStatusActive {
		return domain.ActionResult{Success: true, Description: "Campanha já estava ativa"}
	}

	if err := ex.campaignStore.UpdateStatus(campaign.ID, domain.CampaignStatusActive); err != nil {
		return domain.ActionResult{
			Success: false,
			Error:   fmt.Sprintf("erro ao reativar campanha: %v", err),
		}
	}

	campaign.Status = domain.CampaignStatusActive

	ex.syncCampaignStatus(ctx, campaign, domain.CampaignStatusActive)

	return domain.ActionResult{Success: true, Description: "Campanha reativada"}
}

func (ex *Executor) adjustBudget(ctx context.Context, campaign *domain.Campaign, adjustment *domain.Adjustment) domain.ActionResult {
	if adjustment == nil {
		return domain.ActionResult{
			Success: false,
			Error:   "ação adjust_budget sem bloco adjustment",
		}
	}

	currentBudget := campaign.Budget
	newBudget := utils.RoundWithTwoDecimalPlace(
		adjustment.Apply(currentBudget, domain.DefaultBudgetMin, domain.DefaultBudgetMax),
	)

	if err := ex.campaignStore.UpdateBudget(campaign.ID, newBudget); err != nil {
		return domain.ActionResult{
			Success: false,
			Error:   fmt.Sprintf("erro ao ajustar orçamento: %v", err),
		}
	}

	campaign.Budget = newBudget

	if campaign.HasExternalID() {
		syncCtx, cancel := context.WithTimeout(ctx, ex.syncTimeout)
		defer cancel()

		if err := ex.syncer.SetCampaignBudget(syncCtx, *campaign.ExternalID, newBudget); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"external_id": *campaign.ExternalID,
				"error":       err.Error(),
			}).Error("Erro ao sincronizar orçamento com a plataforma")
		}
	}

	return domain.ActionResult{
		Success:     true,
		Description: fmt.Sprintf("Orçamento ajustado de %.2f para %.2f", currentBudget, newBudget),
	}
}

func (ex *Executor) adjustBids(ctx context.Context, campaign *domain.Campaign, adjustment *domain.Adjustment) domain.ActionResult {
	if adjustment == nil {
		return domain.ActionResult{
			Success: false,
			Error:   "ação adjust_bid sem bloco adjustment",
		}
	}

	adGroups, err := ex.adGroupStore.ListByCampaignID(campaign.ID)
	if err != nil {
		return domain.ActionResult{
			Success: false,
			Error:   fmt.Sprintf("erro ao listar grupos de anúncios: %v", err),
		}
	}

	adjusted := 0
	for _, adGroup := range adGroups {
		// Grupos sem lance definido são ignorados
		if adGroup.BidAmount == nil {
			continue
		}

		newBid := utils.RoundWithTwoDecimalPlace(
			adjustment.Apply(*adGroup.BidAmount, domain.DefaultBidMin, domain.DefaultBidMax),
		)

		if err := ex.adGroupStore.UpdateBid(adGroup.ID, newBid); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"ad_group_id": adGroup.ID,
				"error":       err.Error(),
			}).Error("Erro ao atualizar lance do grupo de anúncios")
			continue
		}

		if adGroup.ExternalID != nil && *adGroup.ExternalID != "" {
			syncCtx, cancel := context.WithTimeout(ctx, ex.syncTimeout)
			if err := ex.syncer.SetAdGroupBid(syncCtx, *adGroup.ExternalID, newBid); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"ad_group_id": adGroup.ID,
					"external_id": *adGroup.ExternalID,
					"error":       err.Error(),
				}).Error("Erro ao sincronizar lance com a plataforma")
			}
			cancel()
		}

		adjusted++
	}

	return domain.ActionResult{
		Success:     true,
		Description: fmt.Sprintf("Lance ajustado em %d grupos de anúncios", adjusted),
	}
}

func (ex *Executor) notify(campaign *domain.Campaign, message string) domain.ActionResult {
	if message == "" {
		message = "Regra de automação disparada"
	}

	// Canal de notificação é o log estruturado; a entrega externa fica no resultado da regra
	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_name": campaign.Name,
	}).Infof("Notificação de automação: %s", message)

	return domain.ActionResult{
		Success:     true,
		Description: fmt.Sprintf("Notificação: %s", message),
	}
}

// syncCampaignStatus propaga a mudança de status para a plataforma dentro do timeout configurado
func (ex *Executor) syncCampaignStatus(ctx context.Context, campaign *domain.Campaign, status domain.CampaignStatus) {
	if !campaign.HasExternalID() {
		return
	}

	syncCtx, cancel := context.WithTimeout(ctx, ex.syncTimeout)
	defer cancel()

	if err := ex.syncer.SetCampaignStatus(syncCtx, *campaign.ExternalID, status); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"external_id": *campaign.ExternalID,
			"status":      status,
			"error":       err.Error(),
		}).Error("Erro ao sincronizar status da campanha com a plataforma")
	}
}
