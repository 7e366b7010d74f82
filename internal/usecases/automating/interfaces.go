package automating

import (
	"context"

	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

// CampaignStore define as operações de campanha necessárias ao motor de automação
type CampaignStore interface {
	GetByID(campaignID string) (*domain.Campaign, error)
	UpdateStatus(campaignID string, status domain.CampaignStatus) error
	UpdateBudget(campaignID string, budget float64) error
}

// AdGroupStore define as operações de grupo de anúncios necessárias ao motor de automação
type AdGroupStore interface {
	ListByCampaignID(campaignID string) ([]*domain.AdGroup, error)
	UpdateBid(adGroupID string, bid float64) error
}

// RuleStore define a leitura das regras de automação ativas.
// userID maior que zero restringe às campanhas do usuário; zero varre todas.
type RuleStore interface {
	ListActive(userID int) ([]*domain.AutomationRule, error)
}

// PlatformSyncer propaga mudanças locais para a plataforma de anúncios.
// A propagação acontece sempre depois do commit local: falha de sincronização
// é registrada em log e nunca desfaz a mudança local.
type PlatformSyncer interface {
	SetCampaignStatus(ctx context.Context, externalID string, status domain.CampaignStatus) error
	SetCampaignBudget(ctx context.Context, externalID string, budget float64) error
	SetAdGroupBid(ctx context.Context, externalID string, bid float64) error
}

// Scope delimita uma execução de automação. UserID zero significa todos os usuários.
type Scope struct {
	UserID int
}

// Engine define a interface do motor de automação
type Engine interface {
	// RunAutomation avalia e executa todas as regras ativas dentro do escopo informado.
	// Cada regra produz exatamente um RuleResult: falha em uma regra nunca interrompe as demais.
	RunAutomation(ctx context.Context, scope Scope) ([]*domain.RuleResult, error)

	// RunRule avalia e executa uma única regra
	RunRule(ctx context.Context, rule *domain.AutomationRule) *domain.RuleResult
}
