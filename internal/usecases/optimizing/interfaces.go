package optimizing

import (
	"context"

	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

// CampaignLister define a leitura das campanhas candidatas à análise de otimização.
// userID maior que zero restringe às campanhas do usuário; zero varre todas.
type CampaignLister interface {
	ListByStatus(status domain.CampaignStatus, userID int) ([]*domain.Campaign, error)
}

// RecommendationWriter persiste recomendações geradas pela varredura
type RecommendationWriter interface {
	Save(recommendations []*domain.Recommendation) error
}

// Optimizer define a interface do motor de otimização
type Optimizer interface {
	// RunOptimization analisa todas as campanhas ativas do escopo e retorna as
	// recomendações geradas. Falha em uma campanha nunca interrompe as demais.
	// lookbackDays menor ou igual a zero cai na janela configurada (padrão 30 dias).
	RunOptimization(ctx context.Context, userID int, lookbackDays int) ([]*domain.Recommendation, error)

	// AnalyzeCampaign roda a bateria de verificações sobre uma única campanha
	AnalyzeCampaign(campaign *domain.Campaign, lookbackDays int) ([]*domain.Recommendation, error)
}
