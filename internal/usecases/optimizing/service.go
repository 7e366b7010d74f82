package optimizing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/aggregating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/utils"
)

// Benchmarks da bateria de verificações de otimização
const (
	benchmarkCTR            = 1.0
	benchmarkROAS           = 2.0
	benchmarkCPC            = 2.0
	benchmarkConversionRate = 2.0
	benchmarkScaleROAS      = 3.0
	benchmarkImpressions    = 10000.0

	minCostForROASCheck        = 100.0
	minClicksForConversionRate = 100
)

type Service struct {
	cfg                  *config.Config
	campaignLister       CampaignLister
	aggregator           aggregating.Aggregator
	recommendationWriter RecommendationWriter
}

func NewService(
	cfg *config.Config,
	campaignLister CampaignLister,
	aggregator aggregating.Aggregator,
) Optimizer {
	return &Service{
		cfg:            cfg,
		campaignLister: campaignLister,
		aggregator:     aggregator,
	}
}

// WithRecommendationStore habilita a persistência das recomendações geradas
func (s *Service) WithRecommendationStore(writer RecommendationWriter) *Service {
	s.recommendationWriter = writer
	return s
}

// RunOptimization analisa todas as campanhas ativas do escopo. Erro em uma campanha
// é registrado e a varredura continua com as demais. A janela retroativa vem do
// chamador; sem valor, cai na configuração e por fim no padrão de 30 dias.
func (s *Service) RunOptimization(ctx context.Context, userID int, lookbackDays int) ([]*domain.Recommendation, error) {
	campaigns, err := s.campaignLister.ListByStatus(domain.CampaignStatusActive, userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas ativas: %w", err)
	}

	if lookbackDays <= 0 {
		lookbackDays = s.cfg.OptimizationRun.LookbackDays
	}
	if lookbackDays <= 0 {
		lookbackDays = 30
	}

	logrus.WithFields(logrus.Fields{
		"campaigns":     len(campaigns),
		"user_id":       userID,
		"lookback_days": lookbackDays,
	}).Info("Iniciando varredura de otimização das campanhas")

	recommendations := make([]*domain.Recommendation, 0)

	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			logrus.Warn("Varredura de otimização cancelada, ignorando campanhas restantes")
			break
		}

		campaignRecs, err := s.AnalyzeCampaign(campaign, lookbackDays)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("Erro ao analisar campanha na varredura de otimização")
			continue
		}

		recommendations = append(recommendations, campaignRecs...)
	}

	if s.cfg.OptimizationRun.StoreResults && s.recommendationWriter != nil && len(recommendations) > 0 {
		if err := s.recommendationWriter.Save(recommendations); err != nil {
			// A persistência é auxiliar: falha não invalida a varredura
			logrus.WithError(err).Error("Erro ao persistir recomendações da varredura")
		}
	}

	logrus.WithFields(logrus.Fields{
		"recommendations": len(recommendations),
	}).Info("Varredura de otimização concluída")

	return recommendations, nil
}

// AnalyzeCampaign roda a bateria de verificações sobre as métricas agregadas da campanha.
// Campanhas sem impressões na janela são ignoradas: não há sinal para analisar.
func (s *Service) AnalyzeCampaign(campaign *domain.Campaign, lookbackDays int) ([]*domain.Recommendation, error) {
	metrics, err := s.aggregator.AggregateCampaignMetrics(campaign.ID, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar métricas: %w", err)
	}

	if metrics.Impressions == 0 {
		logrus.WithField("campaign_id", campaign.ID).Debug("Campanha sem impressões na janela, ignorando")
		return nil, nil
	}

	recommendations := make([]*domain.Recommendation, 0)

	if metrics.CTR < benchmarkCTR {
		recommendations = append(recommendations, s.newRecommendation(campaign,
			domain.RecommendationLowCTR,
			domain.PriorityHigh,
			metrics.CTR,
			benchmarkCTR,
			fmt.Sprintf("CTR de %.2f%% está abaixo do benchmark de %.2f%%", metrics.CTR, benchmarkCTR),
			[]string{
				"Revisar os criativos dos anúncios",
				"Refinar a segmentação de público",
				"Testar novas variações de texto",
			},
		))
	}

	if metrics.ROAS < benchmarkROAS && metrics.Cost > minCostForROASCheck {
		recommendations = append(recommendations, s.newRecommendation(campaign,
			domain.RecommendationLowROAS,
			domain.PriorityHigh,
			metrics.ROAS,
			benchmarkROAS,
			fmt.Sprintf("ROAS de %.2f está abaixo do benchmark de %.2f com custo relevante", metrics.ROAS, benchmarkROAS),
			[]string{
				"Reduzir o orçamento até melhorar o retorno",
				"Pausar os grupos de anúncios com pior desempenho",
				"Revisar a página de destino",
			},
		))
	}

	if metrics.CPC > benchmarkCPC {
		recommendations = append(recommendations, s.newRecommendation(campaign,
			domain.RecommendationHighCPC,
			domain.PriorityMedium,
			metrics.CPC,
			benchmarkCPC,
			fmt.Sprintf("CPC de %.2f está acima do benchmark de %.2f", metrics.CPC, benchmarkCPC),
			[]string{
				"Reduzir os lances dos grupos de anúncios",
				"Melhorar o índice de qualidade dos anúncios",
				"Testar públicos com menor concorrência",
			},
		))
	}

	if metrics.ConversionRate < benchmarkConversionRate && metrics.Clicks > minClicksForConversionRate {
		recommendations = append(recommendations, s.newRecommendation(campaign,
			domain.RecommendationLowConversionRate,
			domain.PriorityMedium,
			metrics.ConversionRate,
			benchmarkConversionRate,
			fmt.Sprintf("Taxa de conversão de %.2f%% está abaixo do benchmark de %.2f%% com volume relevante de cliques", metrics.ConversionRate, benchmarkConversionRate),
			[]string{
				"Revisar a experiência da página de destino",
				"Alinhar a promessa do anúncio com a oferta",
				"Simplificar o funil de conversão",
			},
		))
	}

	if metrics.ROAS > benchmarkScaleROAS && float64(metrics.Impressions) < benchmarkImpressions {
		recommendations = append(recommendations, s.newRecommendation(campaign,
			domain.RecommendationScaleOpportunity,
			domain.PriorityLow,
			float64(metrics.Impressions),
			benchmarkImpressions,
			fmt.Sprintf("ROAS de %.2f com apenas %d impressões indica espaço para escalar", metrics.ROAS, metrics.Impressions),
			[]string{
				"Aumentar o orçamento gradualmente",
				"Expandir a segmentação de público",
				"Duplicar a campanha para novos posicionamentos",
			},
		))
	}

	return recommendations, nil
}

func (s *Service) newRecommendation(
	campaign *domain.Campaign,
	recType domain.RecommendationType,
	priority domain.RecommendationPriority,
	currentValue, benchmark float64,
	message string,
	suggestedActions []string,
) *domain.Recommendation {
	return &domain.Recommendation{
		CampaignID:       campaign.ID,
		CampaignName:     campaign.Name,
		Type:             recType,
		Priority:         priority,
		CurrentValue:     utils.RoundWithTwoDecimalPlace(currentValue),
		Benchmark:        benchmark,
		Message:          message,
		SuggestedActions: suggestedActions,
		CreatedAt:        time.Now(),
	}
}
