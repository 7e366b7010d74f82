package aggregating

import (
	"time"

	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

// PerformanceReader define a interface de leitura dos registros diários de performance
type PerformanceReader interface {
	// GetByCampaignAndDateRange retorna os registros da campanha dentro do intervalo de datas
	GetByCampaignAndDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.PerformanceRecord, error)
}

// Aggregator define a interface de agregação de métricas de campanha
type Aggregator interface {
	// AggregateCampaignMetrics agrega os contadores brutos da campanha na janela retroativa
	// informada e recalcula as razões derivadas (CTR, CPC, ROAS, taxa de conversão)
	AggregateCampaignMetrics(campaignID string, lookbackDays int) (*domain.CampaignMetrics, error)
}
