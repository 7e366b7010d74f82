package aggregating

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/utils"
)

type Service struct {
	performanceReader PerformanceReader
}

func NewService(performanceReader PerformanceReader) Aggregator {
	return &Service{
		performanceReader: performanceReader,
	}
}

// AggregateCampaignMetrics soma os contadores brutos da campanha na janela retroativa e
// recalcula as razões derivadas. As razões nunca são lidas das linhas diárias: recalcular
// a partir dos totais evita a divergência de média de médias.
func (s *Service) AggregateCampaignMetrics(campaignID string, lookbackDays int) (*domain.CampaignMetrics, error) {
	if campaignID == "" {
		return nil, fmt.Errorf("é necessário informar a campanha")
	}

	if lookbackDays <= 0 {
		lookbackDays = domain.DefaultLookbackDays
	}

	endDate := utils.TruncateToDay(time.Now())
	startDate := endDate.AddDate(0, 0, -lookbackDays)

	records, err := s.performanceReader.GetByCampaignAndDateRange(campaignID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao buscar registros de performance da campanha")
		return nil, fmt.Errorf("erro ao buscar registros de performance: %w", err)
	}

	metrics := &domain.CampaignMetrics{
		CampaignID: campaignID,
	}

	for _, record := range records {
		metrics.Impressions += record.Impressions
		metrics.Clicks += record.Clicks
		metrics.Conversions += record.Conversions
		metrics.Cost += record.Cost
		metrics.Revenue += record.Revenue
	}

	// Divisor zero resulta em zero, nunca em erro. As razões ficam sem arredondamento:
	// elas alimentam comparações de limiar e só são arredondadas na exibição
	if metrics.Impressions > 0 {
		metrics.CTR = float64(metrics.Clicks) / float64(metrics.Impressions) * 100
	}

	if metrics.Clicks > 0 {
		metrics.CPC = metrics.Cost / float64(metrics.Clicks)
		metrics.ConversionRate = float64(metrics.Conversions) / float64(metrics.Clicks) * 100
	}

	if metrics.Cost > 0 {
		metrics.ROAS = metrics.Revenue / metrics.Cost
	}

	metrics.Cost = utils.RoundWithTwoDecimalPlace(metrics.Cost)
	metrics.Revenue = utils.RoundWithTwoDecimalPlace(metrics.Revenue)

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaignID,
		"lookback_days": lookbackDays,
		"records":       len(records),
	}).Debug("Métricas da campanha agregadas")

	return metrics, nil
}
