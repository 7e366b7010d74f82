package automating

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/aggregating"
)

// ConditionOutcome é o resultado da avaliação de uma única condição
type ConditionOutcome struct {
	Condition   domain.Condition `json:"condition"`
	MetricValue float64          `json:"metric_value"`
	Passed      bool             `json:"passed"`
	Skipped     bool             `json:"skipped"`
}

// Evaluator avalia as condições de uma regra sobre as métricas agregadas da campanha
type Evaluator struct {
	aggregator aggregating.Aggregator
}

func NewEvaluator(aggregator aggregating.Aggregator) *Evaluator {
	return &Evaluator{
		aggregator: aggregator,
	}
}

// Evaluate retorna verdadeiro quando todas as condições da regra passam (AND lógico).
// A avaliação para na primeira condição reprovada, sem agregar métricas para as janelas
// das condições restantes. Lista vazia de condições passa por vacuidade. Campanha sem
// dados na janela nunca passa: é preferível não agir a agir sobre métricas zeradas.
func (e *Evaluator) Evaluate(campaignID string, conditions []domain.Condition) (bool, error) {
	if len(conditions) == 0 {
		return true, nil
	}

	cache := newMetricsCache()

	for _, condition := range conditions {
		metrics, err := cache.metricsFor(e.aggregator, campaignID, condition.Lookback())
		if err != nil {
			return false, err
		}

		if metrics == nil {
			return false, nil
		}

		outcome := evaluateCondition(campaignID, condition, metrics)
		if outcome.Skipped {
			continue
		}

		if !outcome.Passed {
			return false, nil
		}
	}

	return true, nil
}

// EvaluateAll avalia cada condição individualmente e retorna os resultados detalhados,
// sem interromper na primeira reprovação. Retorna nil quando a campanha não tem dados
// na janela de avaliação.
func (e *Evaluator) EvaluateAll(campaignID string, conditions []domain.Condition) ([]ConditionOutcome, error) {
	outcomes := make([]ConditionOutcome, 0, len(conditions))
	cache := newMetricsCache()

	for _, condition := range conditions {
		metrics, err := cache.metricsFor(e.aggregator, campaignID, condition.Lookback())
		if err != nil {
			return nil, err
		}

		if metrics == nil {
			return nil, nil
		}

		outcomes = append(outcomes, evaluateCondition(campaignID, condition, metrics))
	}

	return outcomes, nil
}

// metricsCache reutiliza as métricas agregadas entre condições com a mesma janela
// retroativa dentro de uma avaliação
type metricsCache struct {
	byLookback map[int]*domain.CampaignMetrics
}

func newMetricsCache() *metricsCache {
	return &metricsCache{
		byLookback: make(map[int]*domain.CampaignMetrics),
	}
}

// metricsFor agrega as métricas da campanha na janela informada, consultando o
// agregador apenas na primeira vez que cada janela aparece. Retorna nil quando
// a campanha não tem dados na janela.
func (c *metricsCache) metricsFor(aggregator aggregating.Aggregator, campaignID string, lookback int) (*domain.CampaignMetrics, error) {
	metrics, ok := c.byLookback[lookback]
	if !ok {
		var err error
		metrics, err = aggregator.AggregateCampaignMetrics(campaignID, lookback)
		if err != nil {
			return nil, fmt.Errorf("erro ao agregar métricas da campanha %s: %w", campaignID, err)
		}
		c.byLookback[lookback] = metrics
	}

	if metrics.IsEmpty() {
		logrus.WithFields(logrus.Fields{
			"campaign_id":   campaignID,
			"lookback_days": lookback,
		}).Debug("Campanha sem dados de performance na janela")
		return nil, nil
	}

	return metrics, nil
}

// evaluateCondition avalia uma condição isolada. Métrica ou operador desconhecido
// não derruba a regra: a condição é ignorada com um aviso em log.
func evaluateCondition(campaignID string, condition domain.Condition, metrics *domain.CampaignMetrics) ConditionOutcome {
	outcome := ConditionOutcome{
		Condition: condition,
	}

	value, ok := metricValue(metrics, condition.Metric)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"metric":      condition.Metric,
		}).Warn("Métrica desconhecida na condição, ignorando")
		outcome.Skipped = true
		return outcome
	}

	outcome.MetricValue = value

	passed, ok := compare(value, condition.Operator, condition.Value)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"operator":    condition.Operator,
		}).Warn("Operador desconhecido na condição, ignorando")
		outcome.Skipped = true
		return outcome
	}

	outcome.Passed = passed
	return outcome
}

func metricValue(metrics *domain.CampaignMetrics, name domain.MetricName) (float64, bool) {
	switch name {
	case domain.MetricCTR:
		return metrics.CTR, true
	case domain.MetricCPC:
		return metrics.CPC, true
	case domain.MetricROAS:
		return metrics.ROAS, true
	case domain.MetricConversions:
		return float64(metrics.Conversions), true
	case domain.MetricCost:
		return metrics.Cost, true
	case domain.MetricImpressions:
		return float64(metrics.Impressions), true
	case domain.MetricClicks:
		return float64(metrics.Clicks), true
	}
	return 0, false
}

func compare(value float64, operator domain.ComparisonOperator, threshold float64) (bool, bool) {
	switch operator {
	case domain.OperatorLessThan:
		return value < threshold, true
	case domain.OperatorGreaterThan:
		return value > threshold, true
	case domain.OperatorEquals:
		return value == threshold, true
	case domain.OperatorLessThanOrEqual:
		return value <= threshold, true
	case domain.OperatorGreaterThanOrEqual:
		return value >= threshold, true
	}
	return false, false
}
