package automating_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	aggregatingmocks "github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/aggregating/mocks"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating"
	"go.uber.org/mock/gomock"
)

func TestEvaluator_Evaluate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	// Service
	evaluator := automating.NewEvaluator(mockAggregator)

	healthyMetrics := &domain.CampaignMetrics{
		CampaignID:     "CAMP001",
		Impressions:    10000,
		Clicks:         300,
		Conversions:    15,
		Cost:           600.0,
		Revenue:        1800.0,
		CTR:            3.0,
		CPC:            2.0,
		ROAS:           3.0,
		ConversionRate: 5.0,
	}

	tests := []struct {
		name       string
		conditions []domain.Condition
		setup      func()
		validate   func(t *testing.T, passed bool, err error)
	}{
		{
			name:       "Regra sem condições - deve passar por vacuidade sem consultar métricas",
			conditions: []domain.Condition{},
			setup:      func() {},
			validate: func(t *testing.T, passed bool, err error) {
				assert.NoError(t, err)
				assert.True(t, passed)
			},
		},
		{
			name: "Condição de CTR abaixo do limiar - deve passar",
			conditions: []domain.Condition{
				{Metric: domain.MetricCTR, Operator: domain.OperatorGreaterThan, Value: 1.0},
			},
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(healthyMetrics, nil)
			},
			validate: func(t *testing.T, passed bool, err error) {
				assert.NoError(t, err)
				assert.True(t, passed)
			},
		},
		{
			name: "Uma condição reprovada derruba o AND lógico",
			conditions: []domain.Condition{
				{Metric: domain.MetricCTR, Operator: domain.OperatorGreaterThan, Value: 1.0},
				{Metric: domain.MetricROAS, Operator: domain.OperatorGreaterThan, Value: 5.0},
			},
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(healthyMetrics, nil)
			},
			validate: func(t *testing.T, passed bool, err error) {
				assert.NoError(t, err)
				assert.False(t, passed)
			},
		},
		{
			name: "Campanha sem dados na janela - nunca dispara a regra",
			conditions: []domain.Condition{
				{Metric: domain.MetricCost, Operator: domain.OperatorGreaterThanOrEqual, Value: 0.0},
			},
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(&domain.CampaignMetrics{CampaignID: "CAMP001"}, nil)
			},
			validate: func(t *testing.T, passed bool, err error) {
				assert.NoError(t, err)
				assert.False(t, passed)
			},
		},
		{
			name: "Métrica desconhecida é ignorada e as demais condições decidem",
			conditions: []domain.Condition{
				{Metric: domain.MetricName("quality_score"), Operator: domain.OperatorGreaterThan, Value: 5.0},
				{Metric: domain.MetricClicks, Operator: domain.OperatorGreaterThan, Value: 100.0},
			},
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(healthyMetrics, nil)
			},
			validate: func(t *testing.T, passed bool, err error) {
				assert.NoError(t, err)
				assert.True(t, passed)
			},
		},
		{
			name: "Condições com a mesma janela compartilham a agregação",
			conditions: []domain.Condition{
				{Metric: domain.MetricCTR, Operator: domain.OperatorGreaterThan, Value: 1.0, LookbackDays: 14},
				{Metric: domain.MetricCPC, Operator: domain.OperatorLessThan, Value: 3.0, LookbackDays: 14},
				{Metric: domain.MetricROAS, Operator: domain.OperatorGreaterThan, Value: 2.0},
			},
			setup: func() {
				// Uma chamada por janela distinta, não por condição
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", 14).
					Return(healthyMetrics, nil).
					Times(1)
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(healthyMetrics, nil).
					Times(1)
			},
			validate: func(t *testing.T, passed bool, err error) {
				assert.NoError(t, err)
				assert.True(t, passed)
			},
		},
		{
			name: "Primeira condição reprovada interrompe a avaliação sem agregar a próxima janela",
			conditions: []domain.Condition{
				{Metric: domain.MetricROAS, Operator: domain.OperatorGreaterThan, Value: 5.0},
				{Metric: domain.MetricCTR, Operator: domain.OperatorGreaterThan, Value: 1.0, LookbackDays: 14},
			},
			setup: func() {
				// A janela de 14 dias da segunda condição nunca é agregada
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(healthyMetrics, nil).
					Times(1)
			},
			validate: func(t *testing.T, passed bool, err error) {
				assert.NoError(t, err)
				assert.False(t, passed)
			},
		},
		{
			name: "Erro na agregação - deve propagar o erro sem disparar",
			conditions: []domain.Condition{
				{Metric: domain.MetricCTR, Operator: domain.OperatorLessThan, Value: 1.0},
			},
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, passed bool, err error) {
				assert.Error(t, err)
				assert.False(t, passed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			passed, err := evaluator.Evaluate("CAMP001", tt.conditions)

			tt.validate(t, passed, err)
		})
	}
}

func TestEvaluator_EvaluateAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)
	evaluator := automating.NewEvaluator(mockAggregator)

	metrics := &domain.CampaignMetrics{
		CampaignID:  "CAMP001",
		Impressions: 5000,
		Clicks:      40,
		Cost:        220.0,
		CTR:         0.8,
		CPC:         5.5,
	}

	mockAggregator.EXPECT().
		AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
		Return(metrics, nil)

	outcomes, err := evaluator.EvaluateAll("CAMP001", []domain.Condition{
		{Metric: domain.MetricCTR, Operator: domain.OperatorLessThan, Value: 1.0},
		{Metric: domain.MetricCPC, Operator: domain.OperatorLessThan, Value: 2.0},
		{Metric: domain.MetricCost, Operator: domain.ComparisonOperator("almost_equals"), Value: 220.0},
	})

	assert.NoError(t, err)
	assert.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].Passed)
	assert.Equal(t, 0.8, outcomes[0].MetricValue)

	assert.False(t, outcomes[1].Passed)
	assert.Equal(t, 5.5, outcomes[1].MetricValue)

	// Operador desconhecido não reprova a condição, apenas a ignora
	assert.True(t, outcomes[2].Skipped)
	assert.False(t, outcomes[2].Passed)
}
