package automating_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	aggregatingmocks "github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/aggregating/mocks"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating/mocks"
	"go.uber.org/mock/gomock"
)

func newEngineForTest(
	ctrl *gomock.Controller,
) (automating.Engine, *mocks.MockRuleStore, *mocks.MockCampaignStore, *mocks.MockAdGroupStore, *aggregatingmocks.MockAggregator) {
	mockRuleStore := mocks.NewMockRuleStore(ctrl)
	mockCampaignStore := mocks.NewMockCampaignStore(ctrl)
	mockAdGroupStore := mocks.NewMockAdGroupStore(ctrl)
	mockSyncer := mocks.NewMockPlatformSyncer(ctrl)
	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	cfg := &config.Config{
		AutomationRun: config.AutomationRun{
			MaxConcurrentRules: 2,
			RunTimeoutSeconds:  30,
		},
	}

	evaluator := automating.NewEvaluator(mockAggregator)
	executor := automating.NewExecutor(mockCampaignStore, mockAdGroupStore, mockSyncer, time.Second)
	engine := automating.NewService(cfg, mockRuleStore, mockCampaignStore, evaluator, executor)

	return engine, mockRuleStore, mockCampaignStore, mockAdGroupStore, mockAggregator
}

func TestService_RunRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _, mockCampaignStore, _, mockAggregator := newEngineForTest(ctrl)

	lowCTRMetrics := &domain.CampaignMetrics{
		CampaignID:  "CAMP001",
		Impressions: 8000,
		Clicks:      40,
		Cost:        120.0,
		CTR:         0.5,
		CPC:         3.0,
	}

	tests := []struct {
		name     string
		rule     *domain.AutomationRule
		setup    func()
		validate func(t *testing.T, result *domain.RuleResult)
	}{
		{
			name: "Campanha da regra não encontrada - falha contida no resultado",
			rule: &domain.AutomationRule{
				ID:         "RULE001",
				CampaignID: "CAMP404",
				Name:       "Pausar CTR baixo",
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					GetByID("CAMP404").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.RuleResult) {
				assert.False(t, result.Success)
				assert.Equal(t, "campanha não encontrada: CAMP404", result.Error)
				assert.Empty(t, result.ActionsTaken)
			},
		},
		{
			name: "Condições não atendidas - sucesso sem ações executadas",
			rule: &domain.AutomationRule{
				ID:         "RULE002",
				CampaignID: "CAMP001",
				Name:       "Pausar CTR baixo",
				Conditions: []domain.Condition{
					{Metric: domain.MetricCTR, Operator: domain.OperatorGreaterThan, Value: 2.0},
				},
				Actions: []domain.Action{{Type: domain.ActionPause}},
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					GetByID("CAMP001").
					Return(&domain.Campaign{ID: "CAMP001", Status: domain.CampaignStatusActive}, nil)

				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(lowCTRMetrics, nil)
			},
			validate: func(t *testing.T, result *domain.RuleResult) {
				assert.True(t, result.Success)
				assert.Empty(t, result.ActionsTaken)
				assert.Empty(t, result.Error)
			},
		},
		{
			name: "Regra disparada - deve pausar a campanha e registrar a ação",
			rule: &domain.AutomationRule{
				ID:         "RULE003",
				CampaignID: "CAMP001",
				Name:       "Pausar CTR baixo",
				Conditions: []domain.Condition{
					{Metric: domain.MetricCTR, Operator: domain.OperatorLessThan, Value: 1.0},
				},
				Actions: []domain.Action{{Type: domain.ActionPause}},
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					GetByID("CAMP001").
					Return(&domain.Campaign{ID: "CAMP001", Status: domain.CampaignStatusActive}, nil)

				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(lowCTRMetrics, nil)

				mockCampaignStore.EXPECT().
					UpdateStatus("CAMP001", domain.CampaignStatusPaused).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.RuleResult) {
				assert.True(t, result.Success)
				assert.Equal(t, []string{"Campanha pausada"}, result.ActionsTaken)
			},
		},
		{
			name: "Falha em uma ação não interrompe as seguintes",
			rule: &domain.AutomationRule{
				ID:         "RULE004",
				CampaignID: "CAMP001",
				Name:       "Pausar e avisar",
				Conditions: []domain.Condition{
					{Metric: domain.MetricCTR, Operator: domain.OperatorLessThan, Value: 1.0},
				},
				Actions: []domain.Action{
					{Type: domain.ActionPause},
					{Type: domain.ActionNotify, Message: "CTR abaixo do limiar"},
				},
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					GetByID("CAMP001").
					Return(&domain.Campaign{ID: "CAMP001", Status: domain.CampaignStatusActive}, nil)

				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(lowCTRMetrics, nil)

				mockCampaignStore.EXPECT().
					UpdateStatus("CAMP001", domain.CampaignStatusPaused).
					Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, result *domain.RuleResult) {
				// A regra rodou até o fim: o erro da ação fica anotado sem invalidar a regra
				assert.True(t, result.Success)
				assert.Contains(t, result.Error, "erro ao pausar campanha")
				assert.Equal(t, []string{"Notificação: CTR abaixo do limiar"}, result.ActionsTaken)
			},
		},
		{
			name: "Erro na avaliação das condições - falha contida no resultado",
			rule: &domain.AutomationRule{
				ID:         "RULE005",
				CampaignID: "CAMP001",
				Name:       "Pausar CTR baixo",
				Conditions: []domain.Condition{
					{Metric: domain.MetricCTR, Operator: domain.OperatorLessThan, Value: 1.0},
				},
				Actions: []domain.Action{{Type: domain.ActionPause}},
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					GetByID("CAMP001").
					Return(&domain.Campaign{ID: "CAMP001", Status: domain.CampaignStatusActive}, nil)

				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
					Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, result *domain.RuleResult) {
				assert.False(t, result.Success)
				assert.Contains(t, result.Error, "erro ao avaliar condições")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result := engine.RunRule(context.Background(), tt.rule)

			tt.validate(t, result)
		})
	}
}

func TestService_RunAutomation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Sem regras ativas - execução vazia sem erro", func(t *testing.T) {
		engine, mockRuleStore, _, _, _ := newEngineForTest(ctrl)

		mockRuleStore.EXPECT().
			ListActive(0).
			Return([]*domain.AutomationRule{}, nil)

		results, err := engine.RunAutomation(context.Background(), automating.Scope{})

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Erro ao listar as regras - deve propagar o erro", func(t *testing.T) {
		engine, mockRuleStore, _, _, _ := newEngineForTest(ctrl)

		mockRuleStore.EXPECT().
			ListActive(42).
			Return(nil, errors.New("conexão perdida"))

		results, err := engine.RunAutomation(context.Background(), automating.Scope{UserID: 42})

		assert.Error(t, err)
		assert.Nil(t, results)
	})

	t.Run("Falha em uma regra não derruba as demais - um resultado por regra", func(t *testing.T) {
		engine, mockRuleStore, mockCampaignStore, _, mockAggregator := newEngineForTest(ctrl)

		rules := []*domain.AutomationRule{
			{
				ID:         "RULE001",
				CampaignID: "CAMP001",
				Name:       "Notificar custo alto",
				Conditions: []domain.Condition{
					{Metric: domain.MetricCost, Operator: domain.OperatorGreaterThan, Value: 100.0},
				},
				Actions: []domain.Action{{Type: domain.ActionNotify}},
			},
			{
				ID:         "RULE002",
				CampaignID: "CAMP404",
				Name:       "Regra de campanha removida",
			},
		}

		mockRuleStore.EXPECT().
			ListActive(0).
			Return(rules, nil)

		mockCampaignStore.EXPECT().
			GetByID("CAMP001").
			Return(&domain.Campaign{ID: "CAMP001", Name: "Campanha Verão", Status: domain.CampaignStatusActive}, nil)

		mockAggregator.EXPECT().
			AggregateCampaignMetrics("CAMP001", domain.DefaultLookbackDays).
			Return(&domain.CampaignMetrics{
				CampaignID:  "CAMP001",
				Impressions: 5000,
				Clicks:      100,
				Cost:        250.0,
			}, nil)

		mockCampaignStore.EXPECT().
			GetByID("CAMP404").
			Return(nil, nil)

		results, err := engine.RunAutomation(context.Background(), automating.Scope{})

		assert.NoError(t, err)
		assert.Len(t, results, 2)

		byRule := make(map[string]*domain.RuleResult, len(results))
		for _, result := range results {
			byRule[result.RuleID] = result
		}

		assert.True(t, byRule["RULE001"].Success)
		assert.Equal(t, []string{"Notificação: Regra de automação disparada"}, byRule["RULE001"].ActionsTaken)

		assert.False(t, byRule["RULE002"].Success)
		assert.Equal(t, "campanha não encontrada: CAMP404", byRule["RULE002"].Error)
	})
}
