package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating"
	automatingmocks "github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating/mocks"
	"go.uber.org/mock/gomock"
)

func TestAutomationRunService_runAllRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockEngine := automatingmocks.NewMockEngine(ctrl)

	// Service
	service := &AutomationRunService{
		config: AutomationRunConfig{
			CronSchedule:       "0 * * * *",
			MaxConcurrentRules: 5,
			RunTimeoutSeconds:  60,
			RunEnabled:         true,
		},
		engine: mockEngine,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Execução com regras bem e mal sucedidas - deve contabilizar as falhas",
			setup: func() {
				// A execução agendada varre todos os usuários
				mockEngine.EXPECT().
					RunAutomation(gomock.Any(), automating.Scope{}).
					Return([]*domain.RuleResult{
						{RuleID: "RULE001", CampaignID: "CAMP001", Success: true},
						{RuleID: "RULE002", CampaignID: "CAMP002", Success: true},
						{RuleID: "RULE003", CampaignID: "CAMP003", Success: false, Error: "campanha não encontrada: CAMP003"},
					}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 3, status["last_run_rules"])
				assert.Equal(t, 1, status["last_run_failures"])
			},
		},
		{
			name: "Erro do motor de automação - contadores da última execução não avançam",
			setup: func() {
				mockEngine.EXPECT().
					RunAutomation(gomock.Any(), automating.Scope{}).
					Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, status map[string]any) {
				// Mantém os valores da execução anterior
				assert.Equal(t, 3, status["last_run_rules"])
				assert.Equal(t, 1, status["last_run_failures"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.runAllRules(context.Background())

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestAutomationRunService_runAllRules_ignoresOverlappingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := automatingmocks.NewMockEngine(ctrl)

	service := &AutomationRunService{
		config: AutomationRunConfig{
			CronSchedule: "0 * * * *",
			RunEnabled:   true,
		},
		engine:     mockEngine,
		runRunning: true,
	}

	// Com uma execução em andamento o motor nunca é chamado
	service.runAllRules(context.Background())

	assert.Equal(t, 0, service.lastRunRules)
}
