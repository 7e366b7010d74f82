package automating_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockCampaignStore := mocks.NewMockCampaignStore(ctrl)
	mockAdGroupStore := mocks.NewMockAdGroupStore(ctrl)
	mockSyncer := mocks.NewMockPlatformSyncer(ctrl)

	// Service
	executor := automating.NewExecutor(mockCampaignStore, mockAdGroupStore, mockSyncer, 2*time.Second)

	newCampaign := func() *domain.Campaign {
		return &domain.Campaign{
			ID:         "CAMP001",
			Name:       "Campanha Verão",
			Status:     domain.CampaignStatusActive,
			Budget:     1000.0,
			ExternalID: stringPtr("EXT001"),
		}
	}

	tests := []struct {
		name     string
		campaign *domain.Campaign
		action   domain.Action
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult)
	}{
		{
			name:     "Pausar campanha ativa - deve gravar localmente e sincronizar com a plataforma",
			campaign: newCampaign(),
			action:   domain.Action{Type: domain.ActionPause},
			setup: func() {
				mockCampaignStore.EXPECT().
					UpdateStatus("CAMP001", domain.CampaignStatusPaused).
					Return(nil)

				mockSyncer.EXPECT().
					SetCampaignStatus(gomock.Any(), "EXT001", domain.CampaignStatusPaused).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, "Campanha pausada", result.Description)
				assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
			},
		},
		{
			name: "Pausar campanha já pausada - no-op bem-sucedido sem tocar no repositório",
			campaign: &domain.Campaign{
				ID:     "CAMP001",
				Status: domain.CampaignStatusPaused,
			},
			action: domain.Action{Type: domain.ActionPause},
			setup:  func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, "Campanha já estava pausada", result.Description)
			},
		},
		{
			name: "Pausar campanha sem vínculo externo - não sincroniza com a plataforma",
			campaign: &domain.Campaign{
				ID:     "CAMP002",
				Status: domain.CampaignStatusActive,
			},
			action: domain.Action{Type: domain.ActionPause},
			setup: func() {
				mockCampaignStore.EXPECT().
					UpdateStatus("CAMP002", domain.CampaignStatusPaused).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
			},
		},
		{
			name: "Reativar campanha pausada - deve gravar localmente e sincronizar",
			campaign: &domain.Campaign{
				ID:         "CAMP001",
				Status:     domain.CampaignStatusPaused,
				ExternalID: stringPtr("EXT001"),
			},
			action: domain.Action{Type: domain.ActionResume},
			setup: func() {
				mockCampaignStore.EXPECT().
					UpdateStatus("CAMP001", domain.CampaignStatusActive).
					Return(nil)

				mockSyncer.EXPECT().
					SetCampaignStatus(gomock.Any(), "EXT001", domain.CampaignStatusActive).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
			},
		},
		{
			name:     "Falha ao gravar o status - resultado de falha sem sincronização",
			campaign: newCampaign(),
			action:   domain.Action{Type: domain.ActionPause},
			setup: func() {
				mockCampaignStore.EXPECT().
					UpdateStatus("CAMP001", domain.CampaignStatusPaused).
					Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.False(t, result.Success)
				assert.Contains(t, result.Error, "erro ao pausar campanha")
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
			},
		},
		{
			name:     "Ajuste percentual de orçamento - deve aplicar e sincronizar o novo valor",
			campaign: newCampaign(),
			action: domain.Action{
				Type:       domain.ActionAdjustBudget,
				Adjustment: &domain.Adjustment{Type: domain.AdjustmentPercentage, Value: 20.0},
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					UpdateBudget("CAMP001", 1200.0).
					Return(nil)

				mockSyncer.EXPECT().
					SetCampaignBudget(gomock.Any(), "EXT001", 1200.0).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, 1200.0, campaign.Budget)
				assert.Equal(t, "Orçamento ajustado de 1000.00 para 1200.00", result.Description)
			},
		},
		{
			name: "Ajuste que estoura o teto - deve limitar ao máximo padrão",
			campaign: &domain.Campaign{
				ID:     "CAMP001",
				Status: domain.CampaignStatusActive,
				Budget: 45000.0,
			},
			action: domain.Action{
				Type:       domain.ActionAdjustBudget,
				Adjustment: &domain.Adjustment{Type: domain.AdjustmentPercentage, Value: 20.0},
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					UpdateBudget("CAMP001", domain.DefaultBudgetMax).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, domain.DefaultBudgetMax, campaign.Budget)
			},
		},
		{
			name: "Redução fixa abaixo do piso - deve limitar ao mínimo padrão",
			campaign: &domain.Campaign{
				ID:     "CAMP001",
				Status: domain.CampaignStatusActive,
				Budget: 50.0,
			},
			action: domain.Action{
				Type:       domain.ActionAdjustBudget,
				Adjustment: &domain.Adjustment{Type: domain.AdjustmentFixed, Value: -100.0},
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					UpdateBudget("CAMP001", domain.DefaultBudgetMin).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, domain.DefaultBudgetMin, campaign.Budget)
			},
		},
		{
			name:     "Falha de sincronização do orçamento - a mudança local permanece",
			campaign: newCampaign(),
			action: domain.Action{
				Type:       domain.ActionAdjustBudget,
				Adjustment: &domain.Adjustment{Type: domain.AdjustmentPercentage, Value: 10.0},
			},
			setup: func() {
				mockCampaignStore.EXPECT().
					UpdateBudget("CAMP001", 1100.0).
					Return(nil)

				mockSyncer.EXPECT().
					SetCampaignBudget(gomock.Any(), "EXT001", 1100.0).
					Return(errors.New("plataforma indisponível"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, 1100.0, campaign.Budget)
			},
		},
		{
			name:     "Ajuste de orçamento sem bloco adjustment - resultado de falha",
			campaign: newCampaign(),
			action:   domain.Action{Type: domain.ActionAdjustBudget},
			setup:    func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.False(t, result.Success)
				assert.Equal(t, "ação adjust_budget sem bloco adjustment", result.Error)
			},
		},
		{
			name:     "Ajuste de lance - grupos sem lance definido são ignorados",
			campaign: newCampaign(),
			action: domain.Action{
				Type:       domain.ActionAdjustBid,
				Adjustment: &domain.Adjustment{Type: domain.AdjustmentPercentage, Value: 50.0},
			},
			setup: func() {
				mockAdGroupStore.EXPECT().
					ListByCampaignID("CAMP001").
					Return([]*domain.AdGroup{
						{ID: "AG001", CampaignID: "CAMP001", BidAmount: float64Ptr(2.0), ExternalID: stringPtr("EXTAG001")},
						{ID: "AG002", CampaignID: "CAMP001", BidAmount: nil},
					}, nil)

				mockAdGroupStore.EXPECT().
					UpdateBid("AG001", 3.0).
					Return(nil)

				mockSyncer.EXPECT().
					SetAdGroupBid(gomock.Any(), "EXTAG001", 3.0).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, "Lance ajustado em 1 grupos de anúncios", result.Description)
			},
		},
		{
			name:     "Falha em um grupo não interrompe o ajuste dos demais",
			campaign: newCampaign(),
			action: domain.Action{
				Type:       domain.ActionAdjustBid,
				Adjustment: &domain.Adjustment{Type: domain.AdjustmentFixed, Value: 1.0},
			},
			setup: func() {
				mockAdGroupStore.EXPECT().
					ListByCampaignID("CAMP001").
					Return([]*domain.AdGroup{
						{ID: "AG001", CampaignID: "CAMP001", BidAmount: float64Ptr(2.0)},
						{ID: "AG002", CampaignID: "CAMP001", BidAmount: float64Ptr(4.0)},
					}, nil)

				mockAdGroupStore.EXPECT().
					UpdateBid("AG001", 3.0).
					Return(errors.New("conexão perdida"))

				mockAdGroupStore.EXPECT().
					UpdateBid("AG002", 5.0).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, "Lance ajustado em 1 grupos de anúncios", result.Description)
			},
		},
		{
			name:     "Notificação sem mensagem - deve usar a mensagem padrão",
			campaign: newCampaign(),
			action:   domain.Action{Type: domain.ActionNotify},
			setup:    func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.True(t, result.Success)
				assert.Equal(t, "Notificação: Regra de automação disparada", result.Description)
			},
		},
		{
			name:     "Tipo de ação desconhecido - resultado de falha descritivo",
			campaign: newCampaign(),
			action:   domain.Action{Type: domain.ActionType("archive")},
			setup:    func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, result domain.ActionResult) {
				assert.False(t, result.Success)
				assert.Contains(t, result.Error, "tipo de ação desconhecido")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result := executor.Execute(context.Background(), tt.campaign, tt.action)

			tt.validate(t, tt.campaign, result)
		})
	}
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}
