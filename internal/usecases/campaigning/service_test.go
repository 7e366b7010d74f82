package campaigning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/repository/mocks"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	// Service
	service := &Service{
		campaignRepository: mockCampaignRepo,
	}

	tests := []struct {
		name     string
		userID   int
		request  *domain.CreateCampaignRequest
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:   "Campanha válida - deve criar em rascunho com identificador gerado",
			userID: 42,
			request: &domain.CreateCampaignRequest{
				Name:      "Campanha Verão",
				Objective: "conversions",
				Platform:  "meta",
				Budget:    500.0,
			},
			setup: func() {
				mockCampaignRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(campaign *domain.Campaign) error {
						assert.NotEmpty(t, campaign.ID)
						assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
						return nil
					})
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 42, campaign.UserID)
				assert.Equal(t, "Campanha Verão", campaign.Name)
				assert.Equal(t, 500.0, campaign.Budget)
			},
		},
		{
			name:    "Campanha sem nome - deve falhar antes de tocar no repositório",
			userID:  42,
			request: &domain.CreateCampaignRequest{Budget: 100.0},
			setup:   func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrCampaignNameRequired)
				assert.Nil(t, campaign)
			},
		},
		{
			name:    "Orçamento negativo - deve falhar na validação",
			userID:  42,
			request: &domain.CreateCampaignRequest{Name: "Campanha Verão", Budget: -10.0},
			setup:   func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidBudget)
				assert.Nil(t, campaign)
			},
		},
		{
			name:    "Falha do banco de dados - erro tipado com código de API",
			userID:  42,
			request: &domain.CreateCampaignRequest{Name: "Campanha Verão", Budget: 100.0},
			setup: func() {
				mockCampaignRepo.EXPECT().
					Create(gomock.Any()).
					Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				var campaignErr *CampaignError
				assert.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
				assert.Nil(t, campaign)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			campaign, err := service.CreateCampaign(tt.userID, tt.request)

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_UpdateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		campaignRepository: mockCampaignRepo,
	}

	existing := func() *domain.Campaign {
		return &domain.Campaign{
			ID:     "CAMP001",
			UserID: 42,
			Name:   "Campanha Verão",
			Status: domain.CampaignStatusDraft,
			Budget: 500.0,
		}
	}

	t.Run("Atualização parcial - apenas os campos informados mudam", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("CAMP001").
			Return(existing(), nil)

		mockCampaignRepo.EXPECT().
			Update(gomock.Any()).
			Return(nil)

		newStatus := string(domain.CampaignStatusActive)
		newBudget := 750.0

		campaign, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{
			ID:     "CAMP001",
			Status: &newStatus,
			Budget: &newBudget,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
		assert.Equal(t, 750.0, campaign.Budget)
		assert.Equal(t, "Campanha Verão", campaign.Name)
	})

	t.Run("Status desconhecido - deve rejeitar sem gravar", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("CAMP001").
			Return(existing(), nil)

		badStatus := "archived"

		campaign, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{
			ID:     "CAMP001",
			Status: &badStatus,
		})

		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, campaign)
	})

	t.Run("Campanha inexistente - erro de não encontrada", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("CAMP404").
			Return(nil, nil)

		campaign, err := service.UpdateCampaign(&domain.UpdateCampaignRequest{ID: "CAMP404"})

		assert.ErrorIs(t, err, ErrCampaignNotFound)
		assert.Nil(t, campaign)
	})
}

func TestService_CreateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockRuleRepo := mocks.NewMockAutomationRuleRepository(ctrl)

	service := &Service{
		campaignRepository: mockCampaignRepo,
		ruleRepository:     mockRuleRepo,
	}

	validRule := func() *domain.AutomationRule {
		return &domain.AutomationRule{
			CampaignID: "CAMP001",
			Name:       "Pausar CTR baixo",
			Conditions: []domain.Condition{
				{Metric: domain.MetricCTR, Operator: domain.OperatorLessThan, Value: 1.0},
			},
			Actions: []domain.Action{{Type: domain.ActionPause}},
		}
	}

	t.Run("Regra válida em campanha existente - deve criar com identificador gerado", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("CAMP001").
			Return(&domain.Campaign{ID: "CAMP001"}, nil)

		mockRuleRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(rule *domain.AutomationRule) error {
				assert.NotEmpty(t, rule.ID)
				return nil
			})

		rule, err := service.CreateRule(validRule())

		assert.NoError(t, err)
		assert.NotEmpty(t, rule.ID)
	})

	t.Run("Regra com operador desconhecido - rejeitada na fronteira de validação", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("CAMP001").
			Return(&domain.Campaign{ID: "CAMP001"}, nil)

		rule := validRule()
		rule.Conditions[0].Operator = domain.ComparisonOperator("almost_equals")

		created, err := service.CreateRule(rule)

		assert.ErrorIs(t, err, ErrInvalidRule)
		assert.Nil(t, created)
	})

	t.Run("Regra de ajuste sem bloco adjustment - rejeitada na validação", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("CAMP001").
			Return(&domain.Campaign{ID: "CAMP001"}, nil)

		rule := validRule()
		rule.Actions = []domain.Action{{Type: domain.ActionAdjustBudget}}

		created, err := service.CreateRule(rule)

		assert.ErrorIs(t, err, ErrInvalidRule)
		assert.Nil(t, created)
	})

	t.Run("Regra em campanha inexistente - erro de campanha não encontrada", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("CAMP404").
			Return(nil, nil)

		rule := validRule()
		rule.CampaignID = "CAMP404"

		created, err := service.CreateRule(rule)

		assert.ErrorIs(t, err, ErrCampaignNotFound)
		assert.Nil(t, created)
	})
}

func TestService_UpdateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockAutomationRuleRepository(ctrl)

	service := &Service{
		ruleRepository: mockRuleRepo,
	}

	t.Run("A campanha dona da regra nunca muda na atualização", func(t *testing.T) {
		mockRuleRepo.EXPECT().
			GetByID("RULE001").
			Return(&domain.AutomationRule{
				ID:         "RULE001",
				CampaignID: "CAMP001",
				Name:       "Pausar CTR baixo",
			}, nil)

		mockRuleRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(rule *domain.AutomationRule) error {
				assert.Equal(t, "CAMP001", rule.CampaignID)
				return nil
			})

		updated, err := service.UpdateRule(&domain.AutomationRule{
			ID:         "RULE001",
			CampaignID: "CAMP999",
			Name:       "Pausar CTR muito baixo",
		})

		assert.NoError(t, err)
		assert.Equal(t, "CAMP001", updated.CampaignID)
	})
}
