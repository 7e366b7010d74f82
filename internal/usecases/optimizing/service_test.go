package optimizing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	aggregatingmocks "github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/aggregating/mocks"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_AnalyzeCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	// Service
	service := &Service{
		cfg:        &config.Config{},
		aggregator: mockAggregator,
	}

	campaign := &domain.Campaign{
		ID:     "CAMP001",
		Name:   "Campanha Verão",
		Status: domain.CampaignStatusActive,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, recommendations []*domain.Recommendation, err error)
	}{
		{
			name: "Campanha sem impressões na janela - sem sinal, sem recomendações",
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", 30).
					Return(&domain.CampaignMetrics{CampaignID: "CAMP001"}, nil)
			},
			validate: func(t *testing.T, recommendations []*domain.Recommendation, err error) {
				assert.NoError(t, err)
				assert.Empty(t, recommendations)
			},
		},
		{
			name: "Campanha saudável - nenhuma verificação dispara",
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", 30).
					Return(&domain.CampaignMetrics{
						CampaignID:     "CAMP001",
						Impressions:    20000,
						Clicks:         400,
						Conversions:    20,
						Cost:           500.0,
						Revenue:        1250.0,
						CTR:            2.0,
						CPC:            1.25,
						ROAS:           2.5,
						ConversionRate: 5.0,
					}, nil)
			},
			validate: func(t *testing.T, recommendations []*domain.Recommendation, err error) {
				assert.NoError(t, err)
				assert.Empty(t, recommendations)
			},
		},
		{
			name: "Campanha com desempenho ruim em todas as frentes - quatro recomendações",
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", 30).
					Return(&domain.CampaignMetrics{
						CampaignID:     "CAMP001",
						Impressions:    30000,
						Clicks:         150,
						Conversions:    1,
						Cost:           450.0,
						Revenue:        450.0,
						CTR:            0.5,
						CPC:            3.0,
						ROAS:           1.0,
						ConversionRate: 0.67,
					}, nil)
			},
			validate: func(t *testing.T, recommendations []*domain.Recommendation, err error) {
				assert.NoError(t, err)
				assert.Len(t, recommendations, 4)

				types := make([]domain.RecommendationType, 0, len(recommendations))
				for _, rec := range recommendations {
					types = append(types, rec.Type)
					assert.Equal(t, "CAMP001", rec.CampaignID)
					assert.Equal(t, "Campanha Verão", rec.CampaignName)
					assert.NotEmpty(t, rec.Message)
					assert.NotEmpty(t, rec.SuggestedActions)
				}

				assert.Contains(t, types, domain.RecommendationLowCTR)
				assert.Contains(t, types, domain.RecommendationLowROAS)
				assert.Contains(t, types, domain.RecommendationHighCPC)
				assert.Contains(t, types, domain.RecommendationLowConversionRate)
			},
		},
		{
			name: "ROAS baixo com custo irrelevante - verificação de ROAS não dispara",
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", 30).
					Return(&domain.CampaignMetrics{
						CampaignID:     "CAMP001",
						Impressions:    15000,
						Clicks:         300,
						Conversions:    12,
						Cost:           50.0,
						Revenue:        60.0,
						CTR:            2.0,
						CPC:            0.17,
						ROAS:           1.2,
						ConversionRate: 4.0,
					}, nil)
			},
			validate: func(t *testing.T, recommendations []*domain.Recommendation, err error) {
				assert.NoError(t, err)
				assert.Empty(t, recommendations)
			},
		},
		{
			name: "ROAS alto com poucas impressões - oportunidade de escala em prioridade baixa",
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", 30).
					Return(&domain.CampaignMetrics{
						CampaignID:     "CAMP001",
						Impressions:    5000,
						Clicks:         150,
						Conversions:    12,
						Cost:           80.0,
						Revenue:        320.0,
						CTR:            3.0,
						CPC:            0.53,
						ROAS:           4.0,
						ConversionRate: 8.0,
					}, nil)
			},
			validate: func(t *testing.T, recommendations []*domain.Recommendation, err error) {
				assert.NoError(t, err)
				assert.Len(t, recommendations, 1)
				assert.Equal(t, domain.RecommendationScaleOpportunity, recommendations[0].Type)
				assert.Equal(t, domain.PriorityLow, recommendations[0].Priority)
				assert.Equal(t, 5000.0, recommendations[0].CurrentValue)
				assert.Equal(t, 10000.0, recommendations[0].Benchmark)
			},
		},
		{
			name: "Erro na agregação das métricas - deve propagar o erro",
			setup: func() {
				mockAggregator.EXPECT().
					AggregateCampaignMetrics("CAMP001", 30).
					Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, recommendations []*domain.Recommendation, err error) {
				assert.Error(t, err)
				assert.Nil(t, recommendations)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			recommendations, err := service.AnalyzeCampaign(campaign, 30)

			tt.validate(t, recommendations, err)
		})
	}
}

func TestService_RunOptimization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignLister := mocks.NewMockCampaignLister(ctrl)
	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)
	mockRecommendationWriter := mocks.NewMockRecommendationWriter(ctrl)

	service := &Service{
		cfg: &config.Config{
			OptimizationRun: config.OptimizationRun{
				LookbackDays: 30,
				StoreResults: true,
			},
		},
		campaignLister:       mockCampaignLister,
		aggregator:           mockAggregator,
		recommendationWriter: mockRecommendationWriter,
	}

	t.Run("Erro em uma campanha não interrompe a varredura das demais", func(t *testing.T) {
		mockCampaignLister.EXPECT().
			ListByStatus(domain.CampaignStatusActive, 0).
			Return([]*domain.Campaign{
				{ID: "CAMP001", Name: "Campanha Verão", Status: domain.CampaignStatusActive},
				{ID: "CAMP002", Name: "Campanha Inverno", Status: domain.CampaignStatusActive},
			}, nil)

		// A primeira campanha falha na agregação e é ignorada
		mockAggregator.EXPECT().
			AggregateCampaignMetrics("CAMP001", 30).
			Return(nil, errors.New("conexão perdida"))

		mockAggregator.EXPECT().
			AggregateCampaignMetrics("CAMP002", 30).
			Return(&domain.CampaignMetrics{
				CampaignID:     "CAMP002",
				Impressions:    25000,
				Clicks:         125,
				Conversions:    6,
				Cost:           400.0,
				Revenue:        1000.0,
				CTR:            0.5,
				CPC:            1.6,
				ROAS:           2.5,
				ConversionRate: 4.8,
			}, nil)

		mockRecommendationWriter.EXPECT().
			Save(gomock.Any()).
			Return(nil)

		recommendations, err := service.RunOptimization(context.Background(), 0, 0)

		assert.NoError(t, err)
		assert.Len(t, recommendations, 1)
		assert.Equal(t, "CAMP002", recommendations[0].CampaignID)
		assert.Equal(t, domain.RecommendationLowCTR, recommendations[0].Type)
		assert.Equal(t, domain.PriorityHigh, recommendations[0].Priority)
	})

	t.Run("Janela informada pelo chamador prevalece sobre a configuração", func(t *testing.T) {
		mockCampaignLister.EXPECT().
			ListByStatus(domain.CampaignStatusActive, 0).
			Return([]*domain.Campaign{
				{ID: "CAMP004", Name: "Campanha Primavera", Status: domain.CampaignStatusActive},
			}, nil)

		// A config define 30 dias, mas o chamador pede 14
		mockAggregator.EXPECT().
			AggregateCampaignMetrics("CAMP004", 14).
			Return(&domain.CampaignMetrics{CampaignID: "CAMP004"}, nil)

		recommendations, err := service.RunOptimization(context.Background(), 0, 14)

		assert.NoError(t, err)
		assert.Empty(t, recommendations)
	})

	t.Run("Varredura sem recomendações - não persiste nada", func(t *testing.T) {
		mockCampaignLister.EXPECT().
			ListByStatus(domain.CampaignStatusActive, 7).
			Return([]*domain.Campaign{
				{ID: "CAMP003", Name: "Campanha Outono", Status: domain.CampaignStatusActive},
			}, nil)

		mockAggregator.EXPECT().
			AggregateCampaignMetrics("CAMP003", 30).
			Return(&domain.CampaignMetrics{CampaignID: "CAMP003"}, nil)

		recommendations, err := service.RunOptimization(context.Background(), 7, 0)

		assert.NoError(t, err)
		assert.Empty(t, recommendations)
	})

	t.Run("Erro ao listar campanhas - deve propagar o erro", func(t *testing.T) {
		mockCampaignLister.EXPECT().
			ListByStatus(domain.CampaignStatusActive, 0).
			Return(nil, errors.New("conexão perdida"))

		recommendations, err := service.RunOptimization(context.Background(), 0, 0)

		assert.Error(t, err)
		assert.Nil(t, recommendations)
	})
}
