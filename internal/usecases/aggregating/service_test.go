package aggregating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_AggregateCampaignMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockPerformanceReader := mocks.NewMockPerformanceReader(ctrl)

	// Service
	service := &Service{
		performanceReader: mockPerformanceReader,
	}

	tests := []struct {
		name         string
		campaignID   string
		lookbackDays int
		setup        func()
		validate     func(t *testing.T, metrics *domain.CampaignMetrics, err error)
	}{
		{
			name:         "Campanha com dois dias de performance - deve somar contadores e recalcular razões",
			campaignID:   "CAMP001",
			lookbackDays: 7,
			setup: func() {
				mockPerformanceReader.EXPECT().
					GetByCampaignAndDateRange("CAMP001", gomock.Any(), gomock.Any()).
					Return([]*domain.PerformanceRecord{
						{
							CampaignID:  "CAMP001",
							Impressions: 1000,
							Clicks:      50,
							Conversions: 5,
							Cost:        100.0,
							Revenue:     300.0,
						},
						{
							CampaignID:  "CAMP001",
							Impressions: 500,
							Clicks:      25,
							Conversions: 5,
							Cost:        50.0,
							Revenue:     150.0,
						},
					}, nil)
			},
			validate: func(t *testing.T, metrics *domain.CampaignMetrics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1500, metrics.Impressions)
				assert.Equal(t, 75, metrics.Clicks)
				assert.Equal(t, 10, metrics.Conversions)
				assert.Equal(t, 150.0, metrics.Cost)
				assert.Equal(t, 450.0, metrics.Revenue)

				// Razões recalculadas a partir dos totais, nunca média das linhas diárias
				assert.Equal(t, 5.0, metrics.CTR)
				assert.Equal(t, 2.0, metrics.CPC)
				assert.InDelta(t, 13.3333, metrics.ConversionRate, 0.0001)
				assert.Equal(t, 3.0, metrics.ROAS)
			},
		},
		{
			name:         "Razões não são arredondadas na agregação - comparações de limiar usam o valor bruto",
			campaignID:   "CAMP006",
			lookbackDays: 7,
			setup: func() {
				mockPerformanceReader.EXPECT().
					GetByCampaignAndDateRange("CAMP006", gomock.Any(), gomock.Any()).
					Return([]*domain.PerformanceRecord{
						{
							CampaignID:  "CAMP006",
							Impressions: 201,
							Clicks:      2,
							Cost:        10.0,
							Revenue:     10.0,
						},
					}, nil)
			},
			validate: func(t *testing.T, metrics *domain.CampaignMetrics, err error) {
				assert.NoError(t, err)
				// 2/201*100 = 0.995..., que arredondado viraria 1.0 e mudaria o
				// resultado de uma condição "ctr less_than 1.0"
				assert.Less(t, metrics.CTR, 1.0)
				assert.InDelta(t, 0.99502, metrics.CTR, 0.00001)
			},
		},
		{
			name:         "Campanha com impressões mas sem cliques - divisor zero resulta em razões zeradas",
			campaignID:   "CAMP002",
			lookbackDays: 7,
			setup: func() {
				mockPerformanceReader.EXPECT().
					GetByCampaignAndDateRange("CAMP002", gomock.Any(), gomock.Any()).
					Return([]*domain.PerformanceRecord{
						{
							CampaignID:  "CAMP002",
							Impressions: 200,
						},
					}, nil)
			},
			validate: func(t *testing.T, metrics *domain.CampaignMetrics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 200, metrics.Impressions)
				assert.Equal(t, 0.0, metrics.CTR)
				assert.Equal(t, 0.0, metrics.CPC)
				assert.Equal(t, 0.0, metrics.ConversionRate)
				assert.Equal(t, 0.0, metrics.ROAS)
			},
		},
		{
			name:         "Campanha sem registros na janela - deve retornar métricas zeradas sem erro",
			campaignID:   "CAMP003",
			lookbackDays: 7,
			setup: func() {
				mockPerformanceReader.EXPECT().
					GetByCampaignAndDateRange("CAMP003", gomock.Any(), gomock.Any()).
					Return([]*domain.PerformanceRecord{}, nil)
			},
			validate: func(t *testing.T, metrics *domain.CampaignMetrics, err error) {
				assert.NoError(t, err)
				assert.True(t, metrics.IsEmpty())
				assert.Equal(t, "CAMP003", metrics.CampaignID)
			},
		},
		{
			name:         "Janela não informada - deve usar a janela padrão de sete dias",
			campaignID:   "CAMP004",
			lookbackDays: 0,
			setup: func() {
				mockPerformanceReader.EXPECT().
					GetByCampaignAndDateRange("CAMP004", gomock.Any(), gomock.Any()).
					DoAndReturn(func(campaignID string, startDate, endDate time.Time) ([]*domain.PerformanceRecord, error) {
						assert.Equal(t, float64(domain.DefaultLookbackDays*24), endDate.Sub(startDate).Hours())
						return []*domain.PerformanceRecord{}, nil
					})
			},
			validate: func(t *testing.T, metrics *domain.CampaignMetrics, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, metrics)
			},
		},
		{
			name:         "Erro na leitura dos registros - deve propagar o erro",
			campaignID:   "CAMP005",
			lookbackDays: 7,
			setup: func() {
				mockPerformanceReader.EXPECT().
					GetByCampaignAndDateRange("CAMP005", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, metrics *domain.CampaignMetrics, err error) {
				assert.Error(t, err)
				assert.Nil(t, metrics)
			},
		},
		{
			name:         "Campanha sem identificador - deve falhar antes de consultar o repositório",
			campaignID:   "",
			lookbackDays: 7,
			setup:        func() {},
			validate: func(t *testing.T, metrics *domain.CampaignMetrics, err error) {
				assert.Error(t, err)
				assert.Nil(t, metrics)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			metrics, err := service.AggregateCampaignMetrics(tt.campaignID, tt.lookbackDays)

			tt.validate(t, metrics, err)
		})
	}
}
