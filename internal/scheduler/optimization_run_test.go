package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	optimizingmocks "github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

// retentionStoreStub registra as chamadas de expurgo feitas pelo agendador
type retentionStoreStub struct {
	calledWithDays []int
	deleted        int64
	err            error
}

func (s *retentionStoreStub) DeleteOlderThan(days int) (int64, error) {
	s.calledWithDays = append(s.calledWithDays, days)
	return s.deleted, s.err
}

func TestOptimizationRunService_scanAllCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockOptimizer := optimizingmocks.NewMockOptimizer(ctrl)

	t.Run("Varredura agendada usa a janela configurada e expurga registros antigos", func(t *testing.T) {
		performanceStore := &retentionStoreStub{deleted: 12}
		recommendationStore := &retentionStoreStub{deleted: 3}

		service := &OptimizationRunService{
			config: OptimizationRunConfig{
				CronSchedule:  "0 7 * * *",
				LookbackDays:  30,
				RetentionDays: 60,
				RunEnabled:    true,
			},
			optimizer:           mockOptimizer,
			performanceStore:    performanceStore,
			recommendationStore: recommendationStore,
		}

		mockOptimizer.EXPECT().
			RunOptimization(gomock.Any(), 0, 30).
			Return([]*domain.Recommendation{
				{CampaignID: "CAMP001", Type: domain.RecommendationLowCTR},
			}, nil)

		service.scanAllCampaigns(context.Background())

		assert.Equal(t, []int{60}, performanceStore.calledWithDays)
		assert.Equal(t, []int{60}, recommendationStore.calledWithDays)

		status := service.GetStatus()
		assert.Equal(t, 1, status["last_scan_recommendations"])
		assert.Equal(t, 60, status["scan_retention_days"])
	})

	t.Run("Falha no expurgo de um armazenamento não impede o outro", func(t *testing.T) {
		performanceStore := &retentionStoreStub{err: errors.New("conexão perdida")}
		recommendationStore := &retentionStoreStub{deleted: 5}

		service := &OptimizationRunService{
			config: OptimizationRunConfig{
				LookbackDays:  30,
				RetentionDays: 90,
				RunEnabled:    true,
			},
			optimizer:           mockOptimizer,
			performanceStore:    performanceStore,
			recommendationStore: recommendationStore,
		}

		mockOptimizer.EXPECT().
			RunOptimization(gomock.Any(), 0, 30).
			Return([]*domain.Recommendation{}, nil)

		service.scanAllCampaigns(context.Background())

		assert.Equal(t, []int{90}, performanceStore.calledWithDays)
		assert.Equal(t, []int{90}, recommendationStore.calledWithDays)
	})

	t.Run("Retenção desabilitada - nenhum expurgo acontece", func(t *testing.T) {
		performanceStore := &retentionStoreStub{}
		recommendationStore := &retentionStoreStub{}

		service := &OptimizationRunService{
			config: OptimizationRunConfig{
				LookbackDays:  30,
				RetentionDays: 0,
				RunEnabled:    true,
			},
			optimizer:           mockOptimizer,
			performanceStore:    performanceStore,
			recommendationStore: recommendationStore,
		}

		mockOptimizer.EXPECT().
			RunOptimization(gomock.Any(), 0, 30).
			Return([]*domain.Recommendation{}, nil)

		service.scanAllCampaigns(context.Background())

		assert.Empty(t, performanceStore.calledWithDays)
		assert.Empty(t, recommendationStore.calledWithDays)
	})
}
