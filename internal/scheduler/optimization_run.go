package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/optimizing"
)

// OptimizationRunConfig representa a configuração do agendador da varredura de otimização
type OptimizationRunConfig struct {
	CronSchedule  string
	LookbackDays  int
	RetentionDays int
	RunEnabled    bool
}

// RetentionStore é um armazenamento com expurgo de registros antigos por idade
type RetentionStore interface {
	DeleteOlderThan(days int) (int64, error)
}

// OptimizationRunService gerencia o agendamento da varredura periódica de otimização
// e o expurgo dos registros históricos que alimentam a análise
type OptimizationRunService struct {
	scheduler               *gocron.Scheduler
	config                  OptimizationRunConfig
	appConfig               *config.Config
	optimizer               optimizing.Optimizer
	performanceStore        RetentionStore
	recommendationStore     RetentionStore
	scanRunning             bool
	scanMutex               sync.Mutex
	lastScanStartedAt       time.Time
	lastScanCompletedAt     time.Time
	lastScanRecommendations int
}

// NewOptimizationRunService cria uma nova instância do serviço de varredura de otimização
func NewOptimizationRunService(
	optimizer optimizing.Optimizer,
	appConfig *config.Config,
) *OptimizationRunService {
	// Criar a configuração com base na config global
	runConfig := OptimizationRunConfig{
		CronSchedule:  appConfig.OptimizationRun.CronSchedule,
		LookbackDays:  appConfig.OptimizationRun.LookbackDays,
		RetentionDays: appConfig.OptimizationRun.RetentionDays,
		RunEnabled:    appConfig.OptimizationRun.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  runConfig.CronSchedule,
		"lookback_days":  runConfig.LookbackDays,
		"retention_days": runConfig.RetentionDays,
		"run_enabled":    runConfig.RunEnabled,
	}).Info("Configuração do agendador de otimização carregada")

	return &OptimizationRunService{
		scheduler:   scheduler,
		config:      runConfig,
		appConfig:   appConfig,
		optimizer:   optimizer,
		scanRunning: false,
	}
}

// WithRetentionStores habilita o expurgo periódico dos registros de performance
// e das recomendações mais antigos que a janela de retenção
func (s *OptimizationRunService) WithRetentionStores(performance, recommendations RetentionStore) *OptimizationRunService {
	s.performanceStore = performance
	s.recommendationStore = recommendations
	return s
}

// Start inicia o agendador
func (s *OptimizationRunService) Start(ctx context.Context) error {
	if !s.config.RunEnabled {
		logrus.Info("Varredura periódica de otimização desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de otimização")

	// Agendar a varredura
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.scanAllCampaigns(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de otimização: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de otimização")
		s.scheduler.Stop()
	}()

	return nil
}

// scanAllCampaigns roda a varredura de otimização sobre todas as campanhas ativas
func (s *OptimizationRunService) scanAllCampaigns(ctx context.Context) {
	s.scanMutex.Lock()
	if s.scanRunning {
		s.scanMutex.Unlock()
		logrus.Info("Varredura de otimização já em andamento, ignorando")
		return
	}
	s.scanRunning = true
	s.scanMutex.Unlock()

	startTime := time.Now()
	s.lastScanStartedAt = startTime

	defer func() {
		s.scanMutex.Lock()
		s.scanRunning = false
		s.scanMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura agendada de otimização")

	// Varredura agendada cobre todos os usuários com a janela configurada
	recommendations, err := s.optimizer.RunOptimization(ctx, 0, s.config.LookbackDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar varredura de otimização")
		return
	}

	s.lastScanRecommendations = len(recommendations)
	s.lastScanCompletedAt = time.Now()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":        duration.String(),
		"recommendations": len(recommendations),
	}).Info("Varredura agendada de otimização concluída")

	s.pruneOldRecords()
}

// pruneOldRecords expurga registros de performance e recomendações mais antigos
// que a janela de retenção configurada
func (s *OptimizationRunService) pruneOldRecords() {
	if s.config.RetentionDays <= 0 {
		return
	}

	stores := map[string]RetentionStore{
		"performance_records": s.performanceStore,
		"recommendations":     s.recommendationStore,
	}

	for name, store := range stores {
		if store == nil {
			continue
		}

		deleted, err := store.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"store": name,
				"error": err.Error(),
			}).Error("Erro ao expurgar registros antigos")
			continue
		}

		if deleted > 0 {
			logrus.WithFields(logrus.Fields{
				"store":          name,
				"deleted":        deleted,
				"retention_days": s.config.RetentionDays,
			}).Info("Registros antigos expurgados")
		}
	}
}

// TriggerManualScan inicia manualmente uma varredura de otimização
func (s *OptimizationRunService) TriggerManualScan(ctx context.Context) {
	s.scanMutex.Lock()
	if s.scanRunning {
		s.scanMutex.Unlock()
		logrus.Info("Varredura de otimização já em andamento, ignorando solicitação manual")
		return
	}
	s.scanMutex.Unlock()

	logrus.Info("Iniciando varredura manual de otimização")
	go s.scanAllCampaigns(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *OptimizationRunService) GetStatus() map[string]any {
	return map[string]any{
		"scan_enabled":              s.config.RunEnabled,
		"scan_cron":                 s.config.CronSchedule,
		"scan_lookback_days":        s.config.LookbackDays,
		"scan_retention_days":       s.config.RetentionDays,
		"last_scan_started_at":      s.lastScanStartedAt,
		"last_scan_completed_at":    s.lastScanCompletedAt,
		"last_scan_recommendations": s.lastScanRecommendations,
	}
}
