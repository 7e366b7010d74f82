package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating"
)

// AutomationRunConfig representa a configuração do agendador de execuções de automação
type AutomationRunConfig struct {
	CronSchedule       string
	MaxConcurrentRules int
	RunTimeoutSeconds  int
	RunEnabled         bool
}

// AutomationRunService gerencia o agendamento e a execução periódica das regras de automação
type AutomationRunService struct {
	scheduler          *gocron.Scheduler
	config             AutomationRunConfig
	appConfig          *config.Config
	engine             automating.Engine
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunRules       int
	lastRunFailures    int
}

// NewAutomationRunService cria uma nova instância do serviço de execução de automação
func NewAutomationRunService(
	engine automating.Engine,
	appConfig *config.Config,
) *AutomationRunService {
	// Criar a configuração com base na config global
	runConfig := AutomationRunConfig{
		CronSchedule:       appConfig.AutomationRun.CronSchedule,
		MaxConcurrentRules: appConfig.AutomationRun.MaxConcurrentRules,
		RunTimeoutSeconds:  appConfig.AutomationRun.RunTimeoutSeconds,
		RunEnabled:         appConfig.AutomationRun.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        runConfig.CronSchedule,
		"max_concurrent_rules": runConfig.MaxConcurrentRules,
		"run_timeout_seconds":  runConfig.RunTimeoutSeconds,
		"run_enabled":          runConfig.RunEnabled,
	}).Info("Configuração do agendador de automação carregada")

	return &AutomationRunService{
		scheduler:  scheduler,
		config:     runConfig,
		appConfig:  appConfig,
		engine:     engine,
		runRunning: false,
	}
}

// Start inicia o agendador
func (s *AutomationRunService) Start(ctx context.Context) error {
	if !s.config.RunEnabled {
		logrus.Info("Execução periódica de automação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de execução de automação")

	// Agendar a execução das regras
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAllRules(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução de automação: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de execução de automação")
		s.scheduler.Stop()
	}()

	return nil
}

// runAllRules executa todas as regras de automação ativas
func (s *AutomationRunService) runAllRules(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Execução de automação já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	logrus.Info("Iniciando execução agendada das regras de automação")

	// Execução agendada varre todos os usuários
	results, err := s.engine.RunAutomation(ctx, automating.Scope{})
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar as regras de automação")
		return
	}

	failures := 0
	for _, result := range results {
		if !result.Success {
			failures++
		}
	}

	s.lastRunRules = len(results)
	s.lastRunFailures = failures
	s.lastRunCompletedAt = time.Now()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"rules":    len(results),
		"failures": failures,
	}).Info("Execução agendada das regras de automação concluída")
}

// TriggerManualRun inicia manualmente uma execução de automação
func (s *AutomationRunService) TriggerManualRun(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Execução de automação já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando execução manual das regras de automação")
	go s.runAllRules(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *AutomationRunService) GetStatus() map[string]any {
	return map[string]any{
		"run_enabled":           s.config.RunEnabled,
		"run_cron":              s.config.CronSchedule,
		"run_max_concurrent":    s.config.MaxConcurrentRules,
		"run_timeout_seconds":   s.config.RunTimeoutSeconds,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_rules":        s.lastRunRules,
		"last_run_failures":     s.lastRunFailures,
	}
}
