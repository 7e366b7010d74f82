package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/database/postgres"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/integrator/meta"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/integrator/meta/metaclient"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/integrator/openai"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/integrator/openai/openaiclient"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/repository"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/api"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/scheduler"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/aggregating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/authenticating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/campaigning"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/copywriting"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/optimizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adGroupRepo := repository.NewAdGroupRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	ruleRepo := repository.NewAutomationRuleRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	openaiClient := openaiclient.NewClient(cfg)
	openaiIntegrator := openai.New(cfg, openaiClient)

	// Monta o motor de automação: agregação de métricas, avaliação de condições
	// e execução de ações com sincronização na plataforma
	aggregator := aggregating.NewService(performanceRepo)
	evaluator := automating.NewEvaluator(aggregator)
	executor := automating.NewExecutor(
		campaignRepo,
		adGroupRepo,
		metaIntegrator,
		time.Duration(cfg.AutomationRun.SyncTimeoutSeconds)*time.Second,
	)
	automationEngine := automating.NewService(cfg, ruleRepo, campaignRepo, evaluator, executor)

	// Inicializa o motor de otimização com suporte à persistência de recomendações
	optimizer := optimizing.NewService(cfg, campaignRepo, aggregator)
	if cfg.OptimizationRun.StoreResults {
		optimizer = optimizer.(*optimizing.Service).WithRecommendationStore(recommendationRepo)
	}

	campaignService := campaigning.NewService(campaignRepo, adGroupRepo, ruleRepo)
	copywriter := copywriting.NewService(campaignRepo, openaiIntegrator)

	// Inicializa os agendadores das rotinas periódicas
	automationRunService := scheduler.NewAutomationRunService(automationEngine, cfg)
	optimizationRunService := scheduler.NewOptimizationRunService(optimizer, cfg).
		WithRetentionStores(performanceRepo, recommendationRepo)

	// Inicia os agendadores em background
	if err := automationRunService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de execução de automação")
	} else {
		logrus.Info("Agendador de execução de automação iniciado com sucesso")
	}

	if err := optimizationRunService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de otimização")
	} else {
		logrus.Info("Agendador da varredura de otimização iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		campaignService,
		automationEngine,
		optimizer,
		copywriter,
		recommendationRepo,
		performanceRepo,
		automationRunService,
		optimizationRunService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
