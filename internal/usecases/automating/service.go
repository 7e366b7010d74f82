package automating

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

// Service é o motor de automação: varre as regras ativas, avalia as condições de cada
// uma sobre as métricas agregadas e executa as ações das regras que dispararam.
type Service struct {
	cfg           *config.Config
	ruleStore     RuleStore
	campaignStore CampaignStore
	evaluator     *Evaluator
	executor      *Executor

	// Serializa execuções concorrentes sobre a mesma campanha
	locksMutex    sync.Mutex
	campaignLocks map[string]*sync.Mutex
}

func NewService(
	cfg *config.Config,
	ruleStore RuleStore,
	campaignStore CampaignStore,
	evaluator *Evaluator,
	executor *Executor,
) Engine {
	return &Service{
		cfg:           cfg,
		ruleStore:     ruleStore,
		campaignStore: campaignStore,
		evaluator:     evaluator,
		executor:      executor,
		campaignLocks: make(map[string]*sync.Mutex),
	}
}

// RunAutomation executa todas as regras ativas dentro do escopo informado.
// As regras correm em um pool limitado de workers; regras da mesma campanha são
// serializadas por um mutex por campanha. Falha em uma regra nunca derruba a execução.
func (s *Service) RunAutomation(ctx context.Context, scope Scope) ([]*domain.RuleResult, error) {
	rules, err := s.ruleStore.ListActive(scope.UserID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar regras ativas: %w", err)
	}

	if len(rules) == 0 {
		logrus.Info("Nenhuma regra de automação ativa para executar")
		return []*domain.RuleResult{}, nil
	}

	runTimeout := time.Duration(s.cfg.AutomationRun.RunTimeoutSeconds) * time.Second
	if runTimeout <= 0 {
		runTimeout = 5 * time.Minute
	}

	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	maxConcurrent := s.cfg.AutomationRun.MaxConcurrentRules
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}

	logrus.WithFields(logrus.Fields{
		"rules":          len(rules),
		"user_id":        scope.UserID,
		"max_concurrent": maxConcurrent,
	}).Info("Iniciando execução das regras de automação")

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var resultsMutex sync.Mutex
	results := make([]*domain.RuleResult, 0, len(rules))

	for _, rule := range rules {
		// O timeout da execução interrompe o agendamento de novas regras,
		// mas deixa as que já começaram terminarem
		if runCtx.Err() != nil {
			logrus.WithField("rule_id", rule.ID).Warn("Timeout da execução atingido, ignorando regras restantes")
			break
		}

		wg.Add(1)
		go func(rule *domain.AutomationRule) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-runCtx.Done():
				logrus.WithField("rule_id", rule.ID).Warn("Timeout da execução atingido aguardando vaga no pool de workers")
				return
			}

			lock := s.campaignLock(rule.CampaignID)
			lock.Lock()
			defer lock.Unlock()

			result := s.RunRule(runCtx, rule)

			resultsMutex.Lock()
			results = append(results, result)
			resultsMutex.Unlock()
		}(rule)
	}

	wg.Wait()

	succeeded := 0
	for _, result := range results {
		if result.Success {
			succeeded++
		}
	}

	logrus.WithFields(logrus.Fields{
		"rules_run": len(results),
		"succeeded": succeeded,
		"failed":    len(results) - succeeded,
	}).Info("Execução das regras de automação concluída")

	return results, nil
}

// RunRule avalia e executa uma única regra. Qualquer erro ou pânico fica contido
// no RuleResult da própria regra.
func (s *Service) RunRule(ctx context.Context, rule *domain.AutomationRule) (result *domain.RuleResult) {
	result = &domain.RuleResult{
		RuleID:       rule.ID,
		RuleName:     rule.Name,
		CampaignID:   rule.CampaignID,
		ActionsTaken: []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"rule_id":     rule.ID,
				"campaign_id": rule.CampaignID,
				"panic":       r,
			}).Error("Pânico ao executar regra de automação")
			result.Success = false
			result.Error = fmt.Sprintf("pânico ao executar regra: %v", r)
		}
	}()

	campaign, err := s.campaignStore.GetByID(rule.CampaignID)
	if err != nil {
		result.Error = fmt.Sprintf("erro ao buscar campanha: %v", err)
		return result
	}

	if campaign == nil {
		result.Error = fmt.Sprintf("campanha não encontrada: %s", rule.CampaignID)
		return result
	}

	passed, err := s.evaluator.Evaluate(campaign.ID, rule.Conditions)
	if err != nil {
		result.Error = fmt.Sprintf("erro ao avaliar condições: %v", err)
		return result
	}

	result.Success = true

	if !passed {
		logrus.WithFields(logrus.Fields{
			"rule_id":     rule.ID,
			"campaign_id": campaign.ID,
		}).Debug("Condições da regra não atendidas")
		return result
	}

	logrus.WithFields(logrus.Fields{
		"rule_id":     rule.ID,
		"rule_name":   rule.Name,
		"campaign_id": campaign.ID,
	}).Info("Regra disparada, executando ações")

	// Falha em uma ação não invalida a regra: as ações seguintes ainda executam
	// e os erros ficam anotados no resultado
	var actionErrors []string
	for _, action := range rule.Actions {
		actionResult := s.executor.Execute(ctx, campaign, action)

		if actionResult.Success {
			if actionResult.Description != "" {
				result.ActionsTaken = append(result.ActionsTaken, actionResult.Description)
			}
			continue
		}

		actionErrors = append(actionErrors, actionResult.Error)
	}

	if len(actionErrors) > 0 {
		result.Error = strings.Join(actionErrors, "; ")
	}

	return result
}

func (s *Service) campaignLock(campaignID string) *sync.Mutex {
	s.locksMutex.Lock()
	defer s.locksMutex.Unlock()

	lock, ok := s.campaignLocks[campaignID]
	if !ok {
		lock = &sync.Mutex{}
		s.campaignLocks[campaignID] = lock
	}

	return lock
}
