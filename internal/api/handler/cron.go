package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/scheduler"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/apiErrors"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAutomation   = "automation"
	CronJobTypeOptimization = "optimization"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AutomationRunService   *scheduler.AutomationRunService
	OptimizationRunService *scheduler.OptimizationRunService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// A execução acontece em segundo plano e sobrevive à requisição
		runCtx := context.Background()

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeAutomation:
			// Executar as regras de automação
			if services.AutomationRunService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de execução de automação não disponível", nil)
				return
			}
			services.AutomationRunService.TriggerManualRun(runCtx)

		case CronJobTypeOptimization:
			// Executar a varredura de otimização
			if services.OptimizationRunService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de otimização não disponível", nil)
				return
			}
			services.OptimizationRunService.TriggerManualScan(runCtx)

		case CronJobTypeAll:
			// Executar ambas as rotinas
			if services.AutomationRunService != nil {
				services.AutomationRunService.TriggerManualRun(runCtx)
			}
			if services.OptimizationRunService != nil {
				services.OptimizationRunService.TriggerManualScan(runCtx)
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: automation, optimization, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"automation":   services.AutomationRunService.GetStatus(),
			"optimization": services.OptimizationRunService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
