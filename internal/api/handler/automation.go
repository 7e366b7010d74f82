package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/apiErrors"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/middleware"
)

// RunAutomation executa as regras de automação ativas do usuário autenticado e
// retorna o resultado por regra. Administradores executam sobre todos os usuários.
func RunAutomation(engine automating.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunAutomation")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		scope := automating.Scope{UserID: userClaims.UserID}
		if userClaims.UserRoleID == domain.RoleAdmin {
			scope.UserID = 0
		}

		results, err := engine.RunAutomation(r.Context(), scope)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar regras de automação", nil)
			return
		}

		failures := 0
		for _, result := range results {
			if !result.Success {
				failures++
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"rules":    len(results),
			"failures": failures,
			"results":  results,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
