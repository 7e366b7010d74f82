package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/repository"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/optimizing"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/apiErrors"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/middleware"
)

const defaultRecommendationsLimit = 50

// RunOptimization analisa as campanhas ativas do usuário autenticado e retorna
// as recomendações geradas. Administradores varrem todas as campanhas.
// O parâmetro opcional lookback_days define a janela retroativa da análise.
func RunOptimization(optimizer optimizing.Optimizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunOptimization")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		userID := userClaims.UserID
		if userClaims.UserRoleID == domain.RoleAdmin {
			userID = 0
		}

		lookbackDays := 0
		if lookbackStr := r.URL.Query().Get("lookback_days"); lookbackStr != "" {
			parsed, err := strconv.Atoi(lookbackStr)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro lookback_days inválido", nil)
				return
			}
			lookbackDays = parsed
		}

		recommendations, err := optimizer.RunOptimization(r.Context(), userID, lookbackDays)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar análise de otimização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"recommendations": recommendations,
			"total":           len(recommendations),
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListRecommendations retorna as recomendações persistidas de uma campanha
func ListRecommendations(recommendationRepo repository.RecommendationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		limit := uint64(defaultRecommendationsLimit)
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.ParseUint(limitStr, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		recommendations, err := recommendationRepo.ListByCampaignID(campaignID, limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar recomendações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(recommendations); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
