package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/copywriting"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/apiErrors"
)

// GenerateAdCopy gera variações de texto de anúncio para uma campanha
func GenerateAdCopy(service copywriting.Copywriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateAdCopy")

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		var req domain.GenerateAdCopyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		response, err := service.GenerateForCampaign(r.Context(), campaignID, &req)
		if err != nil {
			logrus.Error(err)

			if strings.Contains(err.Error(), "campanha não encontrada") {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar textos de anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
