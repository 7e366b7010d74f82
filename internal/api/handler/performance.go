package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/repository"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/apiErrors"
)

// IngestPerformance recebe as linhas diárias de performance de uma campanha e as
// grava de forma idempotente: reenviar o mesmo dia sobrescreve os contadores.
func IngestPerformance(performanceRepo repository.PerformanceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - IngestPerformance")

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		var records []*domain.PerformanceRecord
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if len(records) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum registro de performance informado", nil)
			return
		}

		for i, record := range records {
			if record.Date.IsZero() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Registro de performance sem data", map[string]any{
					"index": i,
				})
				return
			}

			// A campanha vem sempre da rota, nunca do corpo
			record.CampaignID = campaignID
		}

		for _, record := range records {
			if err := performanceRepo.SaveOrUpdate(record); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaignID,
					"date":        record.Date,
					"error":       err.Error(),
				}).Error("Erro ao gravar registro de performance")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar registros de performance", nil)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"campaign_id": campaignID,
			"ingested":    len(records),
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
