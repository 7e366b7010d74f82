package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/repository/mocks"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"go.uber.org/mock/gomock"
)

// ingestRequest monta uma requisição de ingestão com o parâmetro de rota da campanha
func ingestRequest(campaignID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/"+campaignID+"/performance", strings.NewReader(body))
	params := httprouter.Params{{Key: "id", Value: campaignID}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestIngestPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)

	handler := IngestPerformance(mockPerformanceRepo)

	t.Run("Ingestão de dois dias - grava cada linha com a campanha da rota", func(t *testing.T) {
		// O corpo tenta apontar para outra campanha, mas a rota prevalece
		body := `[
			{"campaign_id": "CAMP999", "platform": "meta", "date": "2026-08-01T00:00:00Z", "impressions": 1000, "clicks": 50, "conversions": 5, "cost": 100.0, "revenue": 300.0},
			{"platform": "meta", "date": "2026-08-02T00:00:00Z", "impressions": 500, "clicks": 25, "conversions": 5, "cost": 50.0, "revenue": 150.0}
		]`

		saved := make([]*domain.PerformanceRecord, 0, 2)
		mockPerformanceRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(record *domain.PerformanceRecord) error {
				saved = append(saved, record)
				return nil
			}).
			Times(2)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, ingestRequest("CAMP001", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, saved, 2)
		assert.Equal(t, "CAMP001", saved[0].CampaignID)
		assert.Equal(t, "CAMP001", saved[1].CampaignID)
		assert.Contains(t, w.Body.String(), `"ingested":2`)
	})

	t.Run("Corpo sem registros - não grava nada", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, ingestRequest("CAMP001", `[]`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Registro sem data - rejeita o lote inteiro", func(t *testing.T) {
		body := `[{"platform": "meta", "impressions": 100}]`

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, ingestRequest("CAMP001", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Erro do repositório - responde erro de banco de dados", func(t *testing.T) {
		body := `[{"platform": "meta", "date": "2026-08-01T00:00:00Z", "impressions": 100}]`

		mockPerformanceRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(errors.New("conexão perdida"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, ingestRequest("CAMP001", body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
