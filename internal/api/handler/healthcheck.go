package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HealthcheckHandler responde o horário atual do servidor, útil para
// verificar relógio e disponibilidade
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		payload := map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logrus.WithError(err).Warn("erro ao responder o healthcheck")
		}
	})
}
