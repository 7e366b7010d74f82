package middleware

import (
	"net/http"
)

// Origens autorizadas a consumir a API via navegador
var allowedOrigins = map[string]struct{}{
	"http://localhost:3000":                 {},
	"http://localhost:4001":                 {},
	"https://ads-automation-web.vercel.app": {},
}

func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowedOrigins[origin]; ok {
				headers := w.Header()
				headers.Set("Access-Control-Allow-Origin", origin)
				headers.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
				headers.Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				headers.Set("Access-Control-Allow-Credentials", "true")
				headers.Set("Content-Type", "application/json")
				// Cache do preflight por 24 horas
				headers.Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
