package middleware

import (
	"net/http"
)

// CORSMiddleware allows browser clients from the configured origin to call
// the API. Preflight requests are answered directly.
type CORSMiddleware struct {
	allowedOrigin string
}

// NewCORSMiddleware creates CORS middleware for a single allowed origin.
func NewCORSMiddleware(allowedOrigin string) *CORSMiddleware {
	return &CORSMiddleware{
		allowedOrigin: allowedOrigin,
	}
}

// Handler applies the CORS headers and short-circuits OPTIONS preflights.
func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Correlation-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
