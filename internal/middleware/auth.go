package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// AuthMiddleware rejects requests that do not carry a valid bearer token.
// It guards the user administration routes; the per-user routes rely on the
// ownership guard inside their handlers instead.
type AuthMiddleware struct {
	tokens ports.TokenService
	logger *zap.Logger
}

// NewAuthMiddleware creates bearer-token middleware around the token service.
func NewAuthMiddleware(tokens ports.TokenService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// Handler verifies the Authorization header before passing the request on.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		if !strings.HasPrefix(header, "Bearer ") {
			m.unauthorized(w, "A bearer token is required")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		if _, err := m.tokens.ExtractUsername(token); err != nil {
			m.logger.Debug("rejected bearer token", zap.Error(err))
			m.unauthorized(w, "The bearer token is invalid or expired")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}
