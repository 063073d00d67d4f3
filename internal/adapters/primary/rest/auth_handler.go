package rest

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	auth   ports.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new HTTP handler for authentication operations.
func NewAuthHandler(auth ports.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// AuthenticateRequest is the payload for POST /auth/authenticate.
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the signed token issued on registration.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthenticateResponse carries the token and the account identity.
type AuthenticateResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// Register handles POST requests creating a new account.
//
// Response codes:
//   - 200: Success with TokenResponse JSON
//   - 400: Invalid username, password or email, or username already taken
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if !domain.IsUsernameValid(req.Username) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Username must be alphanumeric and at most 50 characters")
		return
	}

	if !domain.IsPasswordValid(req.Password) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Password must be 6 to 64 characters with at least one letter, one digit and one special character")
		return
	}

	if !domain.IsEmailValid(req.Email) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Email must be a valid address of at most 100 characters")
		return
	}

	result, err := h.auth.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, TokenResponse{Token: result.Token})
}

// Authenticate handles POST requests exchanging credentials for a token.
//
// Response codes:
//   - 200: Success with AuthenticateResponse JSON
//   - 401: Unknown username or wrong password
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req AuthenticateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	result, err := h.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, AuthenticateResponse{
		Token:    result.Token,
		Username: result.Username,
		ID:       result.UserID,
	})
}
