package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// UserHandler handles HTTP requests for user administration. These routes
// sit behind the bearer-token middleware rather than the per-user ownership
// guard.
type UserHandler struct {
	users  ports.UserService
	logger *zap.Logger
}

// NewUserHandler creates a new HTTP handler for user operations.
func NewUserHandler(users ports.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// UserUpdateRequest is the payload for replacing a user's mutable fields.
// Password is optional; when absent the stored hash is kept.
type UserUpdateRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password *string `json:"password"`
}

// UserPatchRequest is the payload for a partial user update.
type UserPatchRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// List handles GET requests returning every user.
//
// Response codes:
//   - 200: Success with a UserResponse array
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))

	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}

	respondWithJSON(h.logger, w, http.StatusOK, responses)
}

// Get handles GET requests for a single user.
//
// Response codes:
//   - 200: Success with UserResponse JSON
//   - 404: User does not exist
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.logger, w, mux.Vars(r), "id")
	if !ok {
		return
	}

	user, err := h.users.FindOne(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	if user == nil {
		handleServiceError(h.logger, w, r, domain.NewNotFound("user", id))
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, toUserResponse(user))
}

// Update handles PUT requests replacing a user's mutable fields.
//
// Response codes:
//   - 200: Success with UserResponse JSON
//   - 400: Invalid payload
//   - 404: User does not exist
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.logger, w, mux.Vars(r), "id")
	if !ok {
		return
	}

	var req UserUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if !domain.IsUsernameValid(req.Username) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Username must be alphanumeric and at most 50 characters")

		return
	}

	if !domain.IsEmailValid(req.Email) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Email must be a valid address of at most 100 characters")

		return
	}

	if req.Password != nil && !domain.IsPasswordValid(*req.Password) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Password must be 6 to 64 characters with at least one letter, one digit and one special character")

		return
	}

	updated, err := h.users.PartialUpdate(r.Context(), id, domain.UserUpdate{
		Username: &req.Username,
		Email:    &req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, toUserResponse(updated))
}

// PartialUpdate handles PATCH requests updating only the supplied fields.
//
// Response codes:
//   - 200: Success with UserResponse JSON
//   - 400: Invalid payload
//   - 404: User does not exist
func (h *UserHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.logger, w, mux.Vars(r), "id")
	if !ok {
		return
	}

	var req UserPatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if req.Username != nil && !domain.IsUsernameValid(*req.Username) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Username must be alphanumeric and at most 50 characters")

		return
	}

	if req.Email != nil && !domain.IsEmailValid(*req.Email) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Email must be a valid address of at most 100 characters")

		return
	}

	if req.Password != nil && !domain.IsPasswordValid(*req.Password) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Password must be 6 to 64 characters with at least one letter, one digit and one special character")

		return
	}

	updated, err := h.users.PartialUpdate(r.Context(), id, domain.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, toUserResponse(updated))
}

// Delete handles DELETE requests removing a user together with all owned
// trips and their catches. Deleting a missing user still returns 204.
//
// Response codes:
//   - 204: User no longer exists
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.logger, w, mux.Vars(r), "id")
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusNoContent, nil)
}
