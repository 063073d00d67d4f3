package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

func TestUserHandler_Get(t *testing.T) {
	t.Run("returns the user without the password hash", func(t *testing.T) {
		users := new(MockUserService)
		users.On("FindOne", mock.Anything, int64(7)).Return(&domain.User{
			ID:           7,
			Username:     "angler",
			PasswordHash: "never-shown",
			Email:        "angler@example.com",
			Role:         domain.RoleUser,
		}, nil)

		handler := NewUserHandler(users, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "never-shown")

		var response UserResponse

		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "angler", response.Username)
		assert.Equal(t, "USER", response.Role)
	})

	t.Run("missing user yields 404", func(t *testing.T) {
		users := new(MockUserService)
		users.On("FindOne", mock.Anything, int64(99)).Return(nil, nil)

		handler := NewUserHandler(users, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/users/99", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "99"})
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_PartialUpdate(t *testing.T) {
	t.Run("passes only the supplied fields to the service", func(t *testing.T) {
		users := new(MockUserService)
		users.On("PartialUpdate", mock.Anything, int64(7), mock.MatchedBy(func(update domain.UserUpdate) bool {
			return update.Username == nil && update.Password == nil &&
				update.Email != nil && *update.Email == "new@example.com"
		})).Return(&domain.User{ID: 7, Username: "angler", Email: "new@example.com", Role: domain.RoleUser}, nil)

		handler := NewUserHandler(users, zap.NewNop())

		body, _ := json.Marshal(map[string]string{"email": "new@example.com"})
		req := httptest.NewRequest(http.MethodPatch, "/users/7", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		w := httptest.NewRecorder()

		handler.PartialUpdate(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		users.AssertExpectations(t)
	})

	t.Run("rejects a weak replacement password", func(t *testing.T) {
		users := new(MockUserService)
		handler := NewUserHandler(users, zap.NewNop())

		body, _ := json.Marshal(map[string]string{"password": "short"})
		req := httptest.NewRequest(http.MethodPatch, "/users/7", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		w := httptest.NewRecorder()

		handler.PartialUpdate(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		users.AssertNotCalled(t, "PartialUpdate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	users := new(MockUserService)
	users.On("Delete", mock.Anything, int64(7)).Return(nil)

	handler := NewUserHandler(users, zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/users/7", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "7"})
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	users.AssertExpectations(t)
}
