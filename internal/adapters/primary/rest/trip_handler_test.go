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

func TestTripHandler_Create(t *testing.T) {
	date := domain.NewDate(2025, 6, 15)
	stored := &domain.Trip{
		ID:          3,
		Date:        date,
		BodyOfWater: "Lake Erie",
		UserID:      7,
		Owner:       &domain.User{ID: 7, Username: "angler"},
	}

	t.Run("creates the trip and returns it with the owner summary", func(t *testing.T) {
		trips := new(MockTripService)
		trips.On("Create", mock.Anything, mock.MatchedBy(func(trip *domain.Trip) bool {
			return trip.UserID == 7 && trip.BodyOfWater == "Lake Erie" && trip.Date == date
		})).Return(stored, nil)
		trips.On("FindOne", mock.Anything, int64(3)).Return(stored, nil)

		handler := NewTripHandler(trips, allowOwner(), zap.NewNop())

		body, _ := json.Marshal(TripRequest{Date: date, BodyOfWater: "Lake Erie"})
		req := httptest.NewRequest(http.MethodPost, "/trips?userId=7", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response TripResponse

		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(3), response.ID)
		assert.Equal(t, "Lake Erie", response.BodyOfWater)
		assert.NotNil(t, response.User)
		assert.Equal(t, "angler", response.User.Username)
		trips.AssertExpectations(t)
	})

	t.Run("rejects an invalid body of water", func(t *testing.T) {
		trips := new(MockTripService)
		handler := NewTripHandler(trips, allowOwner(), zap.NewNop())

		body, _ := json.Marshal(TripRequest{Date: date, BodyOfWater: "Lake-Erie!"})
		req := httptest.NewRequest(http.MethodPost, "/trips?userId=7", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		trips.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("foreign user with a malformed payload gets 403 not 400", func(t *testing.T) {
		trips := new(MockTripService)
		handler := NewTripHandler(trips, denyOwner(), zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/trips?userId=7", bytes.NewReader([]byte("not json")))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var response ErrorResponse

		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, domain.CodeOwnershipDenied, response.Error)
	})

	t.Run("missing userId parameter gets 400", func(t *testing.T) {
		handler := NewTripHandler(new(MockTripService), new(MockOwnershipService), zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/trips", nil)
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTripHandler_Update(t *testing.T) {
	date := domain.NewDate(2025, 6, 15)

	t.Run("missing trip yields 404", func(t *testing.T) {
		trips := new(MockTripService)
		trips.On("FindOne", mock.Anything, int64(99)).Return(nil, nil)

		handler := NewTripHandler(trips, allowOwner(), zap.NewNop())

		body, _ := json.Marshal(TripRequest{Date: date, BodyOfWater: "Lake Erie"})
		req := httptest.NewRequest(http.MethodPut, "/trips/99?userId=7", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"tripId": "99"})
		w := httptest.NewRecorder()

		handler.Update(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		trips.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestTripHandler_List(t *testing.T) {
	t.Run("rejects a malformed date filter", func(t *testing.T) {
		trips := new(MockTripService)
		handler := NewTripHandler(trips, allowOwner(), zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/trips?userId=7&date=15-06-2025", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns an empty array rather than null", func(t *testing.T) {
		trips := new(MockTripService)
		trips.On("FindByUserID", mock.Anything, int64(7)).Return([]domain.Trip{}, nil)

		handler := NewTripHandler(trips, allowOwner(), zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/trips?userId=7", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestTripHandler_Delete(t *testing.T) {
	t.Run("deleting a trip returns 204 with no body", func(t *testing.T) {
		trips := new(MockTripService)
		trips.On("Delete", mock.Anything, int64(3)).Return(nil)

		handler := NewTripHandler(trips, allowOwner(), zap.NewNop())

		req := httptest.NewRequest(http.MethodDelete, "/trips/3?userId=7", nil)
		req = mux.SetURLVars(req, map[string]string{"tripId": "3"})
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		trips.AssertExpectations(t)
	})

	t.Run("foreign user cannot delete", func(t *testing.T) {
		trips := new(MockTripService)
		handler := NewTripHandler(trips, denyOwner(), zap.NewNop())

		req := httptest.NewRequest(http.MethodDelete, "/trips/3?userId=7", nil)
		req = mux.SetURLVars(req, map[string]string{"tripId": "3"})
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		trips.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
