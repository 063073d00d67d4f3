package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// TripHandler handles HTTP requests for trip operations. Every route is
// guarded: the bearer token must belong to the user named by the userId
// query parameter.
type TripHandler struct {
	trips     ports.TripService
	ownership ports.OwnershipService
	logger    *zap.Logger
}

// NewTripHandler creates a new HTTP handler for trip operations.
func NewTripHandler(trips ports.TripService, ownership ports.OwnershipService, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		trips:     trips,
		ownership: ownership,
		logger:    logger,
	}
}

// TripRequest is the payload for creating or replacing a trip.
type TripRequest struct {
	Date        domain.Date `json:"date"`
	BodyOfWater string      `json:"bodyOfWater"`
}

// TripPatchRequest is the payload for a partial trip update.
// Absent fields are left untouched.
type TripPatchRequest struct {
	Date        *domain.Date `json:"date"`
	BodyOfWater *string      `json:"bodyOfWater"`
}

func (h *TripHandler) validate(w http.ResponseWriter, req TripRequest) bool {
	if req.Date.IsZero() {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Date is required in yyyy-mm-dd format")

		return false
	}

	if !domain.IsBodyOfWaterValid(req.BodyOfWater) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Body of water must be alphanumeric and at most 100 characters")

		return false
	}

	return true
}

// Create handles POST requests recording a new trip.
//
// Response codes:
//   - 201: Success with TripResponse JSON
//   - 400: Invalid payload
//   - 403: Token does not belong to the claimed user
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	var req TripRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if !h.validate(w, req) {
		return
	}

	created, err := h.trips.Create(r.Context(), &domain.Trip{
		Date:        req.Date,
		BodyOfWater: req.BodyOfWater,
		UserID:      userID,
	})
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	h.respondWithTrip(w, r, created.ID, http.StatusCreated)
}

// Update handles PUT requests replacing a trip's mutable fields.
//
// Response codes:
//   - 200: Success with TripResponse JSON
//   - 400: Invalid payload
//   - 403: Token does not belong to the claimed user
//   - 404: Trip does not exist
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	tripID, ok := pathID(h.logger, w, mux.Vars(r), "tripId")
	if !ok {
		return
	}

	var req TripRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if !h.validate(w, req) {
		return
	}

	existing, err := h.trips.FindOne(r.Context(), tripID)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	if existing == nil {
		handleServiceError(h.logger, w, r, domain.NewNotFound("trip", tripID))
		return
	}

	existing.Date = req.Date
	existing.BodyOfWater = req.BodyOfWater

	if _, err := h.trips.Update(r.Context(), existing); err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	h.respondWithTrip(w, r, tripID, http.StatusOK)
}

// PartialUpdate handles PATCH requests updating only the supplied fields.
//
// Response codes:
//   - 200: Success with TripResponse JSON
//   - 400: Invalid payload
//   - 403: Token does not belong to the claimed user
//   - 404: Trip does not exist
func (h *TripHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	tripID, ok := pathID(h.logger, w, mux.Vars(r), "tripId")
	if !ok {
		return
	}

	var req TripPatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if req.BodyOfWater != nil && !domain.IsBodyOfWaterValid(*req.BodyOfWater) {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Body of water must be alphanumeric and at most 100 characters")

		return
	}

	if _, err := h.trips.PartialUpdate(r.Context(), tripID, domain.TripUpdate{
		Date:        req.Date,
		BodyOfWater: req.BodyOfWater,
	}); err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	h.respondWithTrip(w, r, tripID, http.StatusOK)
}

// List handles GET requests for a user's trips, optionally filtered to a
// single day with the date query parameter.
//
// Response codes:
//   - 200: Success with a TripResponse array
//   - 400: Invalid date format
//   - 403: Token does not belong to the claimed user
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	var (
		trips []domain.Trip
		err   error
	)

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, parseErr := domain.ParseDate(dateStr)
		if parseErr != nil {
			respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
				"Date must use yyyy-mm-dd format")

			return
		}

		trips, err = h.trips.FindByUserIDAndDate(r.Context(), userID, date)
	} else {
		trips, err = h.trips.FindByUserID(r.Context(), userID)
	}

	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, toTripResponses(trips))
}

// ListLastSixMonths handles GET requests for the user's trips over the
// trailing six-month window ending today.
//
// Response codes:
//   - 200: Success with a TripResponse array
//   - 403: Token does not belong to the claimed user
func (h *TripHandler) ListLastSixMonths(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	trips, err := h.trips.FindLastSixMonths(r.Context(), userID)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, toTripResponses(trips))
}

// Delete handles DELETE requests removing a trip and its catches.
// Deleting a missing trip still returns 204.
//
// Response codes:
//   - 204: Trip no longer exists
//   - 403: Token does not belong to the claimed user
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	tripID, ok := pathID(h.logger, w, mux.Vars(r), "tripId")
	if !ok {
		return
	}

	if err := h.trips.Delete(r.Context(), tripID); err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusNoContent, nil)
}

// respondWithTrip reloads the trip so the response carries the owner
// summary joined by the repository.
func (h *TripHandler) respondWithTrip(w http.ResponseWriter, r *http.Request, tripID int64, status int) {
	trip, err := h.trips.FindOne(r.Context(), tripID)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	if trip == nil {
		handleServiceError(h.logger, w, r, domain.NewNotFound("trip", tripID))
		return
	}

	respondWithJSON(h.logger, w, status, toTripResponse(trip))
}
