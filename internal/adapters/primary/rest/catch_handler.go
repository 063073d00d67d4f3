package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// CatchHandler handles HTTP requests for catch operations. Every route is
// guarded the same way as the trip routes.
type CatchHandler struct {
	catches   ports.CatchService
	ownership ports.OwnershipService
	logger    *zap.Logger
}

// NewCatchHandler creates a new HTTP handler for catch operations.
func NewCatchHandler(catches ports.CatchService, ownership ports.OwnershipService, logger *zap.Logger) *CatchHandler {
	return &CatchHandler{
		catches:   catches,
		ownership: ownership,
		logger:    logger,
	}
}

// CatchRequest is the payload for creating or replacing a catch.
type CatchRequest struct {
	Time             domain.ClockTime `json:"time"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	Species          string           `json:"species"`
	LureOrBait       string           `json:"lureOrBait"`
	WeatherCondition string           `json:"weatherCondition"`
	AirTemperature   int              `json:"airTemperature"`
	WaterTemperature int              `json:"waterTemperature"`
	WindSpeed        int              `json:"windSpeed"`
	TripID           int64            `json:"tripId"`
}

// CatchPatchRequest is the payload for a partial catch update.
// Absent fields are left untouched; the trip reference cannot change.
type CatchPatchRequest struct {
	Time             *domain.ClockTime `json:"time"`
	Latitude         *float64          `json:"latitude"`
	Longitude        *float64          `json:"longitude"`
	Species          *string           `json:"species"`
	LureOrBait       *string           `json:"lureOrBait"`
	WeatherCondition *string           `json:"weatherCondition"`
	AirTemperature   *int              `json:"airTemperature"`
	WaterTemperature *int              `json:"waterTemperature"`
	WindSpeed        *int              `json:"windSpeed"`
}

func (h *CatchHandler) validate(w http.ResponseWriter, req CatchRequest) bool {
	fail := func(message string) bool {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, message)
		return false
	}

	switch {
	case req.Time.IsZero():
		return fail("Time is required in HH:MM:SS format")
	case !domain.AreCoordinatesValid(req.Latitude, req.Longitude):
		return fail("Latitude must be -90 to 90 and longitude -180 to 180")
	case !domain.IsSpeciesValid(req.Species):
		return fail("Species must be letters and spaces, at most 50 characters")
	case !domain.IsLureOrBaitValid(req.LureOrBait):
		return fail("Lure or bait must be letters and spaces, at most 50 characters")
	case !domain.IsWeatherConditionValid(req.WeatherCondition):
		return fail("Weather condition must be letters and spaces, at most 25 characters")
	case !domain.IsAirTemperatureValid(req.AirTemperature):
		return fail("Air temperature must be -50 to 150")
	case !domain.IsWaterTemperatureValid(req.WaterTemperature):
		return fail("Water temperature must be -50 to 150")
	case !domain.IsWindSpeedValid(req.WindSpeed):
		return fail("Wind speed must be 0 to 100")
	case req.TripID <= 0:
		return fail("A valid tripId is required")
	}

	return true
}

// Create handles POST requests recording a new catch within a trip.
//
// Response codes:
//   - 201: Success with CatchResponse JSON
//   - 400: Invalid payload
//   - 403: Token does not belong to the claimed user
func (h *CatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	var req CatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if !h.validate(w, req) {
		return
	}

	created, err := h.catches.Create(r.Context(), &domain.Catch{
		Time:             req.Time,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Species:          req.Species,
		LureOrBait:       req.LureOrBait,
		WeatherCondition: req.WeatherCondition,
		AirTemperature:   req.AirTemperature,
		WaterTemperature: req.WaterTemperature,
		WindSpeed:        req.WindSpeed,
		TripID:           req.TripID,
	})
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	h.respondWithCatch(w, r, created.ID, http.StatusCreated)
}

// Update handles PUT requests replacing a catch's mutable fields.
//
// Response codes:
//   - 200: Success with CatchResponse JSON
//   - 400: Invalid payload
//   - 403: Token does not belong to the claimed user
//   - 404: Catch does not exist
func (h *CatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	catchID, ok := pathID(h.logger, w, mux.Vars(r), "catchId")
	if !ok {
		return
	}

	var req CatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	existing, err := h.catches.FindOne(r.Context(), catchID)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	if existing == nil {
		handleServiceError(h.logger, w, r, domain.NewNotFound("catch", catchID))
		return
	}

	// The trip reference is immutable; the stored one stays authoritative.
	req.TripID = existing.TripID

	if !h.validate(w, req) {
		return
	}

	existing.Time = req.Time
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	existing.Species = req.Species
	existing.LureOrBait = req.LureOrBait
	existing.WeatherCondition = req.WeatherCondition
	existing.AirTemperature = req.AirTemperature
	existing.WaterTemperature = req.WaterTemperature
	existing.WindSpeed = req.WindSpeed

	if _, err := h.catches.Update(r.Context(), existing); err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	h.respondWithCatch(w, r, catchID, http.StatusOK)
}

// PartialUpdate handles PATCH requests updating only the supplied fields.
//
// Response codes:
//   - 200: Success with CatchResponse JSON
//   - 400: Invalid payload
//   - 403: Token does not belong to the claimed user
//   - 404: Catch does not exist
func (h *CatchHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	catchID, ok := pathID(h.logger, w, mux.Vars(r), "catchId")
	if !ok {
		return
	}

	var req CatchPatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "Invalid request body")
		return
	}

	if !h.validatePatch(w, req) {
		return
	}

	if _, err := h.catches.PartialUpdate(r.Context(), catchID, domain.CatchUpdate{
		Time:             req.Time,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Species:          req.Species,
		LureOrBait:       req.LureOrBait,
		WeatherCondition: req.WeatherCondition,
		AirTemperature:   req.AirTemperature,
		WaterTemperature: req.WaterTemperature,
		WindSpeed:        req.WindSpeed,
	}); err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	h.respondWithCatch(w, r, catchID, http.StatusOK)
}

func (h *CatchHandler) validatePatch(w http.ResponseWriter, req CatchPatchRequest) bool {
	fail := func(message string) bool {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, message)
		return false
	}

	switch {
	case req.Latitude != nil && !domain.IsLatitudeValid(*req.Latitude):
		return fail("Latitude must be -90 to 90")
	case req.Longitude != nil && !domain.IsLongitudeValid(*req.Longitude):
		return fail("Longitude must be -180 to 180")
	case req.Species != nil && !domain.IsSpeciesValid(*req.Species):
		return fail("Species must be letters and spaces, at most 50 characters")
	case req.LureOrBait != nil && !domain.IsLureOrBaitValid(*req.LureOrBait):
		return fail("Lure or bait must be letters and spaces, at most 50 characters")
	case req.WeatherCondition != nil && !domain.IsWeatherConditionValid(*req.WeatherCondition):
		return fail("Weather condition must be letters and spaces, at most 25 characters")
	case req.AirTemperature != nil && !domain.IsAirTemperatureValid(*req.AirTemperature):
		return fail("Air temperature must be -50 to 150")
	case req.WaterTemperature != nil && !domain.IsWaterTemperatureValid(*req.WaterTemperature):
		return fail("Water temperature must be -50 to 150")
	case req.WindSpeed != nil && !domain.IsWindSpeedValid(*req.WindSpeed):
		return fail("Wind speed must be 0 to 100")
	}

	return true
}

// List handles GET requests for the catches of a trip.
//
// Response codes:
//   - 200: Success with a CatchResponse array
//   - 400: Missing or invalid tripId
//   - 403: Token does not belong to the claimed user
func (h *CatchHandler) List(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	tripIDStr := r.URL.Query().Get("tripId")

	tripID, err := strconv.ParseInt(tripIDStr, 10, 64)
	if err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"The 'tripId' query parameter is required")

		return
	}

	catches, err := h.catches.FindByTripID(r.Context(), tripID)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, toCatchResponses(catches))
}

// Delete handles DELETE requests removing a catch.
// Deleting a missing catch still returns 204.
//
// Response codes:
//   - 204: Catch no longer exists
//   - 403: Token does not belong to the claimed user
func (h *CatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	catchID, ok := pathID(h.logger, w, mux.Vars(r), "catchId")
	if !ok {
		return
	}

	if err := h.catches.Delete(r.Context(), catchID); err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusNoContent, nil)
}

// respondWithCatch reloads the catch so the response carries the trip and
// owner summary joined by the repository.
func (h *CatchHandler) respondWithCatch(w http.ResponseWriter, r *http.Request, catchID int64, status int) {
	c, err := h.catches.FindOne(r.Context(), catchID)
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	if c == nil {
		handleServiceError(h.logger, w, r, domain.NewNotFound("catch", catchID))
		return
	}

	respondWithJSON(h.logger, w, status, toCatchResponse(c))
}
