package rest

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// WeatherHandler handles HTTP requests for the simplified weather snapshot.
type WeatherHandler struct {
	weather   ports.WeatherService
	ownership ports.OwnershipService
	logger    *zap.Logger
}

// NewWeatherHandler creates a new HTTP handler for weather lookups.
func NewWeatherHandler(weather ports.WeatherService, ownership ports.OwnershipService, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		weather:   weather,
		ownership: ownership,
		logger:    logger,
	}
}

// Get handles GET requests for current conditions at a location.
//
// Response codes:
//   - 200: Success with WeatherResponse JSON
//   - 400: Missing or invalid latitude/longitude
//   - 403: Token does not belong to the claimed user
//   - 503: Weather provider unavailable
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, ok := requireOwner(h.logger, h.ownership, w, r)
	if !ok {
		return
	}

	latStr := r.URL.Query().Get("latitude")
	lonStr := r.URL.Query().Get("longitude")

	if latStr == "" || lonStr == "" {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Both 'latitude' and 'longitude' query parameters are required")

		return
	}

	latitude, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Invalid latitude format")

		return
	}

	longitude, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed,
			"Invalid longitude format")

		return
	}

	snapshot, err := h.weather.GetCurrentWeather(r.Context(), domain.Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		handleServiceError(h.logger, w, r, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, WeatherResponse{
		WeatherCondition: snapshot.WeatherCondition,
		AirTemperature:   snapshot.AirTemperature,
		WaterTemperature: snapshot.WaterTemperature,
		WindSpeed:        snapshot.WindSpeed,
	})
}
