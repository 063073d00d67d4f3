// Package services contains the business logic of the fishing log service.
// Services sit between the REST handlers and the persistence/provider
// adapters, enforcing validation, ownership and cascade rules.
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// conditionLabels maps the provider's condition codes to the seven coarse
// labels the app exposes. The code membership is part of the provider
// contract and must not be edited without consulting its documentation.
var conditionLabels = map[int]string{
	1000: "clear",
	1003: "partly cloudy",
	1006: "cloudy",
}

var overcastCodes = []int{1009, 1030, 1063, 1066, 1069, 1072, 1087, 1135, 1147}

var lightPrecipitationCodes = []int{
	1150, 1153, 1168, 1180, 1183, 1198, 1204, 1210,
	1213, 1240, 1249, 1255, 1261, 1273, 1279,
}

var moderatePrecipitationCodes = []int{
	1186, 1189, 1201, 1207, 1216, 1219, 1243, 1252, 1258, 1264, 1276, 1282,
}

var heavyPrecipitationCodes = []int{1114, 1117, 1171, 1192, 1195, 1222, 1225, 1237, 1246}

func init() {
	for _, code := range overcastCodes {
		conditionLabels[code] = "overcast"
	}

	for _, code := range lightPrecipitationCodes {
		conditionLabels[code] = "light precipitation"
	}

	for _, code := range moderatePrecipitationCodes {
		conditionLabels[code] = "moderate precipitation"
	}

	for _, code := range heavyPrecipitationCodes {
		conditionLabels[code] = "heavy precipitation"
	}
}

// ClassifyCondition maps a provider condition code to its coarse label.
// Codes outside the table map to "unknown".
func ClassifyCondition(code int) string {
	if label, ok := conditionLabels[code]; ok {
		return label
	}

	return "unknown"
}

type weatherService struct {
	provider ports.WeatherProvider
	logger   *zap.Logger
}

// NewWeatherService creates the service that combines current conditions and
// the marine forecast into one snapshot. Responses are computed per request;
// there is no caching and no retry, so a provider failure fails the request.
func NewWeatherService(provider ports.WeatherProvider, logger *zap.Logger) ports.WeatherService {
	return &weatherService{
		provider: provider,
		logger:   logger,
	}
}

func (s *weatherService) GetCurrentWeather(ctx context.Context, coords domain.Coordinates) (*domain.WeatherSnapshot, error) {
	if err := coords.Validate(); err != nil {
		s.logger.Error("invalid coordinates", zap.Error(err))
		return nil, &domain.Error{
			Code:    domain.CodeValidationFailed,
			Message: "The provided coordinates are invalid",
			Cause:   err,
		}
	}

	current, err := s.provider.CurrentConditions(ctx, coords)
	if err != nil {
		s.logger.Error("failed to fetch current conditions",
			zap.Float64("latitude", coords.Latitude),
			zap.Float64("longitude", coords.Longitude),
			zap.Error(err))
		return nil, &domain.Error{
			Code:    domain.CodeWeatherRetrieval,
			Message: "Failed to retrieve current conditions",
			Cause:   err,
		}
	}

	marine, err := s.provider.MarineForecast(ctx, coords)
	if err != nil {
		s.logger.Error("failed to fetch marine forecast",
			zap.Float64("latitude", coords.Latitude),
			zap.Float64("longitude", coords.Longitude),
			zap.Error(err))
		return nil, &domain.Error{
			Code:    domain.CodeWeatherRetrieval,
			Message: "Failed to retrieve marine forecast",
			Cause:   err,
		}
	}

	snapshot := &domain.WeatherSnapshot{
		WeatherCondition: ClassifyCondition(current.ConditionCode),
		AirTemperature:   current.AirTemperatureF,
		WaterTemperature: firstHourWaterTemp(marine),
		WindSpeed:        current.WindSpeedMph,
	}

	s.logger.Info("weather snapshot built",
		zap.Float64("latitude", coords.Latitude),
		zap.Float64("longitude", coords.Longitude),
		zap.String("condition", snapshot.WeatherCondition))

	return snapshot, nil
}

// firstHourWaterTemp extracts the water temperature of the first hour of the
// first forecast day, or the unavailable sentinel when either list is empty.
func firstHourWaterTemp(marine *ports.MarineForecast) float64 {
	if len(marine.Days) == 0 {
		return domain.WaterTempUnavailable
	}

	hours := marine.Days[0].Hours
	if len(hours) == 0 {
		return domain.WaterTempUnavailable
	}

	return hours[0].WaterTempF
}
