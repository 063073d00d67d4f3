package ports

import (
	"context"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

// WeatherProvider is the outbound interface to the external weather API.
// Both endpoints are addressed by latitude and longitude.
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, coords domain.Coordinates) (*CurrentConditions, error)
	MarineForecast(ctx context.Context, coords domain.Coordinates) (*MarineForecast, error)
}

// CurrentConditions is the subset of the provider's current-weather response
// the service consumes.
type CurrentConditions struct {
	// AirTemperatureF is the air temperature in degrees Fahrenheit
	AirTemperatureF float64

	// WindSpeedMph is the wind speed in miles per hour
	WindSpeedMph float64

	// ConditionCode is the provider-specific integer condition code
	ConditionCode int
}

// MarineForecast is the subset of the provider's marine-forecast response
// the service consumes.
type MarineForecast struct {
	Days []MarineForecastDay
}

// MarineForecastDay is one forecast day with its hourly entries.
type MarineForecastDay struct {
	Hours []MarineHour
}

// MarineHour is a single hourly marine forecast entry.
type MarineHour struct {
	// WaterTempF is the water temperature in degrees Fahrenheit
	WaterTempF float64
}
