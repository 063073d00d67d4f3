package domain

import "fmt"

// WaterTempUnavailable is the sentinel returned when the marine forecast has
// no hourly data for the requested location. It is not a real temperature.
const WaterTempUnavailable = -900

// Coordinates represent a geographic location using latitude and longitude.
type Coordinates struct {
	// Latitude specifies the north-south position (-90 to 90 degrees)
	Latitude float64

	// Longitude specifies the east-west position (-180 to 180 degrees)
	Longitude float64
}

// Validate checks if the coordinates are within valid geographic bounds.
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %f", c.Latitude)
	}

	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %f", c.Longitude)
	}

	return nil
}

// WeatherSnapshot is the simplified, transient view of current conditions
// combined from the provider's current-weather and marine-forecast endpoints.
// It is computed per request and never persisted.
type WeatherSnapshot struct {
	// WeatherCondition is the coarse condition label derived from the
	// provider's condition code
	WeatherCondition string

	// AirTemperature in degrees Fahrenheit
	AirTemperature float64

	// WaterTemperature in degrees Fahrenheit, or WaterTempUnavailable when
	// the marine forecast carries no hourly data
	WaterTemperature float64

	// WindSpeed in miles per hour
	WindSpeed float64
}
