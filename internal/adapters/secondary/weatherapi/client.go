// Package weatherapi implements a client for the WeatherAPI.com service.
// This package serves as a secondary adapter, translating coordinate
// lookups into API calls against the current and marine endpoints and
// converting responses into the shapes the core consumes.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
)

// Client implements the WeatherProvider interface against WeatherAPI.com.
// Both endpoints take the same q=lat,lon query; the marine endpoint
// additionally carries the number of forecast days.
type Client struct {
	// baseURL is the API base endpoint
	baseURL string

	// apiKey authenticates every request
	apiKey string

	// httpClient handles HTTP communication with timeout configuration
	httpClient *http.Client

	// logger records API interactions and errors
	logger *zap.Logger
}

// NewClient creates a new WeatherAPI.com client.
//
// Parameters:
//   - baseURL: API base URL (typically https://api.weatherapi.com/v1)
//   - apiKey: WeatherAPI.com API key
//   - httpClient: HTTP client with timeout configuration
//   - logger: Zap logger for API interaction logging
//
// Returns:
//   - *Client: Configured WeatherAPI.com client
func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// currentResponse represents the fields consumed from /current.json.
type currentResponse struct {
	Current struct {
		TempF     float64 `json:"temp_f"`
		WindMph   float64 `json:"wind_mph"`
		Condition struct {
			Code int `json:"code"`
		} `json:"condition"`
	} `json:"current"`
}

// marineResponse represents the fields consumed from /marine.json.
type marineResponse struct {
	Forecast struct {
		ForecastDay []struct {
			Hour []struct {
				WaterTempF float64 `json:"water_temp_f"`
			} `json:"hour"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// CurrentConditions retrieves the current weather at the given coordinates.
func (c *Client) CurrentConditions(ctx context.Context, coords domain.Coordinates) (*ports.CurrentConditions, error) {
	endpoint := c.buildURL("/current.json", coords, nil)

	var payload currentResponse

	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch current conditions: %w", err)
	}

	return &ports.CurrentConditions{
		AirTemperatureF: payload.Current.TempF,
		WindSpeedMph:    payload.Current.WindMph,
		ConditionCode:   payload.Current.Condition.Code,
	}, nil
}

// MarineForecast retrieves the one-day marine forecast at the given
// coordinates. Inland locations may return no forecast days.
func (c *Client) MarineForecast(ctx context.Context, coords domain.Coordinates) (*ports.MarineForecast, error) {
	endpoint := c.buildURL("/marine.json", coords, map[string]string{"days": "1"})

	var payload marineResponse

	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch marine forecast: %w", err)
	}

	forecast := &ports.MarineForecast{}

	for _, day := range payload.Forecast.ForecastDay {
		forecastDay := ports.MarineForecastDay{}

		for _, hour := range day.Hour {
			forecastDay.Hours = append(forecastDay.Hours, ports.MarineHour{
				WaterTempF: hour.WaterTempF,
			})
		}

		forecast.Days = append(forecast.Days, forecastDay)
	}

	return forecast, nil
}

func (c *Client) buildURL(path string, coords domain.Coordinates, extra map[string]string) string {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", fmt.Sprintf("%.4f,%.4f", coords.Latitude, coords.Longitude))

	for k, v := range extra {
		query.Set(k, v)
	}

	return c.baseURL + path + "?" + query.Encode()
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Error("failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}

	return nil
}
