package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/core/domain"
)

const currentFixture = `{
	"current": {
		"temp_f": 72.5,
		"wind_mph": 8.1,
		"condition": {"text": "Partly cloudy", "code": 1003}
	}
}`

const marineFixture = `{
	"forecast": {
		"forecastday": [
			{
				"hour": [
					{"water_temp_f": 58.3},
					{"water_temp_f": 59.1}
				]
			}
		]
	}
}`

func TestClient_CurrentConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "41.5000,-81.7000", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currentFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", server.Client(), zap.NewNop())

	conditions, err := client.CurrentConditions(context.Background(), domain.Coordinates{Latitude: 41.5, Longitude: -81.7})

	assert.NoError(t, err)
	assert.Equal(t, 72.5, conditions.AirTemperatureF)
	assert.Equal(t, 8.1, conditions.WindSpeedMph)
	assert.Equal(t, 1003, conditions.ConditionCode)
}

func TestClient_MarineForecast(t *testing.T) {
	t.Run("decodes hourly water temperatures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/marine.json", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("days"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(marineFixture))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", server.Client(), zap.NewNop())

		forecast, err := client.MarineForecast(context.Background(), domain.Coordinates{Latitude: 41.5, Longitude: -81.7})

		assert.NoError(t, err)
		assert.Len(t, forecast.Days, 1)
		assert.Len(t, forecast.Days[0].Hours, 2)
		assert.Equal(t, 58.3, forecast.Days[0].Hours[0].WaterTempF)
	})

	t.Run("inland locations come back with no days", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"forecast": {"forecastday": []}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", server.Client(), zap.NewNop())

		forecast, err := client.MarineForecast(context.Background(), domain.Coordinates{Latitude: 41.5, Longitude: -81.7})

		assert.NoError(t, err)
		assert.Empty(t, forecast.Days)
	})
}

func TestClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", server.Client(), zap.NewNop())

	_, err := client.CurrentConditions(context.Background(), domain.Coordinates{Latitude: 41.5, Longitude: -81.7})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
