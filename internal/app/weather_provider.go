package app

import (
	"context"

	"github.com/fishinglog/fishing-log-service/internal/adapters/secondary/weatherapi"
	"github.com/fishinglog/fishing-log-service/internal/core/domain"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
	"github.com/fishinglog/fishing-log-service/internal/infrastructure/circuitbreaker"
)

// breakerWeatherProvider wraps the weatherapi client with circuit breaker
// protection so a failing provider trips fast instead of timing out every
// request.
type breakerWeatherProvider struct {
	client *weatherapi.Client
	cb     *circuitbreaker.Breaker
}

func (p *breakerWeatherProvider) CurrentConditions(ctx context.Context, coords domain.Coordinates) (*ports.CurrentConditions, error) {
	var result *ports.CurrentConditions

	err := p.cb.Execute(ctx, "current-conditions", func() error {
		var err error
		result, err = p.client.CurrentConditions(ctx, coords)

		return err
	})

	return result, err
}

func (p *breakerWeatherProvider) MarineForecast(ctx context.Context, coords domain.Coordinates) (*ports.MarineForecast, error) {
	var result *ports.MarineForecast

	err := p.cb.Execute(ctx, "marine-forecast", func() error {
		var err error
		result, err = p.client.MarineForecast(ctx, coords)

		return err
	})

	return result, err
}
