package service

import (
	"context"

	"vyaas/entities"
)

// DefaultLocation is used when no address is known.
const DefaultLocation = "Bhubaneswar, Khordha, Odisha"

// ForecastSource is anything that can produce a 7-day forecast.
type ForecastSource interface {
	Name() string
	FetchForecast(ctx context.Context, location string) (entities.Forecast, error)
}
