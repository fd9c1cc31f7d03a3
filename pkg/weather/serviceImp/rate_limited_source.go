package serviceImp

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"vyaas/entities"
	"vyaas/pkg/weather/service"
)

type RateLimitedSource struct {
	source  service.ForecastSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedSource allows rps fetches per second with the given burst.
func NewRateLimitedSource(source service.ForecastSource, rps float64, burst int) *RateLimitedSource {
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

func (r *RateLimitedSource) Name() string { return r.name }

func (r *RateLimitedSource) FetchForecast(ctx context.Context, location string) (entities.Forecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return entities.Forecast{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchForecast(ctx, location)
}

var _ service.ForecastSource = (*RateLimitedSource)(nil)
