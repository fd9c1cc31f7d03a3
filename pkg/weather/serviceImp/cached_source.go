package serviceImp

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/weather/service"
)

// CachedSource wraps a ForecastSource and keeps each location's forecast
// for ttl.
type CachedSource struct {
	source service.ForecastSource
	ttl    time.Duration
	log    *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	cache  map[string]cacheEntry
	hits   int
	misses int
}

type cacheEntry struct {
	data entities.Forecast
	at   time.Time
}

func NewCachedSource(source service.ForecastSource, ttl time.Duration, log *zap.Logger) *CachedSource {
	return &CachedSource{source: source, ttl: ttl, log: log, now: time.Now, cache: map[string]cacheEntry{}}
}

func (c *CachedSource) Name() string { return c.source.Name() + " [Cached]" }

func (c *CachedSource) FetchForecast(ctx context.Context, location string) (entities.Forecast, error) {
	c.mu.RLock()
	e, found := c.cache[location]
	c.mu.RUnlock()

	if found && c.now().Sub(e.at) < c.ttl {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		c.log.Debug("forecast cache hit", zap.String("location", location))
		return e.data, nil
	}

	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
	c.log.Debug("forecast cache miss", zap.String("location", location), zap.String("source", c.source.Name()))

	f, err := c.source.FetchForecast(ctx, location)
	if err != nil {
		return entities.Forecast{}, err
	}
	c.mu.Lock()
	c.cache[location] = cacheEntry{data: f, at: c.now()}
	c.mu.Unlock()
	return f, nil
}

func (c *CachedSource) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

var _ service.ForecastSource = (*CachedSource)(nil)
