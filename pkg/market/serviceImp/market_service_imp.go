package serviceImp

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/market/service"
	"vyaas/pkg/metrics"
	"vyaas/pkg/random"
)

const (
	basePriceLo, basePriceHi = 120, 250
	varianceSpan             = 15
	yieldLo, yieldHi         = 500, 1000
	marginLo, marginHi       = 20, 50
	trendThreshold           = 2
	insightCrops             = 3
)

type savedPlanReader interface {
	SavedCropNames(ctx context.Context) ([]string, error)
}

type MarketSvc struct {
	rnd   random.Source
	plans savedPlanReader
	log   *zap.Logger
}

func NewMarketService(rnd random.Source, plans savedPlanReader, log *zap.Logger) *MarketSvc {
	return &MarketSvc{rnd: rnd, plans: plans, log: log}
}

var _ service.MarketService = (*MarketSvc)(nil)

func (s *MarketSvc) Snapshot(cropName string, view service.View) (entities.MarketSnapshot, error) {
	name := strings.TrimSpace(cropName)
	if name == "" {
		return entities.MarketSnapshot{}, service.ErrEmptyCropName
	}
	if view != service.ViewModal && view != service.ViewAggregate {
		return entities.MarketSnapshot{}, service.ErrUnknownView
	}

	regional := s.regionalPrices(view)
	sum := 0
	for _, r := range regional {
		sum += r.Price
	}
	avg := sum / len(regional)
	yield := random.Between(s.rnd, yieldLo, yieldHi)
	revenue := avg * yield
	margin := random.Below(s.rnd, marginLo, marginHi)

	snap := entities.MarketSnapshot{
		CropName:        name,
		CurrentPrice:    avg,
		ExpectedYield:   yield,
		ExpectedRevenue: revenue,
		ProfitMargin:    margin,
		Profit:          revenue * margin / 100,
		Trend:           coinTrend(s.rnd),
		RegionalPrices:  regional,
	}
	if view == service.ViewModal {
		snap.TrendPercentage = random.Below(s.rnd, 5, 25)
		snap.DemandLevel = pick(s.rnd, "High", "Medium")
		snap.SeasonalFactor = pick(s.rnd, "Peak Season", "Off Season")
	}
	metrics.MarketSnapshotsTotal.WithLabelValues(string(view)).Inc()
	return snap, nil
}

func (s *MarketSvc) Snapshots(cropNames []string, view service.View) ([]entities.MarketSnapshot, error) {
	out := make([]entities.MarketSnapshot, 0, len(cropNames))
	for _, n := range cropNames {
		snap, err := s.Snapshot(n, view)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

func (s *MarketSvc) Insights(ctx context.Context) ([]entities.MarketSnapshot, error) {
	names := service.DefaultCrops
	if s.plans != nil {
		saved, err := s.plans.SavedCropNames(ctx)
		if err != nil {
			s.log.Warn("saved plans unreadable, using default crops", zap.Error(err))
		}
		if clean := nonEmpty(saved); len(clean) > 0 {
			names = clean
		}
	}
	if len(names) > insightCrops {
		names = names[:insightCrops]
	}
	return s.Snapshots(names, service.ViewAggregate)
}

// regionalPrices draws one base price for the crop and an independent
// variance and percent change per market, sorted by price descending.
func (s *MarketSvc) regionalPrices(view service.View) []entities.RegionalPrice {
	pctHi := 15
	if view == service.ViewAggregate {
		pctHi = 20
	}
	base := random.Between(s.rnd, basePriceLo, basePriceHi)
	out := make([]entities.RegionalPrice, 0, len(marketSites))
	for _, m := range marketSites {
		pct := random.Below(s.rnd, -5, pctHi)
		out = append(out, entities.RegionalPrice{
			Location:      m.Location,
			State:         m.State,
			MarketName:    m.Market,
			Price:         base + random.Between(s.rnd, -varianceSpan, varianceSpan),
			Trend:         trendOf(pct),
			PercentChange: pct,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	out[0].Label = "Highest"
	out[len(out)-1].Label = "Lowest"
	return out
}

func trendOf(pct int) entities.Trend {
	switch {
	case pct > trendThreshold:
		return entities.TrendUp
	case pct < -trendThreshold:
		return entities.TrendDown
	}
	return entities.TrendStable
}

// coinTrend is independent of the regional prices.
func coinTrend(src random.Source) entities.Trend {
	if random.Coin(src) {
		return entities.TrendUp
	}
	return entities.TrendDown
}

func pick(src random.Source, a, b string) string {
	if random.Coin(src) {
		return a
	}
	return b
}

func nonEmpty(names []string) []string {
	var out []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
