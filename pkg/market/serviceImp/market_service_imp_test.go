package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/market/service"
	"vyaas/pkg/random"
)

type stubPlans struct {
	names []string
	err   error
}

func (s stubPlans) SavedCropNames(context.Context) ([]string, error) { return s.names, s.err }

func newSvc(seed uint64, plans savedPlanReader) *MarketSvc {
	return NewMarketService(random.New(seed), plans, zap.NewNop())
}

func assertConsistent(t *testing.T, snap entities.MarketSnapshot, view service.View) {
	t.Helper()
	require.Len(t, snap.RegionalPrices, 6)

	sum := 0
	for i, r := range snap.RegionalPrices {
		sum += r.Price
		assert.GreaterOrEqual(t, r.Price, 120-15)
		assert.LessOrEqual(t, r.Price, 250+15)
		if i > 0 {
			assert.GreaterOrEqual(t, snap.RegionalPrices[i-1].Price, r.Price, "sorted descending")
		}
		hi := 15
		if view == service.ViewAggregate {
			hi = 20
		}
		assert.GreaterOrEqual(t, r.PercentChange, -5)
		assert.Less(t, r.PercentChange, hi)
		switch {
		case r.PercentChange > 2:
			assert.Equal(t, entities.TrendUp, r.Trend)
		case r.PercentChange < -2:
			assert.Equal(t, entities.TrendDown, r.Trend)
		default:
			assert.Equal(t, entities.TrendStable, r.Trend)
		}
	}
	assert.Equal(t, "Highest", snap.RegionalPrices[0].Label)
	assert.Equal(t, "Lowest", snap.RegionalPrices[5].Label)

	assert.Equal(t, sum/6, snap.CurrentPrice)
	assert.GreaterOrEqual(t, snap.ExpectedYield, 500)
	assert.LessOrEqual(t, snap.ExpectedYield, 1000)
	assert.Equal(t, snap.CurrentPrice*snap.ExpectedYield, snap.ExpectedRevenue)
	assert.GreaterOrEqual(t, snap.ProfitMargin, 20)
	assert.Less(t, snap.ProfitMargin, 50)
	assert.Equal(t, snap.ExpectedRevenue*snap.ProfitMargin/100, snap.Profit)
	assert.Contains(t, []entities.Trend{entities.TrendUp, entities.TrendDown}, snap.Trend)
}

func TestSnapshotInvariants(t *testing.T) {
	svc := newSvc(17, nil)
	for _, view := range []service.View{service.ViewModal, service.ViewAggregate} {
		for i := 0; i < 300; i++ {
			snap, err := svc.Snapshot("Mustard", view)
			require.NoError(t, err)
			assertConsistent(t, snap, view)
		}
	}
}

func TestRegionalPricesShareOneBase(t *testing.T) {
	svc := newSvc(23, nil)
	for i := 0; i < 100; i++ {
		snap, err := svc.Snapshot("Soybean", service.ViewAggregate)
		require.NoError(t, err)
		spread := snap.RegionalPrices[0].Price - snap.RegionalPrices[5].Price
		assert.LessOrEqual(t, spread, 30)
	}
}

func TestSnapshotUnknownCrop(t *testing.T) {
	snap, err := newSvc(1, nil).Snapshot("NotARealCrop", service.ViewModal)
	require.NoError(t, err)
	assert.Equal(t, "NotARealCrop", snap.CropName)
	assertConsistent(t, snap, service.ViewModal)
	assert.Contains(t, []string{"High", "Medium"}, snap.DemandLevel)
	assert.Contains(t, []string{"Peak Season", "Off Season"}, snap.SeasonalFactor)
	assert.GreaterOrEqual(t, snap.TrendPercentage, 5)
	assert.LessOrEqual(t, snap.TrendPercentage, 24)
}

func TestSnapshotRejectsEmptyName(t *testing.T) {
	_, err := newSvc(1, nil).Snapshot("  ", service.ViewModal)
	assert.ErrorIs(t, err, service.ErrEmptyCropName)

	_, err = newSvc(1, nil).Snapshots([]string{"Mustard", ""}, service.ViewModal)
	assert.ErrorIs(t, err, service.ErrEmptyCropName)
}

func TestSnapshotRejectsUnknownView(t *testing.T) {
	_, err := newSvc(1, nil).Snapshot("Mustard", "weekly")
	assert.ErrorIs(t, err, service.ErrUnknownView)
}

func TestAggregateViewOmitsModalFields(t *testing.T) {
	snap, err := newSvc(2, nil).Snapshot("Mustard", service.ViewAggregate)
	require.NoError(t, err)
	assert.Zero(t, snap.TrendPercentage)
	assert.Empty(t, snap.DemandLevel)
}

func names(snaps []entities.MarketSnapshot) []string {
	var out []string
	for _, s := range snaps {
		out = append(out, s.CropName)
	}
	return out
}

func TestInsightsCropSelection(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		plans savedPlanReader
		want  []string
	}{
		{"no reader", nil, service.DefaultCrops},
		{"nothing saved", stubPlans{}, service.DefaultCrops},
		{"read error", stubPlans{err: errors.New("corrupt")}, service.DefaultCrops},
		{"blank names", stubPlans{names: []string{"", " "}}, service.DefaultCrops},
		{"saved plans", stubPlans{names: []string{"Groundnut", "Sesame"}}, []string{"Groundnut", "Sesame"}},
		{"first three", stubPlans{names: []string{"A", "B", "C", "D"}}, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snaps, err := newSvc(9, tc.plans).Insights(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(snaps))
			for _, s := range snaps {
				assertConsistent(t, s, service.ViewAggregate)
			}
		})
	}
}

func TestParseView(t *testing.T) {
	v, err := service.ParseView("")
	require.NoError(t, err)
	assert.Equal(t, service.ViewAggregate, v)

	v, err = service.ParseView("modal")
	require.NoError(t, err)
	assert.Equal(t, service.ViewModal, v)

	_, err = service.ParseView("daily")
	assert.ErrorIs(t, err, service.ErrUnknownView)
}
