package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/catalog"
	"vyaas/pkg/random"
)

type stubLoader struct {
	p   *entities.FarmProfile
	err error
}

func (s stubLoader) Load(context.Context) (*entities.FarmProfile, error) { return s.p, s.err }

func newSvc(t *testing.T, cat *catalog.Catalog, seed uint64) *RecommendSvc {
	t.Helper()
	return NewRecommendService(cat, random.New(seed), stubLoader{}, zap.NewNop())
}

func ids(recs []entities.CropRecommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestGenerateAlwaysReturnsThree(t *testing.T) {
	svc := newSvc(t, catalog.MustBuiltin(), 11)
	for _, soil := range []string{"", "Loam", "Clay", "Sandy", "Clay Loam", "loam", "Peat"} {
		for i := 0; i < 20; i++ {
			recs := svc.Generate(entities.FarmProfile{SoilType: soil})
			require.Len(t, recs, 3, "soil %q", soil)
		}
	}
}

func TestGenerateLoamPicksTaggedEntries(t *testing.T) {
	svc := newSvc(t, catalog.MustBuiltin(), 5)
	for i := 0; i < 10; i++ {
		recs := svc.Generate(entities.FarmProfile{SoilType: "Loam"})
		assert.Equal(t, []string{"mustard", "soybean", "sunflower"}, ids(recs))
	}
}

func TestGenerateClayPadsInCatalogOrder(t *testing.T) {
	svc := newSvc(t, catalog.MustBuiltin(), 5)
	recs := svc.Generate(entities.FarmProfile{SoilType: "Clay"})
	// soybean and safflower are Clay-tagged; mustard is the first remaining entry
	assert.Equal(t, []string{"soybean", "safflower", "mustard"}, ids(recs))
}

func TestGenerateFieldsWithinRanges(t *testing.T) {
	cat := catalog.MustBuiltin()
	svc := newSvc(t, cat, 3)
	for i := 0; i < 200; i++ {
		for _, r := range svc.Generate(entities.FarmProfile{}) {
			e, err := cat.ByID(r.ID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, r.Suitability, 70)
			assert.LessOrEqual(t, r.Suitability, 95)
			assert.True(t, e.GrowthDuration.Contains(r.GrowthDuration))
			assert.True(t, e.Yield.Contains(r.YieldPerAcre))
			assert.True(t, e.Profit.Contains(r.ProfitPerAcre))
			assert.Equal(t, e.Reasons, r.Reasons)
			assert.NotEmpty(t, r.Image)
		}
	}
}

func TestGenerateUnmatchedSoilIsDistinctSubset(t *testing.T) {
	cat := catalog.MustBuiltin()
	svc := newSvc(t, cat, 8)
	subsets := map[string]bool{}
	for i := 0; i < 50; i++ {
		got := ids(svc.Generate(entities.FarmProfile{}))
		assert.Len(t, got, 3)
		seen := map[string]bool{}
		for _, id := range got {
			assert.False(t, seen[id], "duplicate %s", id)
			seen[id] = true
		}
		subsets[got[0]+","+got[1]+","+got[2]] = true
	}
	assert.Greater(t, len(subsets), 1, "shuffle should vary the subset")
}

func TestGenerateDoesNotMutateCatalog(t *testing.T) {
	cat := catalog.MustBuiltin()
	before := make([]string, 0, cat.Len())
	for _, e := range cat.Crops {
		before = append(before, e.ID)
	}
	svc := newSvc(t, cat, 21)
	for i := 0; i < 10; i++ {
		svc.Generate(entities.FarmProfile{})
	}
	after := make([]string, 0, cat.Len())
	for _, e := range cat.Crops {
		after = append(after, e.ID)
	}
	assert.Equal(t, before, after)
}

func TestGenerateSmallCatalog(t *testing.T) {
	cat, err := catalog.Parse([]byte(`
recognized_soils: [Loam]
crops:
  - {id: a, name: A, yield: {lo: 1, hi: 2}, profit: {lo: 1, hi: 2}, growth_duration: {lo: 1, hi: 2}}
  - {id: b, name: B, yield: {lo: 1, hi: 2}, profit: {lo: 1, hi: 2}, growth_duration: {lo: 1, hi: 2}}
`))
	require.NoError(t, err)
	svc := newSvc(t, cat, 1)

	assert.Len(t, svc.Generate(entities.FarmProfile{SoilType: "Loam"}), 2)
	assert.Len(t, svc.Generate(entities.FarmProfile{}), 2)
	for _, r := range svc.Generate(entities.FarmProfile{}) {
		assert.Equal(t, "/placeholder.svg", r.Image)
	}
}

func TestGenerateIgnoresProfileMutation(t *testing.T) {
	svc := newSvc(t, catalog.MustBuiltin(), 2)
	p := entities.FarmProfile{SoilType: "Loam", FarmName: "Green Acres"}
	svc.Generate(p)
	assert.Equal(t, "Loam", p.SoilType)
	assert.Equal(t, "Green Acres", p.FarmName)
}

func TestForStoredProfile(t *testing.T) {
	cat := catalog.MustBuiltin()

	svc := NewRecommendService(cat, random.New(4), stubLoader{p: &entities.FarmProfile{SoilType: "Loam"}}, zap.NewNop())
	p, recs, err := svc.ForStoredProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"mustard", "soybean", "sunflower"}, ids(recs))

	svc = NewRecommendService(cat, random.New(4), stubLoader{}, zap.NewNop())
	p, recs, err = svc.ForStoredProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Len(t, recs, 3)

	boom := errors.New("boom")
	svc = NewRecommendService(cat, random.New(4), stubLoader{err: boom}, zap.NewNop())
	_, _, err = svc.ForStoredProfile(context.Background())
	assert.ErrorIs(t, err, boom)
}
