package serviceImp

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/catalog"
	"vyaas/pkg/metrics"
	"vyaas/pkg/random"
	"vyaas/pkg/recommend/service"
)

const (
	placeholderImage = "/placeholder.svg"
	suitabilityLo    = 70
	suitabilityHi    = 95
)

type profileLoader interface {
	Load(ctx context.Context) (*entities.FarmProfile, error)
}

type RecommendSvc struct {
	cat      *catalog.Catalog
	rnd      random.Source
	profiles profileLoader
	log      *zap.Logger
}

func NewRecommendService(cat *catalog.Catalog, rnd random.Source, profiles profileLoader, log *zap.Logger) *RecommendSvc {
	return &RecommendSvc{cat: cat, rnd: rnd, profiles: profiles, log: log}
}

var _ service.RecommendService = (*RecommendSvc)(nil)

func (s *RecommendSvc) ForStoredProfile(ctx context.Context) (*entities.FarmProfile, []entities.CropRecommendation, error) {
	var p entities.FarmProfile
	stored, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if stored != nil {
		p = *stored
	}
	return stored, s.Generate(p), nil
}

func (s *RecommendSvc) Generate(p entities.FarmProfile) []entities.CropRecommendation {
	picked, path, padded := s.selectEntries(p.SoilType)
	metrics.RecommendationsTotal.WithLabelValues(path, strconv.FormatBool(padded)).Inc()
	s.log.Debug("recommendations selected",
		zap.String("soil", p.SoilType), zap.String("path", path), zap.Bool("padded", padded), zap.Int("count", len(picked)))

	out := make([]entities.CropRecommendation, 0, len(picked))
	for _, e := range picked {
		out = append(out, s.sample(e))
	}
	return out
}

// selectEntries applies the soil rule: a recognized soil takes the entries
// tagged with it in catalog order, anything else takes a shuffled copy.
// Short selections are padded from the rest of the catalog in catalog order.
func (s *RecommendSvc) selectEntries(soil string) ([]entities.CropCatalogEntry, string, bool) {
	var picked []entities.CropCatalogEntry
	path := "shuffled"
	if s.cat.Recognizes(soil) {
		path = "soil_match"
		for _, e := range s.cat.Crops {
			if e.SuitsSoil(soil) {
				picked = append(picked, e)
			}
		}
	} else {
		all := append([]entities.CropCatalogEntry(nil), s.cat.Crops...)
		s.rnd.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		picked = all
	}
	if len(picked) > service.PickCount {
		picked = picked[:service.PickCount]
	}

	padded := false
	if len(picked) < service.PickCount {
		chosen := map[string]bool{}
		for _, e := range picked {
			chosen[e.ID] = true
		}
		for _, e := range s.cat.Crops {
			if len(picked) == service.PickCount {
				break
			}
			if !chosen[e.ID] {
				picked = append(picked, e)
				padded = true
			}
		}
	}
	return picked, path, padded
}

func (s *RecommendSvc) sample(e entities.CropCatalogEntry) entities.CropRecommendation {
	img := e.Image
	if img == "" {
		img = placeholderImage
	}
	return entities.CropRecommendation{
		ID:             e.ID,
		Name:           e.Name,
		Image:          img,
		Suitability:    random.Between(s.rnd, suitabilityLo, suitabilityHi),
		Reasons:        append([]string(nil), e.Reasons...),
		GrowthDuration: random.Between(s.rnd, e.GrowthDuration.Lo, e.GrowthDuration.Hi),
		YieldPerAcre:   random.Between(s.rnd, e.Yield.Lo, e.Yield.Hi),
		ProfitPerAcre:  random.Between(s.rnd, e.Profit.Lo, e.Profit.Hi),
	}
}
