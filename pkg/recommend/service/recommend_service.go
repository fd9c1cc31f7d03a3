package service

import (
	"context"

	"vyaas/entities"
)

// PickCount is the number of crops every generation returns when the
// catalog is large enough.
const PickCount = 3

type RecommendService interface {
	// Generate derives recommendations from the given profile without touching storage.
	Generate(p entities.FarmProfile) []entities.CropRecommendation
	// ForStoredProfile loads the saved profile (or defaults) and generates from it.
	ForStoredProfile(ctx context.Context) (*entities.FarmProfile, []entities.CropRecommendation, error)
}
