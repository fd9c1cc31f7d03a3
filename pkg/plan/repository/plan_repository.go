package repository

import (
	"context"

	"vyaas/entities"
)

// SavedPlanKey is the storage key of the saved-plan list.
const SavedPlanKey = "vyaas_saved_plans"

type PlanRepository interface {
	// List returns nil when nothing has been saved.
	List(ctx context.Context) ([]entities.SavedPlan, error)
	ReplaceAll(ctx context.Context, plans []entities.SavedPlan) error
}
