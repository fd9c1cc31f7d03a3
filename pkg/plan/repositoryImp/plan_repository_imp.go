package repositoryImp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vyaas/entities"
	"vyaas/pkg/plan/repository"
	records "vyaas/pkg/storage/repository"
)

type planRepo struct{ store records.RecordRepository }

func New(store records.RecordRepository) repository.PlanRepository { return &planRepo{store} }

func (r *planRepo) List(ctx context.Context) ([]entities.SavedPlan, error) {
	b, err := r.store.Get(ctx, repository.SavedPlanKey)
	if errors.Is(err, records.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ps []entities.SavedPlan
	if err := json.Unmarshal(b, &ps); err != nil {
		return nil, fmt.Errorf("decode saved plans: %w", err)
	}
	return ps, nil
}

func (r *planRepo) ReplaceAll(ctx context.Context, plans []entities.SavedPlan) error {
	if plans == nil {
		plans = []entities.SavedPlan{}
	}
	b, err := json.Marshal(plans)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, repository.SavedPlanKey, b)
}
