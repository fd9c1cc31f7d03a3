package repositoryImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vyaas/entities"
	"vyaas/pkg/plan/repository"
	storeImp "vyaas/pkg/storage/repositoryImp"
)

func TestPlanRepository(t *testing.T) {
	ctx := context.Background()
	store := storeImp.NewMemory()
	repo := New(store)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	plans := []entities.SavedPlan{{CropName: "Mustard", Steps: []entities.PlanStep{{Step: 1, Title: "Soil Preparation"}}}}
	require.NoError(t, repo.ReplaceAll(ctx, plans))

	got, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, plans, got)

	raw, err := store.Get(ctx, repository.SavedPlanKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cropName":"Mustard"`)
}

func TestPlanRepositoryMalformed(t *testing.T) {
	ctx := context.Background()
	store := storeImp.NewMemory()
	require.NoError(t, store.Put(ctx, repository.SavedPlanKey, []byte(`{not json`)))

	_, err := New(store).List(ctx)
	assert.ErrorContains(t, err, "decode saved plans")
}
