package repositoryImp

import (
	"context"
	"sync"

	"vyaas/pkg/storage/repository"
)

type memoryRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory keeps records for the life of the process only.
func NewMemory() repository.RecordRepository { return &memoryRepo{data: map[string][]byte{}} }

func (r *memoryRepo) Name() string { return "memory" }

func (r *memoryRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (r *memoryRepo) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	r.data[key] = append([]byte(nil), value...)
	r.mu.Unlock()
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	delete(r.data, key)
	r.mu.Unlock()
	return nil
}

func (r *memoryRepo) Ping(context.Context) error { return nil }
