package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vyaas/pkg/storage/repository"
)

const redisPrefix = "vyaas:"

type redisRepo struct{ rdb *redis.Client }

// NewRedis wraps an existing client. Keys are namespaced with "vyaas:".
func NewRedis(rdb *redis.Client) repository.RecordRepository { return &redisRepo{rdb} }

// DialRedis connects and pings before returning.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func (r *redisRepo) Name() string { return "redis" }

func (r *redisRepo) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, redisPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return b, nil
}

func (r *redisRepo) Put(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, redisPrefix+key, value, 0).Err()
}

func (r *redisRepo) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, redisPrefix+key).Err()
}

func (r *redisRepo) Ping(ctx context.Context) error { return r.rdb.Ping(ctx).Err() }
