package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis persists each key as a plain Redis string. Documents are small
// (one shop's collections), so no TTL and no chunking.
type Redis struct {
	rdb *redis.Client
}

// NewRedis wraps an already-connected client.
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Get(ctx context.Context, clave string) ([]byte, error) {
	v, err := r.rdb.Get(ctx, clave).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, clave string, valor []byte) error {
	return r.rdb.Set(ctx, clave, valor, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, clave string) error {
	return r.rdb.Del(ctx, clave).Err()
}

var _ Engine = (*Redis)(nil)
