package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNoCacheEntry = errors.New("no cache entry")

type Cache interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
