package cache

import (
	"context"
	"time"
)

type ctxKey struct{}

// WithContext returns a copy of ctx with cache associated. If a Cache instance
// is already in the context, the context is not updated.
func WithContext(ctx context.Context, cch Cache) context.Context {
	if known, ok := ctx.Value(ctxKey{}).(Cache); ok {
		if known == cch {
			// Do not store same cache.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, cch)
}

// Ctx returns the Cache associated with the ctx. If no cache is associated, an
// instance is returned, which does nothing.
func Ctx(ctx context.Context) Cache {
	if c, ok := ctx.Value(ctxKey{}).(Cache); ok {
		return c
	}

	return noopCache{}
}

type noopCache struct{}

func (noopCache) Start(_ context.Context) error { return nil }

func (noopCache) Stop(_ context.Context) error { return nil }

func (noopCache) Get(_ context.Context, _ string) ([]byte, error) { return nil, ErrNoCacheEntry }

func (noopCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error { return nil }

func (noopCache) Delete(_ context.Context, _ string) error { return nil }
