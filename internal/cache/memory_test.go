package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCacheUsage(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		setup  func(t *testing.T, cch Cache)
		assert func(t *testing.T, value []byte, err error)
	}{
		{
			uc: "can retrieve not expired value",
			setup: func(t *testing.T, cch Cache) {
				t.Helper()

				require.NoError(t, cch.Set(t.Context(), "foo", []byte("bar"), 10*time.Minute))
			},
			assert: func(t *testing.T, value []byte, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, []byte("bar"), value)
			},
		},
		{
			uc: "cannot retrieve expired value",
			setup: func(t *testing.T, cch Cache) {
				t.Helper()

				require.NoError(t, cch.Set(t.Context(), "foo", []byte("bar"), time.Millisecond))

				time.Sleep(20 * time.Millisecond)
			},
			assert: func(t *testing.T, _ []byte, err error) {
				t.Helper()

				require.ErrorIs(t, err, ErrNoCacheEntry)
			},
		},
		{
			uc: "cannot retrieve deleted value",
			setup: func(t *testing.T, cch Cache) {
				t.Helper()

				require.NoError(t, cch.Set(t.Context(), "foo", []byte("bar"), 10*time.Minute))
				require.NoError(t, cch.Delete(t.Context(), "foo"))
			},
			assert: func(t *testing.T, _ []byte, err error) {
				t.Helper()

				require.ErrorIs(t, err, ErrNoCacheEntry)
			},
		},
		{
			uc:    "cannot retrieve not existing value",
			setup: func(t *testing.T, _ Cache) { t.Helper() },
			assert: func(t *testing.T, _ []byte, err error) {
				t.Helper()

				require.ErrorIs(t, err, ErrNoCacheEntry)
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			cch := NewInMemory()

			require.NoError(t, cch.Start(context.Background()))

			defer cch.Stop(context.Background()) // nolint: errcheck

			tc.setup(t, cch)

			value, err := cch.Get(t.Context(), "foo")

			tc.assert(t, value, err)
		})
	}
}

func TestCacheContext(t *testing.T) {
	t.Parallel()

	t.Run("case=no cache in context", func(t *testing.T) {
		cch := Ctx(t.Context())

		require.NotNil(t, cch)

		_, err := cch.Get(t.Context(), "foo")
		require.ErrorIs(t, err, ErrNoCacheEntry)
	})

	t.Run("case=cache from context", func(t *testing.T) {
		cch := NewInMemory()
		ctx := WithContext(t.Context(), cch)

		assert.Same(t, cch, Ctx(ctx))
	})

	t.Run("case=same cache is not stored twice", func(t *testing.T) {
		cch := NewInMemory()
		ctx := WithContext(t.Context(), cch)

		assert.Equal(t, ctx, WithContext(ctx, cch))
	})
}
