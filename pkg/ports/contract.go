package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDecisionCacheContract runs a suite of tests to verify that a DecisionCache implementation
// adheres to the defined interface contract.
func RunDecisionCacheContract(t *testing.T, cache DecisionCache) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405") + ":"

	t.Run("Miss", func(t *testing.T) {
		_, found, err := cache.Get(ctx, prefix+"missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, prefix+"yes", true))
		require.NoError(t, cache.Set(ctx, prefix+"no", false))

		accepted, found, err := cache.Get(ctx, prefix+"yes")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, accepted)

		// A cached rejection is a hit, not a miss.
		accepted, found, err = cache.Get(ctx, prefix+"no")
		require.NoError(t, err)
		assert.True(t, found)
		assert.False(t, accepted)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, prefix+"flip", false))
		require.NoError(t, cache.Set(ctx, prefix+"flip", true))

		accepted, found, err := cache.Get(ctx, prefix+"flip")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, accepted)
	})
}
