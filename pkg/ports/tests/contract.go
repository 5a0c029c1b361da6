package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunVerdictCacheContract runs a suite of tests to verify that a VerdictCache
// implementation adheres to the defined interface contract.
func RunVerdictCacheContract(t *testing.T, cache ports.VerdictCache) {
	ctx := context.Background()
	ns := "contract-" + time.Now().Format("20060102150405.000000000")

	t.Run("Miss", func(t *testing.T) {
		_, found, err := cache.Get(ctx, ns, "never-stored")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put and Get", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, ns, "ab", true))
		require.NoError(t, cache.Put(ctx, ns, "bb", false))

		accepted, found, err := cache.Get(ctx, ns, "ab")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, accepted)

		accepted, found, err = cache.Get(ctx, ns, "bb")
		require.NoError(t, err)
		assert.True(t, found, "rejections are cached too")
		assert.False(t, accepted)
	})

	t.Run("Empty Word", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, ns, "", true))
		accepted, found, err := cache.Get(ctx, ns, "")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, accepted)
	})

	t.Run("Namespaces Are Isolated", func(t *testing.T) {
		other := ns + "-other"
		require.NoError(t, cache.Put(ctx, other, "ab", false))
		defer func() { _ = cache.Purge(ctx, other) }()

		accepted, _, err := cache.Get(ctx, ns, "ab")
		require.NoError(t, err)
		assert.True(t, accepted)
	})

	t.Run("Purge", func(t *testing.T) {
		require.NoError(t, cache.Purge(ctx, ns))

		_, found, err := cache.Get(ctx, ns, "ab")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, cache.Purge(ctx, ns), "purging an empty namespace is not an error")
	})
}
