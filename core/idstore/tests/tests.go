package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/hhubb22/kea-conf-generate/core/idstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	// StoreFactory should create a new store instance
	StoreFactory func(ctx context.Context) idstore.Store

	// TeardownFunc is invoked after each test case
	TeardownFunc func(idstore.Store)
)

// Run executes a test suite to ensure store implementations match the
// requirements
func Run(t *testing.T, factory StoreFactory, teardown TeardownFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	instance := factory(ctx)
	require.NotNil(t, instance)
	defer teardown(instance)

	t.Run("Allocate", func(t *testing.T) {
		// ids start at 1 and increase monotonically
		for want := uint64(1); want <= 3; want++ {
			id, err := instance.Allocate(ctx, fmt.Sprintf("10.0.%d.0/24", want))
			require.NoError(t, err)
			assert.Equal(t, want, id, "Allocation #%d failed", want)
		}

		// allocating an already known cidr returns the stored id
		id, err := instance.Allocate(ctx, "10.0.2.0/24")
		require.NoError(t, err)
		assert.Equal(t, uint64(2), id)

		// and must not burn a new id
		id, err = instance.Allocate(ctx, "10.0.4.0/24")
		require.NoError(t, err)
		assert.Equal(t, uint64(4), id)
	})

	t.Run("Get", func(t *testing.T) {
		id, ok, err := instance.Get(ctx, "10.0.1.0/24")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, uint64(1), id)

		// unknown cidrs report false instead of an error
		_, ok, err = instance.Get(ctx, "192.168.0.0/16")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("List", func(t *testing.T) {
		ids, err := instance.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]uint64{
			"10.0.1.0/24": 1,
			"10.0.2.0/24": 2,
			"10.0.3.0/24": 3,
			"10.0.4.0/24": 4,
		}, ids)
	})
}
