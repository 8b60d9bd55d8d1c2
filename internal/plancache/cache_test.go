package plancache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

func samplePlan() types.PartitionPlan {
	return types.PartitionPlan{
		Partitions: []types.Partition{
			{Index: 1, Units: []types.NarrativeUnit{{ID: 0, Weight: 10}}, Weight: 10},
			{Index: 2, Units: []types.NarrativeUnit{{ID: 1, Weight: 20}}, Weight: 20},
		},
	}
}

func TestCache_GetPut(t *testing.T) {
	cache := New()
	key := Key([]int{10, 20}, 2)

	t.Run("miss on empty cache", func(t *testing.T) {
		_, ok := cache.Get(key)
		require.False(t, ok)
	})

	t.Run("hit after put", func(t *testing.T) {
		cache.Put(key, samplePlan())

		got, ok := cache.Get(key)
		require.True(t, ok)
		require.Equal(t, samplePlan(), got)
		require.Equal(t, 1, cache.Size())
	})

	t.Run("returned plan is isolated from the cache", func(t *testing.T) {
		got, ok := cache.Get(key)
		require.True(t, ok)

		got.Partitions[0].Units[0].Weight = 999

		again, ok := cache.Get(key)
		require.True(t, ok)
		require.Equal(t, 10, again.Partitions[0].Units[0].Weight)
	})
}

func TestCache_Concurrent(t *testing.T) {
	cache := New()
	plan := samplePlan()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				key := Key([]int{10, 20, i}, 2)
				cache.Put(key, plan)
				_, _ = cache.Get(key)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 100, cache.Size())
}
