// Package plancache memoizes computed partition plans.
//
// Aligning a batch of stories walks the same transitions repeatedly, and
// independent (story, transition) invocations may run in parallel. Plans are
// deterministic functions of (weights, k), so the cache stores them under an
// exact binary key and serves copies on subsequent lookups.
package plancache

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/hash"
	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// Cache is a concurrency-safe plan memoization table.
//
// Keys encode the full (weights, k) input, so a hit is always an exact match
// and never an approximation. Stored plans carry only boundary structure;
// Story and Transition are stamped by the caller after lookup.
type Cache struct {
	plans *xsync.Map[string, types.PartitionPlan]
}

// New creates an empty plan cache.
//
// Returns:
//   - *Cache: Initialized cache safe for concurrent use
func New() *Cache {
	return &Cache{
		plans: xsync.NewMap[string, types.PartitionPlan](),
	}
}

// Key builds the cache key for a (weights, k) input.
//
// Parameters:
//   - weights: Ordered weight sequence
//   - k: Requested partition count
//
// Returns:
//   - string: Exact binary key
func Key(weights []int, k int) string {
	return hash.WeightsKey(weights, k)
}

// Get looks up a previously stored plan.
//
// The returned plan is a copy; mutating it does not affect the cached entry.
//
// Parameters:
//   - key: Cache key built with Key
//
// Returns:
//   - types.PartitionPlan: Copy of the cached plan (zero value on miss)
//   - bool: true on a hit
func (c *Cache) Get(key string) (types.PartitionPlan, bool) {
	plan, ok := c.plans.Load(key)
	if !ok {
		return types.PartitionPlan{}, false
	}

	return clonePlan(plan), true
}

// Put stores a plan under the given key.
//
// The plan is copied on the way in, so later mutations by the caller do not
// leak into the cache.
//
// Parameters:
//   - key: Cache key built with Key
//   - plan: Plan to store
func (c *Cache) Put(key string, plan types.PartitionPlan) {
	c.plans.Store(key, clonePlan(plan))
}

// Size returns the number of cached plans.
func (c *Cache) Size() int {
	return c.plans.Size()
}

func clonePlan(plan types.PartitionPlan) types.PartitionPlan {
	cloned := plan
	cloned.Partitions = make([]types.Partition, len(plan.Partitions))
	for i, p := range plan.Partitions {
		cp := p
		cp.Units = make([]types.NarrativeUnit, len(p.Units))
		copy(cp.Units, p.Units)
		cloned.Partitions[i] = cp
	}

	return cloned
}
