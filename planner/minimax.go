package planner

import (
	"fmt"
	"math"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// Minimax implements the bottleneck linear-partition strategy.
//
// Given N positive weights and a requested group count K, it splits the
// sequence into K' = min(K, N) contiguous, non-empty groups minimizing the
// maximum group weight. The answer is the exact optimum, computed by dynamic
// programming over prefix sums in O(N^2 * K') time and O(N * K') space.
//
// Tie-breaking: several boundary choices can achieve the same minimized
// maximum. Minimax always picks the latest split point among the minimizers,
// which keeps the current group as light as possible and pushes weight
// toward earlier groups. The rule is fixed so identical inputs always yield
// bit-identical splits.
type Minimax struct{}

var _ types.PlanStrategy = (*Minimax)(nil)

// NewMinimax creates a new bottleneck linear-partition strategy.
//
// Returns:
//   - *Minimax: Initialized strategy, stateless and safe for concurrent use
//
// Example:
//
//	strategy := planner.NewMinimax()
//	ends, err := strategy.Split([]int{10, 20, 30, 15, 25}, 3)
//	// ends == []int{2, 3, 5}: groups [10,20] [30] [15,25], bottleneck 40
func NewMinimax() *Minimax {
	return &Minimax{}
}

// Split computes the optimal group boundaries for the given weights.
//
// The result covers the whole sequence: group i spans
// weights[ends[i-1]:ends[i]] with ends[-1] taken as 0, and the final offset
// equals len(weights). When K exceeds N the sequence cannot be subdivided
// further than one unit per group, so the result is N singleton groups;
// this is the exact optimum, not an approximation.
//
// Parameters:
//   - weights: Ordered sequence of positive unit weights
//   - k: Requested group count
//
// Returns:
//   - []int: min(k, len(weights)) ascending end offsets
//   - error: types.ErrInvalidInput for k <= 0, an empty sequence, or a
//     non-positive weight
func (m *Minimax) Split(weights []int, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: partition count %d must be positive", types.ErrInvalidInput, k)
	}
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty weight sequence", types.ErrInvalidInput)
	}
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("%w: weight %d at position %d must be positive", types.ErrInvalidInput, w, i)
		}
	}

	kp := min(k, n)

	// Degenerate shapes need no search.
	if kp == 1 {
		return []int{n}, nil
	}
	if kp == n {
		ends := make([]int, n)
		for i := range ends {
			ends[i] = i + 1
		}
		return ends, nil
	}

	// prefix[i] is the sum of the first i weights.
	prefix := make([]int, n+1)
	for i, w := range weights {
		prefix[i+1] = prefix[i] + w
	}

	// dp[j][i] is the minimum achievable maximum group sum when the first i
	// units are split into j groups. back[j][i] records the minimizing split
	// point p: the last group spans (p, i].
	dp := make([][]int, kp+1)
	back := make([][]int, kp+1)
	for j := 1; j <= kp; j++ {
		dp[j] = make([]int, n+1)
		back[j] = make([]int, n+1)
	}
	for i := 1; i <= n; i++ {
		dp[1][i] = prefix[i]
	}

	for j := 2; j <= kp; j++ {
		for i := j; i <= n; i++ {
			best := math.MaxInt
			bestP := -1
			for p := j - 1; p < i; p++ {
				candidate := max(dp[j-1][p], prefix[i]-prefix[p])
				// <= keeps the latest minimizing split point.
				if candidate <= best {
					best = candidate
					bestP = p
				}
			}
			dp[j][i] = best
			back[j][i] = bestP
		}
	}

	// Walk the back pointers from (n, kp) to recover the boundaries.
	ends := make([]int, kp)
	i := n
	for j := kp; j >= 1; j-- {
		ends[j-1] = i
		if j > 1 {
			i = back[j][i]
		}
	}

	return ends, nil
}

// Plan builds a full partition plan for a unit sequence using the given
// strategy.
//
// It validates that unit IDs strictly ascend, splits on the unit weights,
// and materializes partitions with 1-based indexes and aggregate weights.
// Unit slices in the result alias contiguous subranges of the input;
// callers must treat both as immutable.
//
// Parameters:
//   - strategy: Plan strategy to split with (e.g. NewMinimax())
//   - units: Ordered narrative units with positive weights
//   - k: Requested partition count
//
// Returns:
//   - types.PartitionPlan: Plan with min(k, len(units)) partitions
//   - error: types.ErrInvalidInput from validation or from the strategy
func Plan(strategy types.PlanStrategy, units []types.NarrativeUnit, k int) (types.PartitionPlan, error) {
	lastID := -1
	for _, u := range units {
		if u.ID <= lastID {
			return types.PartitionPlan{}, fmt.Errorf("%w: unit id %d does not ascend past %d",
				types.ErrInvalidInput, u.ID, lastID)
		}
		lastID = u.ID
	}

	ends, err := strategy.Split(types.Weights(units), k)
	if err != nil {
		return types.PartitionPlan{}, err
	}

	plan := types.PartitionPlan{
		Partitions: make([]types.Partition, len(ends)),
	}
	start := 0
	for i, end := range ends {
		members := units[start:end]
		plan.Partitions[i] = types.Partition{
			Index:  i + 1,
			Units:  members,
			Weight: types.TotalWeight(members),
		}
		start = end
	}

	return plan, nil
}
