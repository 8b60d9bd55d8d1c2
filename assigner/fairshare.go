package assigner

import (
	"fmt"
	"slices"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// FairShare implements proportional media distribution with deterministic
// remainder handling.
//
// Every partition receives base = m div k units. The remainder r = m mod k
// is handed out one unit at a time to the r heaviest partitions, ranked by
// aggregate weight descending with ties broken by ascending partition index,
// so the narrative's earlier heavy groups are favored consistently. Media
// sub-ranges are then laid out in partition-index order, so the earliest
// partitions always receive the earliest media units regardless of which
// partitions won the extra unit.
type FairShare struct{}

var _ types.AssignStrategy = (*FairShare)(nil)

// NewFairShare creates a new fair-share assign strategy.
//
// Returns:
//   - *FairShare: Initialized strategy, stateless and safe for concurrent use
//
// Example:
//
//	strategy := assigner.NewFairShare()
//	assignment, err := strategy.Distribute(plan, 7)
//	// three partitions weighing 45, 48, 52 -> counts 2, 2, 3
func NewFairShare() *FairShare {
	return &FairShare{}
}

// Distribute computes per-partition media counts and contiguous sub-ranges.
//
// Parameters:
//   - plan: Partition plan to distribute media across
//   - m: Number of available media units
//
// Returns:
//   - types.MediaAssignment: Slots in partition-index order; counts sum to m
//     and every count is base or base+1
//   - error: types.ErrInvalidInput for an empty plan,
//     types.ErrInsufficientMedia if m < plan.Len()
func (f *FairShare) Distribute(plan types.PartitionPlan, m int) (types.MediaAssignment, error) {
	k := plan.Len()
	if k == 0 {
		return types.MediaAssignment{}, fmt.Errorf("%w: plan has no partitions", types.ErrInvalidInput)
	}
	if m < k {
		return types.MediaAssignment{}, fmt.Errorf("%w: %d media units for %d partitions",
			types.ErrInsufficientMedia, m, k)
	}

	base := m / k
	remainder := m % k

	counts := make([]int, k)
	for i := range counts {
		counts[i] = base
	}

	// Rank partitions by weight descending, ties by ascending index, and
	// hand one extra unit to the top remainder entries.
	ranked := make([]int, k)
	for i := range ranked {
		ranked[i] = i
	}
	slices.SortStableFunc(ranked, func(a, b int) int {
		pa, pb := plan.Partitions[a], plan.Partitions[b]
		if pa.Weight != pb.Weight {
			return pb.Weight - pa.Weight
		}

		return pa.Index - pb.Index
	})
	for _, i := range ranked[:remainder] {
		counts[i]++
	}

	assignment := types.MediaAssignment{
		Story:      plan.Story,
		Transition: plan.Transition,
		Slots:      make([]types.MediaSlot, k),
		Total:      m,
	}
	offset := 0
	for i, p := range plan.Partitions {
		assignment.Slots[i] = types.MediaSlot{
			Partition: p.Index,
			Offset:    offset,
			Count:     counts[i],
		}
		offset += counts[i]
	}

	return assignment, nil
}
