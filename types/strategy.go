package types

// PlanStrategy splits an ordered weight sequence into contiguous groups.
//
// The built-in implementation is planner.Minimax, the bottleneck linear
// partition: it minimizes the maximum group weight over all contiguous
// k'-way splits, where k' = min(k, len(weights)).
//
// Strategy implementations must:
//   - Be deterministic (same input always yields the same split)
//   - Be stateless and safe for concurrent use
//   - Validate inputs up front and never return a partial result
type PlanStrategy interface {
	// Split computes the group boundaries for the given weights.
	//
	// Parameters:
	//   - weights: Ordered sequence of positive unit weights
	//   - k: Requested group count (clamped to len(weights))
	//
	// Returns:
	//   - []int: min(k, len(weights)) ascending end offsets, one per group;
	//     group i covers weights[ends[i-1]:ends[i]] (ends[-1] taken as 0)
	//     and the final offset equals len(weights)
	//   - error: ErrInvalidInput for k <= 0, an empty sequence, or a
	//     non-positive weight
	Split(weights []int, k int) ([]int, error)
}

// AssignStrategy distributes a pool of media units across the partitions of
// a plan.
//
// The built-in implementation is assigner.FairShare: every partition gets
// floor(m/k') units and the remainder goes to the heaviest partitions, ties
// broken by lowest partition index.
//
// Strategy implementations must be deterministic, stateless, and must never
// produce a partition with zero media units.
type AssignStrategy interface {
	// Distribute computes per-partition media counts and contiguous media
	// sub-ranges for the given plan.
	//
	// Parameters:
	//   - plan: Partition plan to distribute media across
	//   - m: Number of available media units (must be >= plan.Len())
	//
	// Returns:
	//   - MediaAssignment: Slots in partition-index order covering all m units
	//   - error: ErrInvalidInput for an empty plan, ErrInsufficientMedia if
	//     m < plan.Len()
	Distribute(plan PartitionPlan, m int) (MediaAssignment, error)
}
