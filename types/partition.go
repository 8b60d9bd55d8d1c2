package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Partition is a contiguous, order-preserving group of narrative units.
//
// Partitions are produced by a PlanStrategy and are immutable once built.
// Index is 1-based and ascends in narrative order.
type Partition struct {
	// Index is the 1-based position of the partition within its plan.
	Index int `json:"index"`

	// Units is the ordered, contiguous run of narrative units in this
	// partition. Never empty in a valid plan.
	Units []NarrativeUnit `json:"units"`

	// Weight is the sum of the member unit weights.
	Weight int `json:"weight"`
}

// MemberIDs returns the ordered sentence IDs of the partition's units.
//
// Returns:
//   - []int: Unit IDs in narrative order (empty slice if no units)
func (p Partition) MemberIDs() []int {
	ids := make([]int, len(p.Units))
	for i, u := range p.Units {
		ids[i] = u.ID
	}

	return ids
}

// IDRange returns the first and last member IDs.
//
// Returns:
//   - first: ID of the first unit (0 if the partition is empty)
//   - last: ID of the last unit (0 if the partition is empty)
func (p Partition) IDRange() (first, last int) {
	if len(p.Units) == 0 {
		return 0, 0
	}

	return p.Units[0].ID, p.Units[len(p.Units)-1].ID
}

// JoinedIDs returns the member IDs joined with commas, the canonical
// Sentence_IDs representation used by summary records.
//
// Returns:
//   - string: Comma-joined ascending IDs ("" if no units)
func (p Partition) JoinedIDs() string {
	if len(p.Units) == 0 {
		return ""
	}

	parts := make([]string, len(p.Units))
	for i, u := range p.Units {
		parts[i] = strconv.Itoa(u.ID)
	}

	return strings.Join(parts, ",")
}

// PartitionPlan is the ordered sequence of partitions computed for one
// (story, transition) pair.
//
// A valid plan's partitions are pairwise disjoint, jointly cover every
// narrative unit exactly once, preserve narrative order, and are all
// non-empty.
type PartitionPlan struct {
	// Story identifies the narrative this plan belongs to.
	Story string `json:"story"`

	// Transition identifies the cluster transition (e.g. "1to2") this plan
	// belongs to.
	Transition string `json:"transition"`

	// Partitions is the ordered partition sequence. Length is min(K, N).
	Partitions []Partition `json:"partitions"`
}

// Len returns the number of partitions in the plan.
func (p PartitionPlan) Len() int {
	return len(p.Partitions)
}

// UnitCount returns the total number of narrative units across all partitions.
func (p PartitionPlan) UnitCount() int {
	n := 0
	for _, part := range p.Partitions {
		n += len(part.Units)
	}

	return n
}

// MaxWeight returns the largest partition weight in the plan, the bottleneck
// value minimized by the planner.
//
// Returns:
//   - int: Maximum partition weight (0 for an empty plan)
func (p PartitionPlan) MaxWeight() int {
	maxWeight := 0
	for _, part := range p.Partitions {
		if part.Weight > maxWeight {
			maxWeight = part.Weight
		}
	}

	return maxWeight
}

// Validate checks the structural invariants of the plan.
//
// Checked invariants:
//   - At least one partition, every partition non-empty
//   - Indexes are 1-based and consecutive
//   - Partition weights equal the sum of their member unit weights
//   - Member IDs strictly increase across partition boundaries
//
// Returns:
//   - error: ErrInvalidPlan (wrapped with detail) on the first violation, nil otherwise
func (p PartitionPlan) Validate() error {
	if len(p.Partitions) == 0 {
		return fmt.Errorf("%w: plan has no partitions", ErrInvalidPlan)
	}

	lastID := -1
	for i, part := range p.Partitions {
		if part.Index != i+1 {
			return fmt.Errorf("%w: partition at position %d has index %d", ErrInvalidPlan, i, part.Index)
		}
		if len(part.Units) == 0 {
			return fmt.Errorf("%w: partition %d is empty", ErrInvalidPlan, part.Index)
		}

		weight := 0
		for _, u := range part.Units {
			if u.ID <= lastID {
				return fmt.Errorf("%w: partition %d unit id %d does not ascend past %d",
					ErrInvalidPlan, part.Index, u.ID, lastID)
			}
			lastID = u.ID
			weight += u.Weight
		}
		if weight != part.Weight {
			return fmt.Errorf("%w: partition %d weight %d does not match unit sum %d",
				ErrInvalidPlan, part.Index, part.Weight, weight)
		}
	}

	return nil
}
