package types

import "fmt"

// MediaUnit is one generated media artifact, identified by name.
//
// Units are externally supplied and already carry a canonical total order
// (lexical filename order for MIDI interpolations). The core only relies on
// that order, never on the content behind the name.
type MediaUnit string

// MediaSlot is the contiguous sub-range of the sorted media sequence assigned
// to a single partition.
type MediaSlot struct {
	// Partition is the 1-based index of the receiving partition.
	Partition int `json:"partition"`

	// Offset is the position of the slot's first media unit within the
	// sorted media sequence.
	Offset int `json:"offset"`

	// Count is the number of media units in the slot. Always base or base+1
	// for a fair-share assignment.
	Count int `json:"count"`
}

// MediaAssignment maps each partition of a plan to a contiguous sub-range of
// the sorted media sequence.
//
// Slots appear in partition-index order, their sub-ranges are disjoint, and
// their union covers the media sequence exactly: the slot offsets ascend and
// the counts sum to Total.
type MediaAssignment struct {
	// Story identifies the narrative this assignment belongs to.
	Story string `json:"story"`

	// Transition identifies the cluster transition this assignment belongs to.
	Transition string `json:"transition"`

	// Slots holds one entry per partition, ordered by partition index.
	Slots []MediaSlot `json:"slots"`

	// Total is the number of media units distributed across all slots.
	Total int `json:"total"`
}

// Counts returns the per-partition media counts in partition-index order.
//
// Returns:
//   - []int: Count of each slot
func (a MediaAssignment) Counts() []int {
	counts := make([]int, len(a.Slots))
	for i, s := range a.Slots {
		counts[i] = s.Count
	}

	return counts
}

// Bind resolves each slot to its concrete media units.
//
// The caller supplies the full media sequence in canonical sorted order; Bind
// slices it according to slot offsets without copying unit names.
//
// Parameters:
//   - media: Sorted media sequence; length must equal Total
//
// Returns:
//   - [][]MediaUnit: One sub-slice per slot, in partition-index order
//   - error: ErrInvalidInput if the media sequence length does not match Total
func (a MediaAssignment) Bind(media []MediaUnit) ([][]MediaUnit, error) {
	if len(media) != a.Total {
		return nil, fmt.Errorf("%w: assignment covers %d media units, got %d",
			ErrInvalidInput, a.Total, len(media))
	}

	bound := make([][]MediaUnit, len(a.Slots))
	for i, s := range a.Slots {
		bound[i] = media[s.Offset : s.Offset+s.Count]
	}

	return bound, nil
}
