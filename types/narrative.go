package types

// NarrativeUnit is one sentence of a story, the atomic unit of partitioning.
//
// Units are created by the caller from externally supplied data (typically a
// clustered-sentences CSV) and are never mutated after construction. IDs are
// unique, non-negative, and strictly increasing in narrative order.
type NarrativeUnit struct {
	// ID uniquely identifies the sentence within its story.
	ID int `json:"id"`

	// Weight is the positive word count of the sentence. It drives both the
	// bottleneck partitioning and the remainder distribution of media units.
	Weight int `json:"weight"`

	// Text is an opaque reference to the sentence text. The core never
	// inspects it; it is carried only so reports can echo it back.
	Text string `json:"text,omitempty"`
}

// TotalWeight sums the weights of a unit sequence.
//
// Parameters:
//   - units: Sequence of narrative units
//
// Returns:
//   - int: Sum of all unit weights (0 for an empty sequence)
func TotalWeight(units []NarrativeUnit) int {
	total := 0
	for _, u := range units {
		total += u.Weight
	}

	return total
}

// Weights extracts the weight sequence from a unit sequence, preserving order.
//
// Parameters:
//   - units: Sequence of narrative units
//
// Returns:
//   - []int: Weight of each unit in narrative order
func Weights(units []NarrativeUnit) []int {
	weights := make([]int, len(units))
	for i, u := range units {
		weights[i] = u.Weight
	}

	return weights
}
