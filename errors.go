package audioflo

import "github.com/luckydeignan/audioFloInterpolationGenerator/types"

// Sentinel errors returned by the library.
//
// These alias the definitions in the types package so errors.Is works
// regardless of which import path produced the error.
var (
	// ErrInvalidInput is returned for a non-positive partition count, an
	// empty unit sequence, or a non-positive weight.
	ErrInvalidInput = types.ErrInvalidInput

	// ErrInsufficientMedia is returned when fewer media units are available
	// than partitions.
	ErrInsufficientMedia = types.ErrInsufficientMedia

	// ErrInvalidPlan is returned when a partition plan violates its
	// structural invariants.
	ErrInvalidPlan = types.ErrInvalidPlan

	// ErrPlannerRequired is returned when the plan strategy is nil.
	ErrPlannerRequired = types.ErrPlannerRequired

	// ErrAssignerRequired is returned when the assign strategy is nil.
	ErrAssignerRequired = types.ErrAssignerRequired
)
