package types

import "errors"

// Sentinel errors for the audioflo library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap them with context using
// fmt.Errorf("...: %w", Err) so callers can both match the kind and read
// the detail.

// Core errors - returned by plan and assign strategies.
var (
	// ErrInvalidInput is returned for a non-positive partition count, an
	// empty unit sequence, or a non-positive weight. It is raised before any
	// computation begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientMedia is returned when fewer media units are available
	// than partitions. Every partition must receive at least one media unit,
	// so no partial assignment is ever produced.
	ErrInsufficientMedia = errors.New("insufficient media units")

	// ErrInvalidPlan is returned when a partition plan violates its
	// structural invariants (empty partitions, non-consecutive indexes,
	// weight mismatches, or non-ascending member IDs).
	ErrInvalidPlan = errors.New("invalid partition plan")
)

// Aligner errors - public API errors returned by the Aligner.
var (
	// ErrPlannerRequired is returned when the plan strategy is nil.
	ErrPlannerRequired = errors.New("plan strategy is required")

	// ErrAssignerRequired is returned when the assign strategy is nil.
	ErrAssignerRequired = errors.New("assign strategy is required")
)
