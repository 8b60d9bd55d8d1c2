package audioflo

import "github.com/luckydeignan/audioFloInterpolationGenerator/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `audioflo`
// package, while still providing a convenient `audioflo.Partition`,
// `audioflo.Logger`, etc. for users.
type (
	NarrativeUnit   = types.NarrativeUnit
	Partition       = types.Partition
	PartitionPlan   = types.PartitionPlan
	MediaUnit       = types.MediaUnit
	MediaSlot       = types.MediaSlot
	MediaAssignment = types.MediaAssignment
)

// Re-export interfaces from the types package for convenience.
type (
	PlanStrategy     = types.PlanStrategy
	AssignStrategy   = types.AssignStrategy
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)
