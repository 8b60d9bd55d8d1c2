package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations must be non-blocking and safe for concurrent use; Align
// invocations for independent (story, transition) pairs may run in parallel.
//
// This interface composes smaller, domain-focused interfaces so callers can
// instrument only the side they care about.
type MetricsCollector interface {
	PlannerMetrics
	AssignerMetrics
}

// PlannerMetrics defines metrics for partition planning.
type PlannerMetrics interface {
	// RecordPlan records one computed partition plan.
	//
	// Parameters:
	//   - transition: Transition identifier (e.g. "1to2")
	//   - partitions: Number of partitions in the plan
	//   - bottleneck: Maximum partition weight of the plan
	RecordPlan(transition string, partitions int, bottleneck int)

	// RecordPlanCacheLookup records a plan cache lookup outcome.
	//
	// Parameters:
	//   - hit: true if a previously computed plan was reused
	RecordPlanCacheLookup(hit bool)
}

// AssignerMetrics defines metrics for media distribution.
type AssignerMetrics interface {
	// RecordAssignment records one computed media assignment.
	//
	// Parameters:
	//   - transition: Transition identifier
	//   - mediaUnits: Total media units distributed
	//   - remainder: Number of partitions that received an extra unit
	RecordAssignment(transition string, mediaUnits int, remainder int)
}
