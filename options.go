package audioflo

// Option configures an Aligner with optional dependencies.
type Option func(*alignerOptions)

// alignerOptions holds optional Aligner configuration.
type alignerOptions struct {
	planner      PlanStrategy
	assigner     AssignStrategy
	logger       Logger
	metrics      MetricsCollector
	disableCache bool
}

// WithPlanner sets a custom plan strategy.
//
// Parameters:
//   - strategy: PlanStrategy implementation
//
// Returns:
//   - Option: Functional option for NewAligner
//
// Example:
//
//	aligner, err := audioflo.NewAligner(audioflo.WithPlanner(planner.NewMinimax()))
func WithPlanner(strategy PlanStrategy) Option {
	return func(o *alignerOptions) {
		o.planner = strategy
	}
}

// WithAssigner sets a custom assign strategy.
//
// Parameters:
//   - strategy: AssignStrategy implementation
//
// Returns:
//   - Option: Functional option for NewAligner
func WithAssigner(strategy AssignStrategy) Option {
	return func(o *alignerOptions) {
		o.assigner = strategy
	}
}

// WithLogger sets a logger.
//
// The Aligner logs only at debug level around invocations; the pure
// algorithm packages never log.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for NewAligner
func WithLogger(logger Logger) Option {
	return func(o *alignerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewAligner
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *alignerOptions) {
		o.metrics = metrics
	}
}

// WithoutPlanCache disables plan memoization.
//
// By default the Aligner reuses plans computed for identical
// (weights, partition count) inputs, which helps when a batch aligns the
// same transition repeatedly. Disable it when inputs never repeat and the
// memory is better spent elsewhere.
//
// Returns:
//   - Option: Functional option for NewAligner
func WithoutPlanCache() Option {
	return func(o *alignerOptions) {
		o.disableCache = true
	}
}
