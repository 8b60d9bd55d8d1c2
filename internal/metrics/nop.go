// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/luckydeignan/audioFloInterpolationGenerator/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPlan discards the plan metric.
func (n *NopMetrics) RecordPlan(_ /* transition */ string, _ /* partitions */, _ /* bottleneck */ int) {
	// No-op
}

// RecordPlanCacheLookup discards the cache lookup metric.
func (n *NopMetrics) RecordPlanCacheLookup(_ /* hit */ bool) {
	// No-op
}

// RecordAssignment discards the assignment metric.
func (n *NopMetrics) RecordAssignment(_ /* transition */ string, _ /* mediaUnits */, _ /* remainder */ int) {
	// No-op
}
