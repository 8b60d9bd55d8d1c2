package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are registered lazily on first use so constructing the type
// never fails; duplicate registration across collectors with the same
// registerer and namespace will panic the same way prometheus.MustRegister
// does.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	plansTotal       *prometheus.CounterVec
	planPartitions   prometheus.Histogram
	planBottleneck   prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
	assignmentsTotal *prometheus.CounterVec
	mediaAssigned    prometheus.Counter
	remainderUnits   prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "audioflo" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "audioflo"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.plansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plans_total",
			Help:      "Total partition plans computed by transition.",
		}, []string{"transition"})

		p.planPartitions = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_partitions",
			Help:      "Partition counts of computed plans.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10), // 1 .. 19
		})

		p.planBottleneck = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_bottleneck_weight",
			Help:      "Maximum partition weight (bottleneck) of computed plans.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10), // 10 .. ~5k words
		})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_cache_lookups_total",
			Help:      "Plan cache lookups by result (hit/miss).",
		}, []string{"hit"})

		p.assignmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "assignments_total",
			Help:      "Total media assignments computed by transition.",
		}, []string{"transition"})

		p.mediaAssigned = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "media_units_assigned_total",
			Help:      "Total media units distributed across partitions.",
		})

		p.remainderUnits = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "assignment_remainder_units",
			Help:      "Remainder units handed to the heaviest partitions per assignment.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8), // 0 .. 7
		})

		p.reg.MustRegister(
			p.plansTotal,
			p.planPartitions,
			p.planBottleneck,
			p.cacheLookups,
			p.assignmentsTotal,
			p.mediaAssigned,
			p.remainderUnits,
		)
	})
}

// RecordPlan records one computed partition plan.
func (p *PrometheusCollector) RecordPlan(transition string, partitions, bottleneck int) {
	p.ensureRegistered()
	p.plansTotal.WithLabelValues(transition).Inc()
	p.planPartitions.Observe(float64(partitions))
	p.planBottleneck.Observe(float64(bottleneck))
}

// RecordPlanCacheLookup records a plan cache lookup outcome.
func (p *PrometheusCollector) RecordPlanCacheLookup(hit bool) {
	p.ensureRegistered()
	p.cacheLookups.WithLabelValues(strconv.FormatBool(hit)).Inc()
}

// RecordAssignment records one computed media assignment.
func (p *PrometheusCollector) RecordAssignment(transition string, mediaUnits, remainder int) {
	p.ensureRegistered()
	p.assignmentsTotal.WithLabelValues(transition).Inc()
	p.mediaAssigned.Add(float64(mediaUnits))
	p.remainderUnits.Observe(float64(remainder))
}
