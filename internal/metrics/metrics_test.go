package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

func TestNopMetrics(t *testing.T) {
	m := NewNop()

	var _ types.MetricsCollector = m

	require.NotPanics(t, func() {
		m.RecordPlan("1to2", 3, 40)
		m.RecordPlanCacheLookup(true)
		m.RecordPlanCacheLookup(false)
		m.RecordAssignment("1to2", 7, 1)
	})
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "audioflo_test")

	var _ types.MetricsCollector = m

	m.RecordPlan("1to2", 3, 40)
	m.RecordPlan("2to3", 5, 120)
	m.RecordPlanCacheLookup(false)
	m.RecordPlanCacheLookup(true)
	m.RecordAssignment("1to2", 7, 1)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}

	require.True(t, names["audioflo_test_planner_plans_total"])
	require.True(t, names["audioflo_test_planner_plan_cache_lookups_total"])
	require.True(t, names["audioflo_test_assigner_assignments_total"])
	require.True(t, names["audioflo_test_assigner_media_units_assigned_total"])
}

func TestPrometheusCollector_Defaults(t *testing.T) {
	m := NewPrometheus(prometheus.NewRegistry(), "")

	require.Equal(t, "audioflo", m.namespace)
}
