package audioflo

import (
	"fmt"

	"github.com/luckydeignan/audioFloInterpolationGenerator/assigner"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/hash"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/logger"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/metrics"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/plancache"
	"github.com/luckydeignan/audioFloInterpolationGenerator/planner"
	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// Aligner computes partition plans and media assignments for
// (story, transition) invocations.
//
// Aligner is the main entry point of the library. Each Align call is an
// independent, synchronous computation over its request; the only shared
// state is an optional plan cache keyed by the exact (weights, partition
// count) input.
//
// Thread Safety:
//   - All methods are safe for concurrent use
//   - Strategies must be stateless (the built-ins are)
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type NarrativeAligner interface {
//	    Align(req audioflo.AlignRequest) (audioflo.Alignment, error)
//	}
type Aligner struct {
	planner  PlanStrategy
	assigner AssignStrategy
	logger   Logger
	metrics  MetricsCollector
	cache    *plancache.Cache
}

// AlignRequest carries the inputs for one (story, transition) invocation.
//
// All values are supplied explicitly by the caller; the library never
// inspects a filesystem or derives counts on its own.
type AlignRequest struct {
	// Story identifies the narrative being aligned.
	Story string

	// Transition identifies the cluster transition (e.g. "1to2").
	Transition string

	// Units is the ordered sentence sequence with positive word-count
	// weights and strictly ascending IDs.
	Units []types.NarrativeUnit

	// MediaCount is the number of media artifacts available for this
	// transition, pre-sorted by the caller into a canonical order.
	MediaCount int

	// PartitionCount is the requested partition count K. When zero, it
	// defaults to MediaCount so every media unit has a potential home; the
	// planner clamps it to the unit count either way.
	PartitionCount int
}

// Alignment is the result of one Align invocation.
type Alignment struct {
	// Plan groups the narrative units into contiguous partitions.
	Plan types.PartitionPlan

	// Assignment distributes the media pool across the plan's partitions.
	Assignment types.MediaAssignment

	// Fingerprint is a stable 64-bit digest of the plan structure, useful
	// for change detection and determinism checks.
	Fingerprint uint64
}

// NewAligner creates an Aligner with the provided options.
//
// Defaults: planner.NewMinimax(), assigner.NewFairShare(), no-op logger,
// no-op metrics, plan cache enabled.
//
// Parameters:
//   - opts: Functional options (WithPlanner, WithAssigner, WithLogger,
//     WithMetrics, WithoutPlanCache)
//
// Returns:
//   - *Aligner: Configured aligner
//   - error: ErrPlannerRequired or ErrAssignerRequired when an option
//     explicitly sets a nil strategy
func NewAligner(opts ...Option) (*Aligner, error) {
	options := alignerOptions{
		planner:  planner.NewMinimax(),
		assigner: assigner.NewFairShare(),
		logger:   logger.NewNop(),
		metrics:  metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.planner == nil {
		return nil, ErrPlannerRequired
	}
	if options.assigner == nil {
		return nil, ErrAssignerRequired
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	a := &Aligner{
		planner:  options.planner,
		assigner: options.assigner,
		logger:   options.logger,
		metrics:  options.metrics,
	}
	if !options.disableCache {
		a.cache = plancache.New()
	}

	return a, nil
}

// Align computes the partition plan and media assignment for one request.
//
// The plan minimizes the maximum partition weight over all contiguous
// K'-way splits; the assignment gives every partition floor(M/K') media
// units with the remainder going to the heaviest partitions. Both halves
// are deterministic, so repeated calls with identical requests return
// bit-identical results.
//
// Parameters:
//   - req: Alignment request; see AlignRequest field docs
//
// Returns:
//   - Alignment: Plan, assignment, and plan fingerprint
//   - error: ErrInvalidInput for bad units or counts, ErrInsufficientMedia
//     when MediaCount < the effective partition count
func (a *Aligner) Align(req AlignRequest) (Alignment, error) {
	k := req.PartitionCount
	if k == 0 {
		k = req.MediaCount
	}

	plan, err := a.planFor(req, k)
	if err != nil {
		return Alignment{}, fmt.Errorf("plan %s/%s: %w", req.Story, req.Transition, err)
	}
	plan.Story = req.Story
	plan.Transition = req.Transition

	assignment, err := a.assigner.Distribute(plan, req.MediaCount)
	if err != nil {
		return Alignment{}, fmt.Errorf("assign %s/%s: %w", req.Story, req.Transition, err)
	}

	fingerprint := hash.PlanFingerprint(plan)
	a.metrics.RecordPlan(req.Transition, plan.Len(), plan.MaxWeight())
	a.metrics.RecordAssignment(req.Transition, assignment.Total, assignment.Total%plan.Len())
	a.logger.Debug("alignment computed",
		"story", req.Story,
		"transition", req.Transition,
		"partitions", plan.Len(),
		"bottleneck", plan.MaxWeight(),
		"media", assignment.Total,
		"fingerprint", fingerprint,
	)

	return Alignment{Plan: plan, Assignment: assignment, Fingerprint: fingerprint}, nil
}

// Plan computes only the partition plan for a unit sequence.
//
// Convenience wrapper over the configured plan strategy; the result carries
// no story or transition labels.
//
// Parameters:
//   - units: Ordered narrative units with positive weights
//   - k: Requested partition count
//
// Returns:
//   - types.PartitionPlan: Plan with min(k, len(units)) partitions
//   - error: ErrInvalidInput from validation or the strategy
func (a *Aligner) Plan(units []types.NarrativeUnit, k int) (types.PartitionPlan, error) {
	return planner.Plan(a.planner, units, k)
}

// Assign computes only the media assignment for an existing plan.
//
// Parameters:
//   - plan: Partition plan to distribute media across
//   - m: Number of available media units
//
// Returns:
//   - types.MediaAssignment: Slots in partition-index order
//   - error: ErrInvalidInput or ErrInsufficientMedia
func (a *Aligner) Assign(plan types.PartitionPlan, m int) (types.MediaAssignment, error) {
	return a.assigner.Distribute(plan, m)
}

// planFor returns the plan for (units, k), consulting the cache when enabled.
func (a *Aligner) planFor(req AlignRequest, k int) (types.PartitionPlan, error) {
	if a.cache == nil {
		return planner.Plan(a.planner, req.Units, k)
	}

	key := plancache.Key(types.Weights(req.Units), k)
	if cached, ok := a.cache.Get(key); ok {
		a.metrics.RecordPlanCacheLookup(true)
		// Cached plans share boundary structure but not unit text; rebuild
		// partitions over the request's own units.
		return rebindPlan(cached, req.Units), nil
	}
	a.metrics.RecordPlanCacheLookup(false)

	plan, err := planner.Plan(a.planner, req.Units, k)
	if err != nil {
		return types.PartitionPlan{}, err
	}
	a.cache.Put(key, plan)

	return plan, nil
}

// rebindPlan rebuilds a cached plan's partitions over the request's unit
// slice so texts and IDs come from the current invocation.
func rebindPlan(cached types.PartitionPlan, units []types.NarrativeUnit) types.PartitionPlan {
	plan := types.PartitionPlan{
		Partitions: make([]types.Partition, len(cached.Partitions)),
	}
	start := 0
	for i, p := range cached.Partitions {
		members := units[start : start+len(p.Units)]
		plan.Partitions[i] = types.Partition{
			Index:  i + 1,
			Units:  members,
			Weight: types.TotalWeight(members),
		}
		start += len(p.Units)
	}

	return plan
}
