// Package audioflo aligns a narrative with a fixed pool of generated media
// artifacts.
//
// Given an ordered sequence of weighted sentences and a target partition
// count, the library splits the sequence into contiguous groups of
// near-equal total word weight (a minimax bottleneck partition solved by
// dynamic programming), then distributes the media pool across those groups
// proportionally to their weight with deterministic remainder handling.
//
// # Quick Start
//
// Basic usage with default strategies:
//
//	import "github.com/luckydeignan/audioFloInterpolationGenerator"
//
//	aligner, err := audioflo.NewAligner()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := aligner.Align(audioflo.AlignRequest{
//	    Story:      "carnival",
//	    Transition: "1to2",
//	    Units:      units,      // sentences with word-count weights
//	    MediaCount: 7,          // sorted media artifacts available
//	    PartitionCount: 3,
//	})
//
// # Key Properties
//
//   - Optimal grouping: the maximum partition weight is provably minimal
//     over all contiguous splits
//   - Deterministic: identical inputs always produce bit-identical plans
//     and assignments, including fixed tie-break rules
//   - Pure: no I/O, no network, no shared mutable state; independent
//     invocations can run in parallel
//
// # Architecture
//
// The Aligner wires a PlanStrategy (planner.Minimax by default) to an
// AssignStrategy (assigner.FairShare by default), with an optional shared
// plan cache for repeated invocations over the same weights:
//
//	units + K -> PlanStrategy -> PartitionPlan -> AssignStrategy + M -> MediaAssignment
//
// # Advanced Usage
//
// Custom strategies and observability via options:
//
//	aligner, err := audioflo.NewAligner(
//	    audioflo.WithPlanner(planner.NewMinimax()),
//	    audioflo.WithAssigner(assigner.NewFairShare()),
//	    audioflo.WithLogger(myLogger),
//	    audioflo.WithMetrics(myCollector),
//	)
//
// See the examples/ directory for complete working examples and cmd/audioflo
// for the batch orchestrator that drives the library from CSV inputs and
// MIDI interpolation directories.
package audioflo
