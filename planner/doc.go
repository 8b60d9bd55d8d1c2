// Package planner provides built-in plan strategy implementations.
//
// A plan strategy splits an ordered sequence of weighted narrative units
// into contiguous, non-empty groups. The package ships one strategy:
//
//   - Minimax: bottleneck linear partition by dynamic programming, the exact
//     optimum for "make the heaviest group as light as possible"
//
// Custom strategies can be implemented by satisfying the types.PlanStrategy
// interface; they must be deterministic and stateless.
package planner
