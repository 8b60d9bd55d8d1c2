// Package assigner provides built-in assign strategy implementations.
//
// An assign strategy distributes a pool of media units across the partitions
// of a plan. The package ships one strategy:
//
//   - FairShare: every partition receives floor(m/k) units and the remainder
//     goes to the heaviest partitions, one extra unit each
//
// Custom strategies can be implemented by satisfying the
// types.AssignStrategy interface; they must be deterministic and must never
// leave a partition without media.
package assigner
