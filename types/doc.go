// Package types defines the core data model and interfaces for the audioflo
// library.
//
// This package contains:
//   - Core types: NarrativeUnit, Partition, PartitionPlan, MediaUnit, MediaAssignment
//   - Strategy interfaces: PlanStrategy, AssignStrategy
//   - Observability interfaces: Logger, MetricsCollector
//   - Sentinel errors for type-safe error checking
//
// The root audioflo package re-exports these definitions via type aliases,
// allowing internal packages to depend on types without importing the root
// package (avoiding import cycles) while users keep the convenience of
// audioflo.Partition, audioflo.Logger, etc.
package types
