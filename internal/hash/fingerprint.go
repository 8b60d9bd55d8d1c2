// Package hash provides stable fingerprints for plans and weight sequences.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// WeightsKey encodes a (weights, k) pair into an exact, collision-free cache
// key. The encoding is the little-endian k followed by the length and each
// weight, so distinct inputs always map to distinct keys.
//
// Parameters:
//   - weights: Ordered weight sequence
//   - k: Requested partition count
//
// Returns:
//   - string: Binary key suitable for map lookup
func WeightsKey(weights []int, k int) string {
	buf := make([]byte, 0, 8*(len(weights)+2))
	var scratch [8]byte

	binary.LittleEndian.PutUint64(scratch[:], uint64(int64(k)))
	buf = append(buf, scratch[:]...)
	binary.LittleEndian.PutUint64(scratch[:], uint64(len(weights)))
	buf = append(buf, scratch[:]...)
	for _, w := range weights {
		binary.LittleEndian.PutUint64(scratch[:], uint64(int64(w)))
		buf = append(buf, scratch[:]...)
	}

	return string(buf)
}

// PlanFingerprint computes a stable 64-bit fingerprint of a plan's structure.
//
// The fingerprint covers, per partition, the index, the first and last member
// IDs, and the aggregate weight. Two invocations over identical inputs yield
// identical fingerprints, which is how determinism is observed in logs and
// tests without diffing whole plans.
//
// Parameters:
//   - plan: Plan to fingerprint
//
// Returns:
//   - uint64: xxh3 hash of the plan structure
func PlanFingerprint(plan types.PartitionPlan) uint64 {
	buf := make([]byte, 0, 32*len(plan.Partitions))
	var scratch [8]byte

	for _, p := range plan.Partitions {
		first, last := p.IDRange()
		for _, v := range [4]int{p.Index, first, last, p.Weight} {
			binary.LittleEndian.PutUint64(scratch[:], uint64(int64(v)))
			buf = append(buf, scratch[:]...)
		}
	}

	return xxh3.Hash(buf)
}
