// Package xrand provides the small deterministic random source used by the
// practice exercises.
//
// The generator is a plain xorshift64. The chapters teach against its output
// (generated expressions, shuffled answer choices), so exercises must be
// reproducible from a seed; math/rand's generator would produce different
// sequences and break pinned-seed tests.
package xrand

import "time"

// Rand is a xorshift64 generator. Not safe for concurrent use; the session
// is single-threaded and each practice widget owns its own Rand.
type Rand struct {
	state uint64
}

// New returns a generator seeded with seed. A zero seed would lock xorshift
// at zero forever, so it is clamped to 1.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// SeedFromTime returns a seed derived from the wall clock.
func SeedFromTime() uint64 {
	ns := time.Now().UnixNano()
	if ns <= 0 {
		return 1
	}
	return uint64(ns)
}

// Uint32 advances the generator and returns the upper 32 bits of the state.
func (r *Rand) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return uint32(x >> 32)
}

// IntRange returns a value in [min, max], inclusive on both ends.
// min must not exceed max.
func (r *Rand) IntRange(min, max int64) int64 {
	span := uint64(max - min + 1)
	value := uint64(r.Uint32()) % span
	return min + int64(value)
}

// Shuffle permutes n elements using the swap function, drawing swap targets
// from the generator. n <= 1 is a no-op.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	for i := n - 1; i >= 1; i-- {
		j := int(r.IntRange(0, int64(i)))
		swap(i, j)
	}
}
