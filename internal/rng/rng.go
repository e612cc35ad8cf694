// internal/rng/rng.go
//
// Deterministic, string-seeded pseudo-random generator.
// Responsibilities:
//   - Hash an opaque seed string to a fixed-width integer state (FNV-1a 64).
//   - Iterate an xorshift64* generator over that state.
//   - Expose floats in [0,1), bounded ints, and a Fisher-Yates shuffle.
//
// The same seed produces a bit-identical stream on every platform: state
// transitions are pure uint64 arithmetic and the float conversion divides
// the top 53 bits by 2^53, both exact in IEEE 754. Not cryptographic;
// reproducibility is the only requirement.

package rng

import "hash/fnv"

// RNG is a deterministic generator seeded from a string.
// It is not safe for concurrent use; give each generation run its own.
type RNG struct {
	state uint64
}

// New returns a generator seeded from the given string.
// Equal seeds yield equal streams.
func New(seed string) *RNG {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	s := h.Sum64()
	if s == 0 {
		// xorshift has a fixed point at zero.
		s = 0x9e3779b97f4a7c15
	}
	return &RNG{state: s}
}

// Next returns the next float in [0, 1).
func (r *RNG) Next() float64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return float64((x*0x2545f4914f6cdd1d)>>11) / (1 << 53)
}

// IntN returns an int in [0, n) drawn from Next.
// Returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() * float64(n))
}

// Shuffle permutes s in place with a Fisher-Yates pass consuming
// successive draws, and returns s.
func Shuffle[T any](r *RNG, s []T) []T {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
	return s
}
