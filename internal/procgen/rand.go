// Package procgen generates the brain geometry, its textures, and the
// decorative veins, pathways and particle fields around it.
package procgen

import (
	"math/rand"
	"time"
)

// Rand is the random source every generator draws from.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a source seeded with seed. A zero seed means a
// time-based seed, so every run looks different.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// jitter returns a uniform value in [-amp, amp).
func jitter(r Rand, amp float64) float64 {
	return (r.Float64() - 0.5) * 2 * amp
}

// intBetween returns a uniform integer in [lo, lo+span).
func intBetween(r Rand, lo, span int) int {
	return lo + r.Intn(span)
}
