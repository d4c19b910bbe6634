package flappy

import "math/rand"

// RNG is the source of randomness for pipe gaps and clouds.
// *rand.Rand satisfies it; tests may substitute a scripted source.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// newRNG returns a deterministic source for the given seed.
func newRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// intRange returns a uniformly distributed integer in [lo, hi].
func intRange(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// floatRange returns a uniformly distributed float in [lo, hi).
func floatRange(rng RNG, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
