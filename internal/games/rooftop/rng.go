package rooftop

import "math/rand"

// rng wraps a seeded math/rand source with the helpers generation needs.
// The world owns exactly one; platforms receive style seeds from it at
// spawn so rendering never draws from a live random source.
type rng struct {
	src *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{src: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform value in [min, max). Returns min when the
// interval is empty or inverted.
func (r *rng) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.src.Float64()*(max-min)
}

// Uint64 returns a raw 64-bit value, used for per-platform style seeds.
func (r *rng) Uint64() uint64 {
	return r.src.Uint64()
}
