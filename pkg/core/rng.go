package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewStreamRNG(seed, 0)
}

// NewStreamRNG creates a deterministic RNG for one of several independent
// streams sharing a seed.
func NewStreamRNG(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// Bernoulli reports true with probability p. Values of p outside [0, 1]
// saturate.
func (r *RNG) Bernoulli(p float64) bool {
	return r.r.Float64() < p
}
