package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG seeds an RNG from the wall clock. Use it when a run does not need
// to be reproducible.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float64 returns a uniformly distributed value in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
