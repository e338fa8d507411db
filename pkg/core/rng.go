package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p. Values outside [0, 1] saturate.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// RandomCells returns n cells where each is alive with the given density.
// The same seed always yields the same cells.
func RandomCells(seed int64, n int, density float64) []bool {
	if n <= 0 {
		return nil
	}
	rng := NewRNG(seed)
	cells := make([]bool, n)
	for i := range cells {
		cells[i] = rng.Chance(density)
	}
	return cells
}
