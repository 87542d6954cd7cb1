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

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Fill builds a w*h grid where each cell is drawn by pick.
func Fill[T Cell](r *RNG, w, h int, pick func(r *RNG) T) *Grid[T] {
	g := NewGrid[T](w, h)
	for i := range g.cells {
		g.cells[i] = pick(r)
	}
	return g
}
