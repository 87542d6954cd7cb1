// Package cubes drives sparse lattice automata seeded from a 2D pattern.
package cubes

import (
	"fmt"

	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
)

// Cube is the state of one seed cell.
type Cube uint8

const (
	// Inactive is the background state.
	Inactive Cube = iota
	// Active marks a live cube.
	Active
)

// Symbol implements core.Cell.
func (c Cube) Symbol() byte {
	if c == Active {
		return '#'
	}
	return '.'
}

// DecodeCube maps '#' to Active and '.' to Inactive.
func DecodeCube(b byte) (Cube, error) {
	switch b {
	case '.':
		return Inactive, nil
	case '#':
		return Active, nil
	}
	return Inactive, fmt.Errorf("cubes: %w %q", core.ErrUnknownSymbol, b)
}

// Seed builds a lattice from a seed pattern.
func Seed(g *core.Grid[Cube], dims int, rule lattice.Rule) (*lattice.Lattice, error) {
	return lattice.FromGrid(g, Active, dims, rule)
}

// Boot parses text into a lattice and runs it for the given number of
// generations, returning the active count after each one.
func Boot(text string, dims, generations int, rule lattice.Rule) (*lattice.Lattice, []int, error) {
	g, err := core.Parse(text, DecodeCube)
	if err != nil {
		return nil, nil, err
	}
	l, err := Seed(g, dims, rule)
	if err != nil {
		return nil, nil, err
	}
	final, counts := l.History(generations)
	return final, counts, nil
}
