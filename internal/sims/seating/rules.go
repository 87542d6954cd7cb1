package seating

import (
	"fmt"
	"strings"

	"lattice-ca/internal/core"
)

// Rule describes how seats react to the seats around them.
type Rule struct {
	Name string
	// Neighbours selects which seats a cell can see.
	Neighbours core.NeighbourFunc[Seat]
	// Tolerance is the number of occupied neighbours that makes an
	// occupied seat empty.
	Tolerance int
}

var (
	// Adjacent looks at the eight touching cells; four occupied neighbours
	// are too many.
	Adjacent = Rule{Name: "adjacent", Neighbours: core.Adjacent8[Seat], Tolerance: 4}
	// LineOfSight looks at the first seat in each direction; five occupied
	// neighbours are too many.
	LineOfSight = Rule{Name: "los", Neighbours: core.LineOfSight(Floor), Tolerance: 5}
)

// RuleByName resolves "adjacent" or "los" (also "line-of-sight").
func RuleByName(name string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "adjacent":
		return Adjacent, nil
	case "los", "line-of-sight", "lineofsight":
		return LineOfSight, nil
	}
	return Rule{}, fmt.Errorf("%w %q", ErrUnknownRule, name)
}

// apply returns the next state of the seat at p.
func (r Rule) apply(g *core.Grid[Seat], p core.Point, s Seat) Seat {
	switch s {
	case Empty:
		for _, n := range r.Neighbours(g, p) {
			if n == Occupied {
				return Empty
			}
		}
		return Occupied
	case Occupied:
		taken := 0
		for _, n := range r.Neighbours(g, p) {
			if n == Occupied {
				taken++
			}
		}
		if taken >= r.Tolerance {
			return Empty
		}
		return Occupied
	default:
		return s
	}
}

// Next computes the following generation of g under r. g is not modified.
func Next(g *core.Grid[Seat], r Rule) *core.Grid[Seat] {
	next := core.NewGrid[Seat](g.W(), g.H())
	g.Each(func(p core.Point, s Seat) {
		next.Set(p, r.apply(g, p, s))
	})
	return next
}

// CountOccupied returns the number of occupied seats in g.
func CountOccupied(g *core.Grid[Seat]) int {
	return g.Count(Occupied)
}
