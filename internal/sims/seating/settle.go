package seating

import (
	"fmt"

	"lattice-ca/internal/core"
)

// Result is the outcome of Settle.
type Result struct {
	// Occupied is the occupied seat count at the fixed point.
	Occupied int
	// Generations counts the generations computed, including the final one
	// that confirmed the fixed point.
	Generations int
	// Final is the last generation computed.
	Final *core.Grid[Seat]
	// History holds the occupied count of every generation, starting with
	// the input layout.
	History []int
}

type settleOptions struct {
	maxGenerations int
	observer       func(gen, occupied int)
}

// Option configures Settle.
type Option func(*settleOptions)

// WithMaxGenerations stops Settle with ErrNoFixedPoint after n generations.
// Zero or negative means no limit.
func WithMaxGenerations(n int) Option {
	return func(o *settleOptions) { o.maxGenerations = n }
}

// WithObserver calls fn with the occupied count of every generation,
// starting with generation 0 for the input layout.
func WithObserver(fn func(gen, occupied int)) Option {
	return func(o *settleOptions) { o.observer = fn }
}

// Settle applies r until the occupied seat count stops changing between two
// successive generations.
func Settle(g *core.Grid[Seat], r Rule, opts ...Option) (Result, error) {
	var o settleOptions
	for _, opt := range opts {
		opt(&o)
	}
	notify := func(gen, occupied int) {
		if o.observer != nil {
			o.observer(gen, occupied)
		}
	}

	state := g
	occupied := CountOccupied(g)
	res := Result{History: []int{occupied}}
	notify(0, occupied)
	for {
		if o.maxGenerations > 0 && res.Generations >= o.maxGenerations {
			res.Occupied = occupied
			res.Final = state
			return res, fmt.Errorf("%w (%d generations, rule %s)", ErrNoFixedPoint, res.Generations, r.Name)
		}
		state = Next(state, r)
		res.Generations++
		cur := CountOccupied(state)
		res.History = append(res.History, cur)
		notify(res.Generations, cur)
		if cur == occupied {
			break
		}
		occupied = cur
	}
	res.Occupied = occupied
	res.Final = state
	return res, nil
}
