package seating

import "errors"

var (
	// ErrNoFixedPoint indicates Settle hit its generation limit.
	ErrNoFixedPoint = errors.New("seating: no fixed point within generation limit")
	// ErrUnknownRule indicates a rule name that is not registered.
	ErrUnknownRule = errors.New("seating: unknown rule")
)
