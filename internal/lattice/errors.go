package lattice

import "errors"

var (
	// ErrDims indicates an unsupported dimensionality.
	ErrDims = errors.New("lattice: dimensions out of range")
	// ErrRule indicates a malformed rule string or neighbour count.
	ErrRule = errors.New("lattice: invalid rule")
)
