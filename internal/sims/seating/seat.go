package seating

import (
	"fmt"

	"lattice-ca/internal/core"
)

// Seat enumerates the cell values of a waiting-room layout.
type Seat uint8

const (
	// Floor is never occupied and never changes.
	Floor Seat = iota
	// Empty is a free seat.
	Empty
	// Occupied is a taken seat.
	Occupied
)

// Symbol implements core.Cell.
func (s Seat) Symbol() byte {
	switch s {
	case Empty:
		return 'L'
	case Occupied:
		return '#'
	default:
		return '.'
	}
}

func (s Seat) String() string {
	switch s {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	default:
		return "floor"
	}
}

// DecodeSeat maps an input byte to a Seat.
func DecodeSeat(b byte) (Seat, error) {
	switch b {
	case '.':
		return Floor, nil
	case 'L':
		return Empty, nil
	case '#':
		return Occupied, nil
	}
	return Floor, fmt.Errorf("seating: %w %q", core.ErrUnknownSymbol, b)
}
