package core

import "fmt"

type tile uint8

const (
	tileFloor tile = iota
	tileWall
	tileSeat
)

func (t tile) Symbol() byte {
	switch t {
	case tileWall:
		return '#'
	case tileSeat:
		return 'L'
	default:
		return '.'
	}
}

func decodeTile(b byte) (tile, error) {
	switch b {
	case '.':
		return tileFloor, nil
	case '#':
		return tileWall, nil
	case 'L':
		return tileSeat, nil
	}
	return 0, fmt.Errorf("no tile for %q", b)
}

// cellID stores the row-major index of the cell it lives in.
type cellID int

func (cellID) Symbol() byte { return '?' }

func indexedGrid(w, h int) *Grid[cellID] {
	g := NewGrid[cellID](w, h)
	for i := range g.Cells() {
		g.Cells()[i] = cellID(i)
	}
	return g
}
