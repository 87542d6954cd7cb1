package lattice

import "lattice-ca/internal/core"

// Plane projects the 2D slice of l through at onto a grid. Only axes from the
// third onwards are read from at. The grid spans the x/y bounds of the whole
// lattice, so every slice of one generation shares the same shape.
func Plane[T core.Cell](l *Lattice, at Point, active T) (*core.Grid[T], core.Offset) {
	lo, hi := l.Bounds()
	var background T
	cells := map[core.SignedPoint]T{
		{X: lo[0], Y: lo[1]}: background,
		{X: hi[0], Y: hi[1]}: background,
	}
	l.active.Each(func(p Point) {
		for axis := 2; axis < l.dims; axis++ {
			if p[axis] != at[axis] {
				return
			}
		}
		cells[core.SignedPoint{X: p[0], Y: p[1]}] = active
	})
	return core.FromMap(cells)
}
