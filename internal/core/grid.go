package core

import "strings"

// Cell is a single grid value. The zero value of a Cell type is its background
// variant; Symbol returns the byte used to display it.
type Cell interface {
	comparable
	Symbol() byte
}

// Coord is anything that can report an (x, y) grid position.
type Coord interface {
	XY() (x, y int)
}

// Point is the dedicated coordinate value.
type Point struct {
	X, Y int
}

// XY implements Coord.
func (p Point) XY() (int, int) { return p.X, p.Y }

// Pair adapts a raw (x, y) pair to Coord.
type Pair [2]int

// XY implements Coord.
func (p Pair) XY() (int, int) { return p[0], p[1] }

// Grid stores a dense, bounded 2D grid of cells in row-major order.
// len(cells) == w*h always holds.
type Grid[T Cell] struct {
	w, h  int
	cells []T
}

// NewGrid allocates a w*h grid filled with the background value.
func NewGrid[T Cell](w, h int) *Grid[T] {
	var zero T
	return NewGridWith(w, h, zero)
}

// NewGridWith allocates a w*h grid filled with v.
func NewGridWith[T Cell](w, h int, v T) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]T, w*h)
	var zero T
	if v != zero {
		for i := range cells {
			cells[i] = v
		}
	}
	return &Grid[T]{w: w, h: h, cells: cells}
}

// W returns the grid width.
func (g *Grid[T]) W() int { return g.w }

// H returns the grid height.
func (g *Grid[T]) H() int { return g.h }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice. Callers must not resize it.
func (g *Grid[T]) Cells() []T { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.w + x }

// Coordinate converts a row-major index back to a Point.
func (g *Grid[T]) Coordinate(i int) Point {
	if g.w == 0 {
		return Point{}
	}
	return Point{X: i % g.w, Y: i / g.w}
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Get returns the cell at c. The boolean is false when c is out of bounds.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	x, y := c.XY()
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[g.Index(x, y)], true
}

// Set overwrites the cell at c. Out of bounds writes are ignored.
func (g *Grid[T]) Set(c Coord, v T) {
	x, y := c.XY()
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = v
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{w: g.w, h: g.h, cells: cells}
}

// Count returns how many cells equal v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Point, v T)) {
	for i, c := range g.cells {
		fn(g.Coordinate(i), c)
	}
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line using each cell's symbol.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for _, c := range g.cells[y*g.w : (y+1)*g.w] {
			sb.WriteByte(c.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
