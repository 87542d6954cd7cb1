package core

// Offsets4 lists the orthogonal neighbour offsets.
var Offsets4 = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Offsets8 lists the orthogonal and diagonal neighbour offsets.
var Offsets8 = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// NeighbourFunc enumerates the neighbours of c on g.
type NeighbourFunc[T Cell] func(g *Grid[T], c Coord) []T

// step moves (x, y) by (dx, dy). It refuses to step below zero on either axis.
func step(x, y, dx, dy int) (int, int, bool) {
	if (x == 0 && dx < 0) || (y == 0 && dy < 0) {
		return 0, 0, false
	}
	return x + dx, y + dy, true
}

// Neighbour returns the cell at c shifted by (dx, dy), if it exists.
func (g *Grid[T]) Neighbour(c Coord, dx, dy int) (T, bool) {
	x, y := c.XY()
	nx, ny, ok := step(x, y, dx, dy)
	if !ok {
		var zero T
		return zero, false
	}
	return g.Get(Point{X: nx, Y: ny})
}

// Neighbours4 returns the in-bounds orthogonal neighbours of c in Offsets4
// order.
func (g *Grid[T]) Neighbours4(c Coord) []T {
	out := make([]T, 0, len(Offsets4))
	for _, d := range Offsets4 {
		if v, ok := g.Neighbour(c, d[0], d[1]); ok {
			out = append(out, v)
		}
	}
	return out
}

// Neighbours8 returns the in-bounds neighbours of c in Offsets8 order.
func (g *Grid[T]) Neighbours8(c Coord) []T {
	out := make([]T, 0, len(Offsets8))
	for _, d := range Offsets8 {
		if v, ok := g.Neighbour(c, d[0], d[1]); ok {
			out = append(out, v)
		}
	}
	return out
}

// FirstVisible walks from c in direction (dx, dy), skipping background cells,
// and returns the first other cell. It reports false once the walk leaves the
// grid.
func (g *Grid[T]) FirstVisible(c Coord, dx, dy int, background T) (T, bool) {
	var zero T
	if dx == 0 && dy == 0 {
		return zero, false
	}
	x, y := c.XY()
	for {
		var ok bool
		x, y, ok = step(x, y, dx, dy)
		if !ok {
			return zero, false
		}
		v, ok := g.Get(Point{X: x, Y: y})
		if !ok {
			return zero, false
		}
		if v != background {
			return v, true
		}
	}
}

// Visible returns the first non-background cell seen from c in each of the
// eight directions.
func (g *Grid[T]) Visible(c Coord, background T) []T {
	out := make([]T, 0, len(Offsets8))
	for _, d := range Offsets8 {
		if v, ok := g.FirstVisible(c, d[0], d[1], background); ok {
			out = append(out, v)
		}
	}
	return out
}

// Adjacent8 is Neighbours8 as a NeighbourFunc.
func Adjacent8[T Cell](g *Grid[T], c Coord) []T { return g.Neighbours8(c) }

// Adjacent4 is Neighbours4 as a NeighbourFunc.
func Adjacent4[T Cell](g *Grid[T], c Coord) []T { return g.Neighbours4(c) }

// LineOfSight returns a NeighbourFunc that looks past background cells.
func LineOfSight[T Cell](background T) NeighbourFunc[T] {
	return func(g *Grid[T], c Coord) []T { return g.Visible(c, background) }
}
