package core

// SignedPoint is a coordinate that may be negative, used as the key of sparse
// cell maps.
type SignedPoint struct {
	X, Y int
}

// Offset shifts SignedPoints into non-negative grid space.
type Offset struct {
	DX, DY int
}

// Apply returns the grid coordinate for p.
func (o Offset) Apply(p SignedPoint) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// FromMap builds the smallest grid that holds every key of m together with the
// origin. Cells not present in m hold the background value. The returned
// Offset maps keys of m to grid coordinates.
func FromMap[T Cell](m map[SignedPoint]T) (*Grid[T], Offset) {
	minX, maxX, minY, maxY := 0, 0, 0, 0
	for p := range m {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	off := Offset{DX: -minX, DY: -minY}
	g := NewGrid[T](maxX-minX+1, maxY-minY+1)
	for p, v := range m {
		g.Set(off.Apply(p), v)
	}
	return g, off
}
