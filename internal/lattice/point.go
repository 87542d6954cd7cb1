package lattice

import (
	"strconv"
	"strings"
)

// MaxDims is the highest supported dimensionality.
const MaxDims = 6

// Point is a lattice coordinate. Unused axes are zero.
type Point [MaxDims]int

// P builds a Point from up to MaxDims coordinates.
func P(coords ...int) Point {
	var p Point
	copy(p[:], coords)
	return p
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	for i := range p {
		p[i] += d[i]
	}
	return p
}

// Less orders points lexicographically by axis.
func (p Point) Less(o Point) bool {
	for i := range p {
		if p[i] != o[i] {
			return p[i] < o[i]
		}
	}
	return false
}

// Format renders the first dims coordinates as "(x,y,z)".
func (p Point) Format(dims int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < dims && i < MaxDims; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p[i]))
	}
	sb.WriteByte(')')
	return sb.String()
}

// offsets returns every -1/0/+1 combination over the first dims axes except
// the all-zero one. There are 3^dims - 1 of them.
func offsets(dims int) []Point {
	total := 1
	for i := 0; i < dims; i++ {
		total *= 3
	}
	out := make([]Point, 0, total-1)
	for n := 0; n < total; n++ {
		var d Point
		zero := true
		v := n
		for axis := 0; axis < dims; axis++ {
			d[axis] = v%3 - 1
			v /= 3
			if d[axis] != 0 {
				zero = false
			}
		}
		if !zero {
			out = append(out, d)
		}
	}
	return out
}
