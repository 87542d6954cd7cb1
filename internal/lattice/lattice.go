package lattice

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"lattice-ca/internal/core"
)

// Lattice is one generation of a sparse N-dimensional automaton.
type Lattice struct {
	dims    int
	rule    Rule
	active  mapset.Set[Point]
	offsets []Point
}

// New returns an empty lattice with the given dimensionality and rule.
func New(dims int, rule Rule) (*Lattice, error) {
	if dims < 1 || dims > MaxDims {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrDims, dims, MaxDims)
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return &Lattice{
		dims:    dims,
		rule:    rule,
		active:  mapset.New[Point](),
		offsets: offsets(dims),
	}, nil
}

// FromGrid seeds a lattice with every cell of g equal to active, placed on
// the plane where all axes beyond the second are zero.
func FromGrid[T core.Cell](g *core.Grid[T], active T, dims int, rule Rule) (*Lattice, error) {
	if dims < 2 {
		return nil, fmt.Errorf("%w: a grid seed needs at least 2 dimensions, got %d", ErrDims, dims)
	}
	l, err := New(dims, rule)
	if err != nil {
		return nil, err
	}
	g.Each(func(p core.Point, v T) {
		if v == active {
			l.active.Put(P(p.X, p.Y))
		}
	})
	return l, nil
}

// Dims returns the dimensionality.
func (l *Lattice) Dims() int { return l.dims }

// Rule returns the update rule.
func (l *Lattice) Rule() Rule { return l.rule }

// Len returns the number of active points.
func (l *Lattice) Len() int { return l.active.Size() }

// Activate marks p active. Coordinates beyond Dims are cleared.
func (l *Lattice) Activate(p Point) {
	l.active.Put(l.clip(p))
}

// IsActive reports whether p is active.
func (l *Lattice) IsActive(p Point) bool {
	return l.active.Has(l.clip(p))
}

// Active returns a copy of the active set.
func (l *Lattice) Active() mapset.Set[Point] {
	out := mapset.New[Point]()
	l.active.Each(func(p Point) {
		out.Put(p)
	})
	return out
}

// Points returns the active points in lexicographic order.
func (l *Lattice) Points() []Point {
	pts := make([]Point, 0, l.active.Size())
	l.active.Each(func(p Point) {
		pts = append(pts, p)
	})
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return pts
}

// Bounds returns the per-axis minimum and maximum over the active points.
// Both start at zero, so the origin is always inside the bounds.
func (l *Lattice) Bounds() (lo, hi Point) {
	l.active.Each(func(p Point) {
		for axis := 0; axis < l.dims; axis++ {
			if p[axis] < lo[axis] {
				lo[axis] = p[axis]
			}
			if p[axis] > hi[axis] {
				hi[axis] = p[axis]
			}
		}
	})
	return lo, hi
}

// Neighbours returns the 3^Dims - 1 points adjacent to p.
func (l *Lattice) Neighbours(p Point) []Point {
	out := make([]Point, len(l.offsets))
	for i, d := range l.offsets {
		out[i] = p.Add(d)
	}
	return out
}

// ActiveNeighbours counts the active points adjacent to p.
func (l *Lattice) ActiveNeighbours(p Point) int {
	n := 0
	for _, d := range l.offsets {
		if l.active.Has(p.Add(d)) {
			n++
		}
	}
	return n
}

// Step computes the next generation. The receiver is left untouched.
func (l *Lattice) Step() *Lattice {
	next := &Lattice{
		dims:    l.dims,
		rule:    l.rule,
		active:  mapset.New[Point](),
		offsets: l.offsets,
	}
	lo, hi := l.Bounds()
	for axis := 0; axis < l.dims; axis++ {
		lo[axis]--
		hi[axis]++
	}
	eachInRegion(lo, hi, l.dims, func(p Point) {
		if l.rule.Next(l.active.Has(p), l.ActiveNeighbours(p)) {
			next.active.Put(p)
		}
	})
	return next
}

// Run advances n generations and returns the last one.
func (l *Lattice) Run(n int) *Lattice {
	cur := l
	for i := 0; i < n; i++ {
		cur = cur.Step()
	}
	return cur
}

// History advances n generations and returns the active count after each one,
// starting with the current generation.
func (l *Lattice) History(n int) (*Lattice, []int) {
	counts := make([]int, 0, n+1)
	counts = append(counts, l.Len())
	cur := l
	for i := 0; i < n; i++ {
		cur = cur.Step()
		counts = append(counts, cur.Len())
	}
	return cur, counts
}

func (l *Lattice) clip(p Point) Point {
	for axis := l.dims; axis < MaxDims; axis++ {
		p[axis] = 0
	}
	return p
}

// eachInRegion visits every point of the inclusive box [lo, hi] over the
// first dims axes, last axis fastest.
func eachInRegion(lo, hi Point, dims int, fn func(Point)) {
	p := lo
	for {
		fn(p)
		axis := dims - 1
		for ; axis >= 0; axis-- {
			if p[axis] < hi[axis] {
				p[axis]++
				break
			}
			p[axis] = lo[axis]
		}
		if axis < 0 {
			return
		}
	}
}
