// Package lattice runs Life-like cellular automata on a sparse, unbounded
// N-dimensional lattice.
//
// Only active points are stored. Each generation computes the bounding box of
// the active set (anchored at the origin), grows it by one cell on every axis
// and evaluates every point of that region against the Rule. Step never
// mutates its receiver; it returns the next generation as a new Lattice.
//
// Dimensionality is fixed per Lattice and limited to MaxDims. Points always
// carry MaxDims coordinates; axes at or beyond Dims stay zero.
package lattice
