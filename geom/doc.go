// Package geom provides the 2-D coordinate and distance-matrix primitives
// shared by every solver in the tsp package: an immutable set of cities and
// the dense, symmetric matrix of pairwise Euclidean distances built from it.
//
// Design goals, in the spirit of the matrix package this was grounded on:
//   - Determinism: one O(n²) pass builds the matrix; no hidden state.
//   - Allocation discipline: a single flat []float64 backs the matrix.
//   - Strict sentinels: malformed input never panics, only returns an error.
//
// Deviation from TSPLIB: EUC_2D rounds each distance to the nearest integer
// before use. This package never rounds — it keeps raw IEEE-754 double
// precision throughout, so that cost comparisons inside local search (delta
// checks, Metropolis acceptance, tabu aspiration) stay numerically stable
// across solvers. A future revision may add an optional rounding mode.
package geom
