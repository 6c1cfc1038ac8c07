// Package tsp — nearest-neighbor construction heuristics.
//
// Two variants are provided:
//   - NearestNeighborTour: O(n²) brute force directly over the distance
//     matrix. Used internally (branch_bound's warm start) where only a
//     matrix, not raw coordinates, is available.
//   - NearestNeighborTourKD: the specification's named solver, accelerated
//     by a k-d tree over the raw coordinates.
//
// Both are deterministic: ties are broken by ascending city index, and
// neither reads the system clock or an RNG.
package tsp

import "github.com/tsproute/tsp/geom"

// NearestNeighborTour builds a tour greedily over m: starting at start,
// repeatedly hop to the nearest unvisited city until none remain.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighborTour(m *geom.Matrix, start int) (Tour, error) {
	n := m.N()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	visited := make([]bool, n)
	tour := make(Tour, n)
	cur := start
	visited[cur] = true
	tour[0] = cur

	for step := 1; step < n; step++ {
		best, bestDist := -1, 0.0
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			d := m.Unsafe(cur, v)
			if best == -1 || d < bestDist {
				best, bestDist = v, d
			}
		}
		if best == -1 {
			return nil, ErrDimensionMismatch
		}
		visited[best] = true
		tour[step] = best
		cur = best
	}

	return tour, nil
}

// NearestNeighborTourKD builds a tour greedily over cities using a k-d tree
// to answer each "closest unvisited city" query, starting at start.
//
// Complexity: O(n log n) average, O(n) space.
func NearestNeighborTourKD(cities geom.CoordinateSet, start int) (Tour, error) {
	n := len(cities)
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	tree := NewKDTree(cities)
	visited := make([]bool, n)
	tour := make(Tour, n)
	cur := start
	visited[cur] = true
	tour[0] = cur

	for step := 1; step < n; step++ {
		next, ok := tree.NearestUnvisited(cur, visited)
		if !ok {
			return nil, ErrDimensionMismatch
		}
		visited[next] = true
		tour[step] = next
		cur = next
	}

	return tour, nil
}
