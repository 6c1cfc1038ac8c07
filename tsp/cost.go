// Package tsp — cost utilities shared by every solver.
//
// This file provides small, allocation-conscious helpers to compute the
// total length of an open Hamiltonian tour (with an implicit closing edge
// from the last city back to the first) over a geom.Matrix.
//
// Design:
//   - Defensive checks (Inf/NaN/negative) even though geom.NewMatrix already
//     rejects non-finite distances at construction time.
//   - Stable summation: the total is rounded to 1e-9 to avoid cross-platform
//     floating-point drift between otherwise-equal tours.
//
// Complexity: O(n) time, O(1) extra space for a tour of length n.
package tsp

import (
	"math"

	"github.com/tsproute/tsp/geom"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the n edges of a closed cycle over tour (the n-1 consecutive
// pairs plus the implicit wraparound edge tour[n-1]→tour[0]).
//
// Complexity: O(n).
func TourCost(m *geom.Matrix, tour Tour) (float64, error) {
	if m == nil || len(tour) != m.N() {
		return 0, ErrDimensionMismatch
	}

	n := len(tour)
	var sum float64
	for i := 0; i < n; i++ {
		u := tour[i]
		v := tour[(i+1)%n]
		w, err := edgeCost(m, u, v)
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// edgeCost fetches the weight for a single edge u–v with strict validation.
// Used both by TourCost and by every solver's O(1) delta computation.
//
// Complexity: O(1).
func edgeCost(m *geom.Matrix, u, v int) (float64, error) {
	w, err := m.At(u, v)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, ErrNonFiniteDistance
	}
	if w < 0 {
		return 0, ErrNonFiniteDistance
	}
	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
