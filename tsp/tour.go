// Package tsp — tour utilities shared by every solver.
//
// A Tour is the open representation mandated by the specification: a
// permutation of [0, n) naming the visiting order, with the return edge
// from the last city to the first left implicit. This deliberately departs
// from the closed (length n+1, Tour[0]==Tour[n]) form used elsewhere in the
// ecosystem; every helper here is adapted to the open form while keeping
// the allocation-conscious, sentinel-error style of the package it's
// grounded on.
//
// Provided helpers:
//   - NewIdentityTour / NewRandomTour: construct a starting tour.
//   - Validate: enforce the permutation invariant.
//   - TwoOptSwap: in-place segment reversal, the 2-opt move primitive.
//   - TwoOptDelta: O(1) cost change for a candidate TwoOptSwap.
//   - Swap: exchange two positions (used by hill-climbing moves and GA mutation).
//   - Clone / IndexOf / DebugString / EqualToursModuloRotation /
//     CanonicalizeOrientation: copying, inspection, and canonical form.
//
// Design:
//   - No logging, no panics on malformed input — only sentinel errors.
//   - O(n) time for most helpers; in-place mutation avoids extra allocation
//     on the solvers' hot paths.
package tsp

import (
	"fmt"
	"math/rand"

	"github.com/tsproute/tsp/geom"
)

// Tour is a permutation of [0, n): the city visited at step k is Tour[k],
// with an implicit edge back from Tour[n-1] to Tour[0].
type Tour []int

// NewIdentityTour returns the tour 0, 1, ..., n-1 in order.
//
// Complexity: O(n).
func NewIdentityTour(n int) Tour {
	t := make(Tour, n)
	for i := range t {
		t[i] = i
	}
	return t
}

// NewRandomTour returns a uniformly random permutation of [0, n), generated
// deterministically from rng. If rng is nil, a fixed default stream is used.
//
// Complexity: O(n).
func NewRandomTour(n int, rng *rand.Rand) Tour {
	t := NewIdentityTour(n)
	shuffleIntsInPlace(t, rng)
	return t
}

// Validate checks that t is a permutation of [0, n).
//
// Complexity: O(n) time, O(n) space.
func (t Tour) Validate(n int) error {
	if len(t) != n || n <= 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range t {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// Clone returns an independent copy of t.
//
// Complexity: O(n).
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// Swap exchanges the cities at positions i and j.
//
// Complexity: O(1).
func (t Tour) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}

// IndexOf returns the position of city in t, or -1 if absent.
//
// Complexity: O(n).
func (t Tour) IndexOf(city int) int {
	for i, v := range t {
		if v == city {
			return i
		}
	}
	return -1
}

// Cost computes the tour's total length over m; a thin convenience wrapper
// around TourCost.
func (t Tour) Cost(m *geom.Matrix) (float64, error) {
	return TourCost(m, t)
}

// TwoOptSwap reverses the segment t[i+1 .. j] in place. Together with
// TwoOptDelta this is the 2-opt move: it removes edges (t[i],t[i+1]) and
// (t[j],t[j+1]) and reconnects as (t[i],t[j]) and (t[i+1],t[j+1]).
//
// Contract: 0 ≤ i < j ≤ n-1.
//
// Complexity: O(j-i) time, O(1) space.
func (t Tour) TwoOptSwap(i, j int) error {
	n := len(t)
	if i < 0 || j >= n || i >= j {
		return ErrDimensionMismatch
	}
	lo, hi := i+1, j
	for lo < hi {
		t[lo], t[hi] = t[hi], t[lo]
		lo++
		hi--
	}
	return nil
}

// TwoOptDelta returns the change in tour cost a TwoOptSwap(i, j) would
// cause, computed from four edge lookups instead of re-evaluating the whole
// tour. A negative delta means the swap improves the tour.
//
// Contract: 0 ≤ i < j ≤ n-1, same as TwoOptSwap.
//
// Complexity: O(1).
func TwoOptDelta(m *geom.Matrix, t Tour, i, j int) (float64, error) {
	n := len(t)
	if i < 0 || j >= n || i >= j {
		return 0, ErrDimensionMismatch
	}

	a, b := t[i], t[(i+1)%n]
	c, d := t[j], t[(j+1)%n]

	if a == c || b == d {
		return 0, nil
	}

	ac, err := edgeCost(m, a, c)
	if err != nil {
		return 0, err
	}
	bd, err := edgeCost(m, b, d)
	if err != nil {
		return 0, err
	}
	ab, err := edgeCost(m, a, b)
	if err != nil {
		return 0, err
	}
	cd, err := edgeCost(m, c, d)
	if err != nil {
		return 0, err
	}

	return round1e9((ac + bd) - (ab + cd)), nil
}

// CanonicalizeOrientation fixes the tour's direction relative to a fixed
// first city: if t[1] is lexicographically greater than t[n-1], the
// interior segment [1, n-1] is reversed in place. Two tours that visit the
// same cyclic order in opposite directions become identical after this
// call (and after rotating to the same start).
//
// Complexity: O(n).
func (t Tour) CanonicalizeOrientation() error {
	n := len(t)
	if n < 3 {
		return nil
	}
	if t[1] > t[n-1] {
		lo, hi := 1, n-1
		for lo < hi {
			t[lo], t[hi] = t[hi], t[lo]
			lo++
			hi--
		}
	}
	return nil
}

// EqualToursModuloRotation reports whether a and b visit cities in the same
// cyclic order, allowing either to be rotated (but not reversed) to match
// the other's start.
//
// Complexity: O(n).
func EqualToursModuloRotation(a, b Tour) bool {
	n := len(a)
	if n != len(b) || n == 0 {
		return false
	}
	p := b.IndexOf(a[0])
	if p == -1 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}

// DebugString returns a compact printable representation, e.g. "[0 3 1 2]".
//
// Complexity: O(n).
func (t Tour) DebugString() string {
	s := "["
	for i, v := range t {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", v)
	}
	return s + "]"
}
