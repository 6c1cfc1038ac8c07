// Package tsp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal
// and stdlib/testify-only.
package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/tsproute/tsp/geom"
)

const (
	// epsTiny matches tsp.DefaultEps (1e-9): strict threshold to accept
	// improvements.
	epsTiny = 1e-9

	// epsLoose is a relaxed tolerance for occasional noisy geometric
	// comparisons.
	epsLoose = 1e-3

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// startV is the canonical start vertex used across tests.
	startV = 0
)

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// floatsClose checks relative/absolute closeness of two float64 values.
func floatsClose(a, b, rel, abs float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= abs {
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))
	return diff <= rel*den
}

// mustFloatClose asserts closeness of two float64 values under rel/abs
// tolerances.
func mustFloatClose(t *testing.T, got, want, rel, abs float64) {
	t.Helper()
	if !floatsClose(got, want, rel, abs) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (rel=%.1e abs=%.1e)", got, want, rel, abs)
	}
}

// squareCities returns the four corners of a unit square.
func squareCities() geom.CoordinateSet {
	return geom.CoordinateSet{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
}

// trianglePlusCenterCities returns an equilateral-ish triangle plus an
// interior point, used to exercise branch_bound/bellman_karp on a small
// non-trivial instance.
func trianglePlusCenterCities() geom.CoordinateSet {
	return geom.CoordinateSet{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 2, Y: 3},
		{X: 2, Y: 1},
	}
}

// circleCities returns n points evenly spaced on a unit circle — the
// optimal tour is the cities in angular order.
func circleCities(n int) geom.CoordinateSet {
	cs := make(geom.CoordinateSet, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		cs[i] = geom.City{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return cs
}

// isPermutation reports whether tour is a permutation of [0, n).
func isPermutation(tour []int, n int) bool {
	if len(tour) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
