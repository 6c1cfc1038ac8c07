package geom

import (
	"fmt"
	"math"
)

// Matrix is a dense, row-major N×N matrix of pairwise Euclidean distances.
// Storage is a single flat slice (grounded on the teacher's matrix.Dense
// layout) to keep the hot paths of every solver allocation-free and
// cache-friendly: data[i*n+j] holds D[i][j].
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix builds the N×N distance matrix from cities in one O(n²) pass
// over unordered pairs. D[i][j] = D[j][i] = sqrt((xi-xj)^2 + (yi-yj)^2);
// D[i][i] = 0. Raw Euclidean distance is used throughout — no TSPLIB-style
// rounding (see package doc).
//
// Complexity: O(n²) time, O(n²) space.
func NewMatrix(cities CoordinateSet) (*Matrix, error) {
	if err := cities.Validate(); err != nil {
		return nil, err
	}

	n := len(cities)
	m := &Matrix{n: n, data: make([]float64, n*n)}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := cities[i].X - cities[j].X
			dy := cities[i].Y - cities[j].Y
			d := math.Hypot(dx, dy)
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, ErrNonFiniteDistance
			}
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

// N returns the matrix order (number of cities).
func (m *Matrix) N() int { return m.n }

// At returns D[i][j]. Panics-free: returns an error on out-of-range
// indices rather than a silent zero.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("geom: At(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Unsafe is a fast accessor used by hot-path solver loops that have
// already validated their indices against N(); it skips the bounds check
// At performs. Callers outside this module's own tsp package should
// prefer At.
func (m *Matrix) Unsafe(i, j int) float64 { return m.data[i*m.n+j] }
