package geom

import "errors"

// Sentinel errors for coordinate-set and distance-matrix construction.
// Do not wrap these with fmt.Errorf where the sentinel alone is descriptive
// enough; the tsp package dispatcher adds caller-facing context at its one
// boundary (see tsp.Solve).
var (
	// ErrTooFewCities indicates fewer than two cities were supplied; no
	// Hamiltonian tour exists below N=2.
	ErrTooFewCities = errors.New("geom: fewer than two cities")

	// ErrNonFiniteCoordinate indicates a city coordinate is NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("geom: non-finite coordinate")

	// ErrDuplicateCity indicates two cities share the exact same (x, y)
	// location while StrictDuplicates was requested.
	ErrDuplicateCity = errors.New("geom: duplicate city coordinates")

	// ErrNonFiniteDistance guards against a NaN/Inf distance slipping into
	// the matrix; finite input coordinates make this unreachable, but the
	// check costs nothing on the one-time O(n²) build pass.
	ErrNonFiniteDistance = errors.New("geom: non-finite distance computed")

	// ErrIndexOutOfRange indicates an At(i, j) lookup outside [0, N).
	ErrIndexOutOfRange = errors.New("geom: index out of range")
)
