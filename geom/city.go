package geom

import "math"

// City is an immutable 2-D point. Its index within a CoordinateSet is
// implicit: the i-th element of the slice is city i.
type City struct {
	X float64
	Y float64
}

// CoordinateSet is an ordered, immutable-for-the-run sequence of cities.
type CoordinateSet []City

// ValidateOption configures Validate. WithStrictDuplicates, when passed to
// Validate, rejects coincident cities. Off by default: TSPLIB instances legally contain duplicate points, and a
// zero-distance edge between them is well-defined.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	strictDuplicates bool
}

// WithStrictDuplicates enables ErrDuplicateCity for exactly-coincident
// coordinates.
func WithStrictDuplicates() ValidateOption {
	return func(c *validateConfig) { c.strictDuplicates = true }
}

// Validate enforces the data-model invariants from the specification:
// at least two cities, every coordinate finite, and (opt-in) no exact
// coordinate duplicates.
//
// Complexity: O(n) normally; O(n²) only when WithStrictDuplicates is set.
func (cs CoordinateSet) Validate(opts ...ValidateOption) error {
	if len(cs) < 2 {
		return ErrTooFewCities
	}

	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	for i := range cs {
		if math.IsNaN(cs[i].X) || math.IsInf(cs[i].X, 0) ||
			math.IsNaN(cs[i].Y) || math.IsInf(cs[i].Y, 0) {
			return ErrNonFiniteCoordinate
		}
	}

	if cfg.strictDuplicates {
		for i := 0; i < len(cs); i++ {
			for j := i + 1; j < len(cs); j++ {
				if cs[i].X == cs[j].X && cs[i].Y == cs[j].Y {
					return ErrDuplicateCity
				}
			}
		}
	}

	return nil
}
