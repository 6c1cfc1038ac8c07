// Package tsp — simulated annealing.
//
// SimulatedAnnealing explores 2-opt-shaped neighbor moves (the same
// (i, j) segment-reversal family two_opt and tabu_search use), accepting
// worsening moves with Metropolis probability exp(-Δ/τ) to escape local
// optima, and cooling the temperature geometrically after every step:
// τ ← τ·(1 - CoolingRate). The search stops when τ drops below
// MinTemperature, or after Options.Epochs steps, whichever comes first
// (Epochs <= 0 means no step cap).
//
// Design:
//   - Driven by the single *rand.Rand derived from Options.Seed — for a
//     fixed seed, the exact sequence of proposed moves and acceptances is
//     reproducible.
//   - Cost stabilized to 1e-9 via round1e9.
package tsp

import (
	"math"

	"github.com/tsproute/tsp/geom"
)

// SimulatedAnnealing runs 2-opt-neighborhood simulated annealing from a
// random initial tour, returning the best tour observed during the cooling
// schedule.
func SimulatedAnnealing(m *geom.Matrix, opts Options) (Result, error) {
	n := m.N()
	if err := validateCommon(n, opts); err != nil {
		return Result{}, err
	}
	if err := validateSAOptions(opts); err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)
	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}

	cur := NewRandomTour(n, rng)
	curCost, err := TourCost(m, cur)
	if err != nil {
		return Result{}, err
	}

	best := cur.Clone()
	bestCost := curCost

	temp := opts.MaxTemperature
	for steps := 0; temp > opts.MinTemperature && (opts.Epochs <= 0 || steps < opts.Epochs); steps++ {
		i, j := randomCut(rng, n)
		delta, err := TwoOptDelta(m, cur, i, j)
		if err != nil {
			return Result{}, err
		}

		accept := delta < -eps
		if !accept {
			p := math.Exp(-delta / temp)
			accept = rng.Float64() < p
		}

		if accept {
			if err := cur.TwoOptSwap(i, j); err != nil {
				return Result{}, err
			}
			curCost += delta
			if curCost < bestCost-eps {
				best = cur.Clone()
				bestCost = curCost
			}
		}

		temp *= 1 - opts.CoolingRate
	}

	if err := best.Validate(n); err != nil {
		return Result{}, err
	}
	return Result{Tour: best, Cost: round1e9(bestCost)}, nil
}
