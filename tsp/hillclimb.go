// Package tsp — stochastic hill-climbing with plateau restarts.
//
// StochasticHillClimb repeatedly swaps two random positions in the tour;
// the move is kept whenever it does not worsen the tour (cost(T') ≤
// cost(T)), and reverted otherwise. A draw that does not strictly improve
// the tour — whether kept at equal cost or reverted — counts toward the
// plateau counter. After PlateauEpochs consecutive non-improving draws, the
// search abandons the current tour and restarts from a fresh random
// permutation, keeping the best tour seen across every restart.
//
// Design:
//   - Driven by the single *rand.Rand derived from Options.Seed.
//   - Epochs bounds total accepted-or-rejected draws across all restarts;
//     zero means "run until TimeLimit," itself falling back to an internal
//     safety cap when TimeLimit is also zero.
//   - Cost stabilized to 1e-9 via round1e9.
package tsp

import (
	"math"
	"math/rand"
	"time"

	"github.com/tsproute/tsp/geom"
)

// hillClimbSafetyCap bounds total draws when neither Epochs nor TimeLimit
// is set, so the solver cannot run forever on a misconfigured call.
const hillClimbSafetyCap = 2_000_000

// StochasticHillClimb runs randomized position-swap hill-climbing with
// plateau restarts, returning the best tour found.
func StochasticHillClimb(m *geom.Matrix, opts Options) (Result, error) {
	n := m.N()
	if err := validateCommon(n, opts); err != nil {
		return Result{}, err
	}
	if err := validateHillClimbOptions(opts); err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)
	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}

	maxDraws := opts.Epochs
	if maxDraws == 0 {
		maxDraws = hillClimbSafetyCap
	}

	var deadline time.Time
	useDeadline := compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}
	if opts.Epochs == 0 && useDeadline {
		maxDraws = math.MaxInt
	}

	cur := NewRandomTour(n, rng)
	curCost, err := TourCost(m, cur)
	if err != nil {
		return Result{}, err
	}

	best := cur.Clone()
	bestCost := curCost

	plateau := 0
	for draw := 0; draw < maxDraws; draw++ {
		if useDeadline && draw&1023 == 0 && time.Now().After(deadline) {
			break
		}

		i, j := randomPositions(rng, n)
		cur.Swap(i, j)
		newCost, err := TourCost(m, cur)
		if err != nil {
			return Result{}, err
		}

		if newCost <= curCost+eps {
			strictlyImproved := newCost < curCost-eps
			curCost = newCost
			if strictlyImproved {
				plateau = 0
			} else {
				plateau++
			}

			if curCost < bestCost-eps {
				best = cur.Clone()
				bestCost = curCost
			}
		} else {
			cur.Swap(i, j) // revert: move worsened the tour
			plateau++
		}

		if plateau >= opts.PlateauEpochs {
			cur = NewRandomTour(n, rng)
			curCost, err = TourCost(m, cur)
			if err != nil {
				return Result{}, err
			}
			plateau = 0
			if curCost < bestCost-eps {
				best = cur.Clone()
				bestCost = curCost
			}
		}
	}

	if err := best.Validate(n); err != nil {
		return Result{}, err
	}
	return Result{Tour: best, Cost: round1e9(bestCost)}, nil
}

// randomCut draws a random ordered pair (i, j), 0 ≤ i < j ≤ n-1, suitable
// for TwoOptDelta/TwoOptSwap: i is uniform over [0, n-2], then j is uniform
// over (i, n-1], so the pairs themselves are not equally likely.
func randomCut(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n - 1)
	j := i + 1 + rng.Intn(n-1-i)
	return i, j
}

// randomPositions draws two distinct, uniformly random positions in [0, n),
// suitable for Tour.Swap.
func randomPositions(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
