// Package tsp — tabu search.
//
// TabuSearch is a 2-opt-neighborhood local search with a short-term memory:
// once a move (i, j) is applied, its reverse is forbidden (tabu) for the
// next TabuCapacity iterations, preventing the search from immediately
// undoing it and cycling. An aspiration criterion overrides the tabu status
// whenever a forbidden move would produce a new global best — the standard
// escape hatch that keeps tabu status from ever blocking genuine progress.
//
// Design:
//   - The tabu list is a fixed-capacity FIFO queue of (i, j) cut-index
//     pairs; default capacity is N (the specification's stated default).
//   - Each step scans the full 2-opt neighborhood (as two_opt does) and
//     takes the best admissible move — non-tabu, or tabu-but-aspiring.
//   - Cost stabilized to 1e-9 via round1e9.
package tsp

import (
	"math"
	"time"

	"github.com/tsproute/tsp/geom"
)

// tabuSafetyCap bounds total iterations when neither Epochs nor TimeLimit
// is set.
const tabuSafetyCap = 200_000

type tabuMove struct{ i, j int }

// TabuSearch runs tabu search starting from a nearest-neighbor tour,
// returning the best tour found.
func TabuSearch(m *geom.Matrix, opts Options) (Result, error) {
	n := m.N()
	if err := validateCommon(n, opts); err != nil {
		return Result{}, err
	}
	if err := validateTabuOptions(opts); err != nil {
		return Result{}, err
	}

	capacity := opts.TabuCapacity
	if capacity == 0 {
		capacity = n
	}
	maxIters := opts.Epochs
	if maxIters == 0 {
		maxIters = tabuSafetyCap
	}

	var deadline time.Time
	useDeadline := compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}
	if opts.Epochs == 0 && useDeadline {
		maxIters = math.MaxInt
	}

	cur, err := NearestNeighborTour(m, opts.StartVertex)
	if err != nil {
		return Result{}, err
	}
	curCost, err := TourCost(m, cur)
	if err != nil {
		return Result{}, err
	}

	best := cur.Clone()
	bestCost := curCost

	tabuSet := make(map[tabuMove]int) // move -> iteration it expires on
	queue := make([]tabuMove, 0, capacity)

	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}

	for iter := 0; iter < maxIters; iter++ {
		if useDeadline && iter&1023 == 0 && time.Now().After(deadline) {
			break
		}

		bestI, bestJ := -1, -1
		bestDelta := 0.0
		foundAny := false

		for i := 0; i <= n-2; i++ {
			for j := i + 1; j <= n-1; j++ {
				delta, err := TwoOptDelta(m, cur, i, j)
				if err != nil {
					return Result{}, err
				}

				mv := tabuMove{i, j}
				tabu := false
				if expiry, ok := tabuSet[mv]; ok && expiry > iter {
					tabu = true
				}

				candidateCost := curCost + delta
				aspires := candidateCost < bestCost-eps
				if tabu && !aspires {
					continue
				}

				if !foundAny || delta < bestDelta {
					foundAny = true
					bestDelta = delta
					bestI, bestJ = i, j
				}
			}
		}

		if !foundAny {
			break
		}

		if err := cur.TwoOptSwap(bestI, bestJ); err != nil {
			return Result{}, err
		}
		curCost += bestDelta

		mv := tabuMove{bestI, bestJ}
		queue = append(queue, mv)
		tabuSet[mv] = iter + capacity + 1
		if len(queue) > capacity {
			evict := queue[0]
			queue = queue[1:]
			if tabuSet[evict] <= iter+1 {
				delete(tabuSet, evict)
			}
		}

		if curCost < bestCost-eps {
			best = cur.Clone()
			bestCost = curCost
		}
	}

	if err := best.Validate(n); err != nil {
		return Result{}, err
	}
	return Result{Tour: best, Cost: round1e9(bestCost)}, nil
}
