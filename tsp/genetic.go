// Package tsp — genetic search.
//
// GeneticSearch evolves a population of tours over a fixed number of
// generations: each generation keeps the NElite best tours unchanged
// (elitism), then fills the rest of the population by picking two parents
// via tournament selection, recombining them with order crossover (OX1,
// which preserves the permutation property no naive single-point crossover
// can guarantee), and mutating the child with probability
// MutationProbability by swapping two random positions.
//
// Design:
//   - Driven by the single *rand.Rand derived from Options.Seed.
//   - Cost stabilized to 1e-9 via round1e9.
package tsp

import (
	"math/rand"
	"time"

	"github.com/tsproute/tsp/geom"
)

// GeneticSearch runs the genetic algorithm over PopSize tours for Epochs
// generations (or until TimeLimit), returning the best tour seen.
func GeneticSearch(m *geom.Matrix, opts Options) (Result, error) {
	n := m.N()
	if err := validateCommon(n, opts); err != nil {
		return Result{}, err
	}
	if err := validateGeneticOptions(opts); err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)
	generations := opts.Epochs
	if generations == 0 {
		generations = DefaultEpochs
	}

	var deadline time.Time
	useDeadline := compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	pop := make([]Tour, opts.PopSize)
	costs := make([]float64, opts.PopSize)
	for i := range pop {
		// Each founding member gets its own derived stream so the initial
		// population isn't just one shuffle sequence sliced into pieces.
		pop[i] = NewRandomTour(n, deriveRNG(rng, uint64(i)))
		c, err := TourCost(m, pop[i])
		if err != nil {
			return Result{}, err
		}
		costs[i] = c
	}

	bestIdx := argminCost(costs)
	best := pop[bestIdx].Clone()
	bestCost := costs[bestIdx]

	for gen := 0; gen < generations; gen++ {
		if useDeadline && gen&63 == 0 && time.Now().After(deadline) {
			break
		}

		order := ranksByCost(costs)
		next := make([]Tour, 0, opts.PopSize)
		for e := 0; e < opts.NElite; e++ {
			next = append(next, pop[order[e]].Clone())
		}

		for len(next) < opts.PopSize {
			p1 := tournamentSelect(pop, costs, opts.TournamentK, rng)
			p2 := tournamentSelect(pop, costs, opts.TournamentK, rng)
			child := orderCrossover(p1, p2, rng)
			if rng.Float64() < opts.MutationProbability {
				a := rng.Intn(n)
				b := rng.Intn(n)
				child.Swap(a, b)
			}
			next = append(next, child)
		}

		pop = next
		for i := range pop {
			c, err := TourCost(m, pop[i])
			if err != nil {
				return Result{}, err
			}
			costs[i] = c
		}

		idx := argminCost(costs)
		if costs[idx] < bestCost {
			bestCost = costs[idx]
			best = pop[idx].Clone()
		}
	}

	if err := best.Validate(n); err != nil {
		return Result{}, err
	}
	return Result{Tour: best, Cost: round1e9(bestCost)}, nil
}

func argminCost(costs []float64) int {
	best := 0
	for i, c := range costs {
		if c < costs[best] {
			best = i
		}
	}
	return best
}

// ranksByCost returns population indices sorted ascending by cost.
func ranksByCost(costs []float64) []int {
	idx := make([]int, len(costs))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && costs[idx[j]] < costs[idx[j-1]]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	return idx
}

// tournamentSelect picks k random individuals and returns the fittest.
func tournamentSelect(pop []Tour, costs []float64, k int, rng *rand.Rand) Tour {
	best := rng.Intn(len(pop))
	for i := 1; i < k; i++ {
		cand := rng.Intn(len(pop))
		if costs[cand] < costs[best] {
			best = cand
		}
	}
	return pop[best]
}

// orderCrossover implements OX1: copy a contiguous slice from p1 into the
// child at the same positions, then fill the remaining positions with p2's
// cities in their relative order, skipping any already placed.
func orderCrossover(p1, p2 Tour, rng *rand.Rand) Tour {
	n := len(p1)
	child := make(Tour, n)
	for i := range child {
		child[i] = -1
	}

	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}

	placed := make([]bool, n)
	for i := a; i <= b; i++ {
		child[i] = p1[i]
		placed[p1[i]] = true
	}

	pos := (b + 1) % n
	for _, c := range p2 {
		if placed[c] {
			continue
		}
		child[pos] = c
		placed[c] = true
		pos = (pos + 1) % n
	}

	return child
}
