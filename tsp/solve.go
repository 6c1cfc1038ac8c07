// Package tsp — unified dispatcher for every solver.
//
// Solve validates the coordinate set, builds its distance matrix, resolves
// the requested solver name (accepting common aliases), and delegates.
// Every branch returns a stabilized Result; wrapping with caller-facing
// context (solver name) happens only here, at the package's one error
// boundary — individual solver files return bare sentinels.
//
// Design principles:
//   - Deterministic: one *rand.Rand per randomized solver, seeded from
//     Options.Seed; no time-based randomness anywhere.
//   - Strict sentinels: errors from types.go/geom, wrapped with %w only at
//     this boundary.
//   - Stable cost: every returned cost is rounded to 1e-9.
package tsp

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tsproute/tsp/geom"
)

// Solver names recognized by Solve. Each also accepts the aliases listed in
// solverAliases below.
const (
	SolverNearestNeighbor    = "nearest_neighbor"
	SolverTwoOpt             = "two_opt"
	SolverStochasticHill     = "stochastic_hill"
	SolverSimulatedAnnealing = "simulated_annealing"
	SolverTabuSearch         = "tabu_search"
	SolverGeneticAlgorithm   = "genetic_algorithm"
	SolverBranchAndBound     = "branch_bound"
	SolverBellmanKarp        = "bellman_karp"
)

var solverAliases = map[string]string{
	"nn":  SolverNearestNeighbor,
	"2opt": SolverTwoOpt,
	"hill_climb": SolverStochasticHill,
	"sa":  SolverSimulatedAnnealing,
	"tabu": SolverTabuSearch,
	"ga":  SolverGeneticAlgorithm,
	"bb":  SolverBranchAndBound,
	"bhk": SolverBellmanKarp,
	"held_karp": SolverBellmanKarp,
}

func resolveSolverName(name string) string {
	if name == "" {
		return SolverNearestNeighbor
	}
	if canonical, ok := solverAliases[name]; ok {
		return canonical
	}
	return name
}

// Solve runs the named solver over cities and returns its Result. An empty
// name selects nearest_neighbor.
//
// Complexity: dominated by the chosen solver; see each solver's own file.
func Solve(name string, cities geom.CoordinateSet, opts Options) (Result, error) {
	m, err := geom.NewMatrix(cities)
	if err != nil {
		return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
	}

	canonical := resolveSolverName(name)
	if opts.Verbose {
		log.Debug().Str("solver", canonical).Int("n", m.N()).Msg("tsp: dispatching")
	}

	var res Result
	switch canonical {
	case SolverNearestNeighbor:
		if err := validateCommon(m.N(), opts); err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}
		tour, err := NearestNeighborTourKD(cities, opts.StartVertex)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}
		cost, err := TourCost(m, tour)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}
		res = Result{Tour: tour, Cost: cost}

	case SolverTwoOpt:
		base, err := NearestNeighborTour(m, opts.StartVertex)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}
		tour, cost, err := TwoOpt(m, base, opts)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}
		res = Result{Tour: tour, Cost: cost}

	case SolverStochasticHill:
		res, err = StochasticHillClimb(m, opts)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}

	case SolverSimulatedAnnealing:
		res, err = SimulatedAnnealing(m, opts)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}

	case SolverTabuSearch:
		res, err = TabuSearch(m, opts)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}

	case SolverGeneticAlgorithm:
		res, err = GeneticSearch(m, opts)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}

	case SolverBranchAndBound:
		res, err = BranchAndBound(m, opts)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}

	case SolverBellmanKarp:
		res, err = HeldKarp(m, opts)
		if err != nil {
			return Result{}, fmt.Errorf("tsp: solve %q: %w", name, err)
		}

	default:
		return Result{}, fmt.Errorf("tsp: solve %q: %w", name, ErrUnknownSolver)
	}

	if opts.Verbose {
		log.Debug().Str("solver", canonical).Float64("cost", res.Cost).Msg("tsp: solved")
	}

	return res, nil
}
