// Package tsp_test validates Options input handling: strict sentinel errors
// on out-of-range parameters, and acceptance of the documented baseline.
package tsp_test

import (
	"testing"
	"time"

	"github.com/tsproute/tsp/tsp"
)

func TestValidate_StartVertex_OutOfRange(t *testing.T) {
	cities := squareCities()

	Repeat(t, 3, func(t *testing.T) {
		opt := tsp.DefaultOptions()
		opt.StartVertex = 4 // n == 4
		_, err := tsp.Solve(tsp.SolverBranchAndBound, cities, opt)
		mustErrIs(t, err, tsp.ErrStartOutOfRange)
	})
}

func TestValidate_NegativeEps_UnknownParameter(t *testing.T) {
	cities := squareCities()

	Repeat(t, 3, func(t *testing.T) {
		opt := tsp.DefaultOptions()
		opt.Eps = -1e-9
		_, err := tsp.Solve(tsp.SolverBranchAndBound, cities, opt)
		mustErrIs(t, err, tsp.ErrUnknownParameter)
	})
}

func TestValidate_NegativeTimeLimit_UnknownParameter(t *testing.T) {
	cities := squareCities()

	Repeat(t, 3, func(t *testing.T) {
		opt := tsp.DefaultOptions()
		opt.TimeLimit = -1 * time.Millisecond
		_, err := tsp.Solve(tsp.SolverBranchAndBound, cities, opt)
		mustErrIs(t, err, tsp.ErrUnknownParameter)
	})
}

func TestValidate_BadBoundAlgo_UnknownParameter(t *testing.T) {
	cities := squareCities()

	Repeat(t, 3, func(t *testing.T) {
		opt := tsp.DefaultOptions()
		opt.BoundAlgo = tsp.BoundAlgo(99)
		_, err := tsp.Solve(tsp.SolverBranchAndBound, cities, opt)
		mustErrIs(t, err, tsp.ErrUnknownParameter)
	})
}

func TestValidate_SA_BadTemperatureRange(t *testing.T) {
	cities := squareCities()

	t.Run("MinTemperature >= MaxTemperature", func(t *testing.T) {
		Repeat(t, 3, func(t *testing.T) {
			opt := tsp.DefaultOptions()
			opt.MinTemperature = opt.MaxTemperature
			_, err := tsp.Solve(tsp.SolverSimulatedAnnealing, cities, opt)
			mustErrIs(t, err, tsp.ErrUnknownParameter)
		})
	})

	t.Run("CoolingRate out of (0, 1)", func(t *testing.T) {
		Repeat(t, 3, func(t *testing.T) {
			opt := tsp.DefaultOptions()
			opt.CoolingRate = 1.5
			_, err := tsp.Solve(tsp.SolverSimulatedAnnealing, cities, opt)
			mustErrIs(t, err, tsp.ErrUnknownParameter)
		})
	})
}

func TestValidate_Genetic_BadPopulationShape(t *testing.T) {
	cities := squareCities()

	t.Run("PopSize too small", func(t *testing.T) {
		Repeat(t, 3, func(t *testing.T) {
			opt := tsp.DefaultOptions()
			opt.PopSize = 2
			_, err := tsp.Solve(tsp.SolverGeneticAlgorithm, cities, opt)
			mustErrIs(t, err, tsp.ErrUnknownParameter)
		})
	})

	t.Run("NElite >= PopSize", func(t *testing.T) {
		Repeat(t, 3, func(t *testing.T) {
			opt := tsp.DefaultOptions()
			opt.PopSize = 5
			opt.NElite = 5
			_, err := tsp.Solve(tsp.SolverGeneticAlgorithm, cities, opt)
			mustErrIs(t, err, tsp.ErrUnknownParameter)
		})
	})

	t.Run("TournamentK out of [2, PopSize]", func(t *testing.T) {
		Repeat(t, 3, func(t *testing.T) {
			opt := tsp.DefaultOptions()
			opt.TournamentK = 1
			_, err := tsp.Solve(tsp.SolverGeneticAlgorithm, cities, opt)
			mustErrIs(t, err, tsp.ErrUnknownParameter)
		})
	})
}

func TestValidate_HillClimb_BadPlateauEpochs(t *testing.T) {
	cities := squareCities()

	Repeat(t, 3, func(t *testing.T) {
		opt := tsp.DefaultOptions()
		opt.PlateauEpochs = 0
		_, err := tsp.Solve(tsp.SolverStochasticHill, cities, opt)
		mustErrIs(t, err, tsp.ErrUnknownParameter)
	})
}

func TestValidate_Tabu_NegativeCapacity(t *testing.T) {
	cities := squareCities()

	Repeat(t, 3, func(t *testing.T) {
		opt := tsp.DefaultOptions()
		opt.TabuCapacity = -1
		_, err := tsp.Solve(tsp.SolverTabuSearch, cities, opt)
		mustErrIs(t, err, tsp.ErrUnknownParameter)
	})
}

func TestValidate_BaselineDefaultsAccepted(t *testing.T) {
	cities := squareCities()

	for _, name := range []string{
		tsp.SolverNearestNeighbor,
		tsp.SolverTwoOpt,
		tsp.SolverStochasticHill,
		tsp.SolverSimulatedAnnealing,
		tsp.SolverTabuSearch,
		tsp.SolverGeneticAlgorithm,
		tsp.SolverBranchAndBound,
		tsp.SolverBellmanKarp,
	} {
		name := name
		t.Run(name, func(t *testing.T) {
			opt := tsp.DefaultOptions()
			if _, err := tsp.Solve(name, cities, opt); err != nil {
				t.Fatalf("unexpected error for %q: %v", name, err)
			}
		})
	}
}

func TestValidate_UnknownSolverName(t *testing.T) {
	cities := squareCities()
	_, err := tsp.Solve("does_not_exist", cities, tsp.DefaultOptions())
	mustErrIs(t, err, tsp.ErrUnknownSolver)
}

func TestValidate_SolverAliasesResolve(t *testing.T) {
	cities := squareCities()
	aliasPairs := map[string]string{
		"nn":         tsp.SolverNearestNeighbor,
		"2opt":       tsp.SolverTwoOpt,
		"hill_climb": tsp.SolverStochasticHill,
		"sa":         tsp.SolverSimulatedAnnealing,
		"tabu":       tsp.SolverTabuSearch,
		"ga":         tsp.SolverGeneticAlgorithm,
		"bb":         tsp.SolverBranchAndBound,
		"bhk":        tsp.SolverBellmanKarp,
		"held_karp":  tsp.SolverBellmanKarp,
	}
	for alias, canonical := range aliasPairs {
		alias, canonical := alias, canonical
		t.Run(alias, func(t *testing.T) {
			opt := tsp.DefaultOptions()
			resAlias, err := tsp.Solve(alias, cities, opt)
			if err != nil {
				t.Fatalf("alias %q failed: %v", alias, err)
			}
			resCanonical, err := tsp.Solve(canonical, cities, opt)
			if err != nil {
				t.Fatalf("canonical %q failed: %v", canonical, err)
			}
			mustFloatClose(t, resAlias.Cost, resCanonical.Cost, 0, epsTiny)
		})
	}
}
