package tsp_test

import (
	"testing"

	"github.com/tsproute/tsp/tsp"
)

func TestGeneticSearch_ReturnsValidTour(t *testing.T) {
	cities := rippledCircle(20, 0.05, 5)

	opt := tsp.DefaultOptions()
	opt.PopSize = 30
	opt.Epochs = 150
	opt.Seed = 11

	res, err := tsp.Solve(tsp.SolverGeneticAlgorithm, cities, opt)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !isPermutation(res.Tour, len(cities)) {
		t.Fatalf("invalid tour: %v", res.Tour)
	}
	if res.Cost <= 0 {
		t.Fatalf("unexpected non-positive cost: %v", res.Cost)
	}
}

func TestGeneticSearch_ElitismNeverLosesTheBestSeen(t *testing.T) {
	cities := rippledCircle(15, 0.05, 3)

	opt := tsp.DefaultOptions()
	opt.PopSize = 20
	opt.NElite = 4
	opt.Epochs = 100
	opt.Seed = 5

	first, err := tsp.Solve(tsp.SolverGeneticAlgorithm, cities, opt)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	opt.Epochs = 200
	second, err := tsp.Solve(tsp.SolverGeneticAlgorithm, cities, opt)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if second.Cost > first.Cost+epsLoose {
		t.Fatalf("more generations produced a worse best-so-far: first=%.12f second=%.12f", first.Cost, second.Cost)
	}
}
