package tsp_test

import (
	"testing"

	"github.com/tsproute/tsp/tsp"
)

func TestSimulatedAnnealing_ReturnsValidTour(t *testing.T) {
	cities := rippledCircle(25, 0.05, 5)

	opt := tsp.DefaultOptions()
	opt.Seed = 3

	res, err := tsp.Solve(tsp.SolverSimulatedAnnealing, cities, opt)
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

func TestSimulatedAnnealing_CoolsToCompletion(t *testing.T) {
	cities := rippledCircle(12, 0.03, 3)

	opt := tsp.DefaultOptions()
	opt.MaxTemperature = 10
	opt.MinTemperature = 1
	opt.CoolingRate = 0.5

	res, err := tsp.Solve(tsp.SolverSimulatedAnnealing, cities, opt)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !isPermutation(res.Tour, len(cities)) {
		t.Fatalf("invalid tour: %v", res.Tour)
	}
}
