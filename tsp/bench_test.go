// Package tsp_test — benchmarks for every solver and the shared primitives
// they lean on (TourCost, TwoOptDelta, k-d tree nearest-neighbor).
//
// Policy:
//   - Deterministic geometry (rippled circles) and fixed seeds.
//   - Matrices are built once outside the timed loop; only the algorithmic
//     core is measured.
//   - Instance sizes are tuned to stay fast on CI while still exercising
//     each solver's dominant cost.
package tsp_test

import (
	"math"
	"testing"

	"github.com/tsproute/tsp/tsp"
	"github.com/tsproute/tsp/geom"
)

func rippledCircle(n int, rippleAmp float64, rippleFreq int) geom.CoordinateSet {
	cs := make(geom.CoordinateSet, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + rippleAmp*float64((i*rippleFreq)%7)
		cs[i] = geom.City{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	return cs
}

func BenchmarkBranchAndBound_SimpleBound_n9(b *testing.B) {
	cities := rippledCircle(9, 0.02, 5)
	opt := tsp.DefaultOptions()
	opt.BoundAlgo = tsp.SimpleBound

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverBranchAndBound, cities, opt); err != nil {
			b.Fatalf("BranchAndBound(SimpleBound) failed: %v", err)
		}
	}
}

func BenchmarkBranchAndBound_OneTreeBound_n9(b *testing.B) {
	cities := rippledCircle(9, 0.02, 5)
	opt := tsp.DefaultOptions()
	opt.BoundAlgo = tsp.OneTreeBound

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverBranchAndBound, cities, opt); err != nil {
			b.Fatalf("BranchAndBound(OneTreeBound) failed: %v", err)
		}
	}
}

func BenchmarkHeldKarp_n16(b *testing.B) {
	cities := rippledCircle(16, 0.02, 3)
	opt := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverBellmanKarp, cities, opt); err != nil {
			b.Fatalf("HeldKarp failed: %v", err)
		}
	}
}

func BenchmarkTwoOpt_n200(b *testing.B) {
	cities := rippledCircle(200, 0.015, 7)
	opt := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverTwoOpt, cities, opt); err != nil {
			b.Fatalf("TwoOpt failed: %v", err)
		}
	}
}

func BenchmarkNearestNeighbor_KD_n500(b *testing.B) {
	cities := rippledCircle(500, 0.01, 11)
	opt := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverNearestNeighbor, cities, opt); err != nil {
			b.Fatalf("NearestNeighbor failed: %v", err)
		}
	}
}

func BenchmarkStochasticHillClimb_n100(b *testing.B) {
	cities := rippledCircle(100, 0.02, 5)
	opt := tsp.DefaultOptions()
	opt.Epochs = 2000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverStochasticHill, cities, opt); err != nil {
			b.Fatalf("StochasticHillClimb failed: %v", err)
		}
	}
}

func BenchmarkSimulatedAnnealing_n100(b *testing.B) {
	cities := rippledCircle(100, 0.02, 5)
	opt := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverSimulatedAnnealing, cities, opt); err != nil {
			b.Fatalf("SimulatedAnnealing failed: %v", err)
		}
	}
}

func BenchmarkTabuSearch_n100(b *testing.B) {
	cities := rippledCircle(100, 0.02, 5)
	opt := tsp.DefaultOptions()
	opt.Epochs = 2000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverTabuSearch, cities, opt); err != nil {
			b.Fatalf("TabuSearch failed: %v", err)
		}
	}
}

func BenchmarkGeneticAlgorithm_n100(b *testing.B) {
	cities := rippledCircle(100, 0.02, 5)
	opt := tsp.DefaultOptions()
	opt.Epochs = 200
	opt.PopSize = 40

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(tsp.SolverGeneticAlgorithm, cities, opt); err != nil {
			b.Fatalf("GeneticSearch failed: %v", err)
		}
	}
}

func BenchmarkTourCost_n200(b *testing.B) {
	cities := rippledCircle(200, 0.015, 7)
	m, err := geom.NewMatrix(cities)
	if err != nil {
		b.Fatalf("NewMatrix failed: %v", err)
	}
	tour := tsp.NewIdentityTour(len(cities))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TourCost(m, tour); err != nil {
			b.Fatalf("TourCost failed: %v", err)
		}
	}
}

func BenchmarkTwoOptDelta_n200(b *testing.B) {
	cities := rippledCircle(200, 0.015, 7)
	m, err := geom.NewMatrix(cities)
	if err != nil {
		b.Fatalf("NewMatrix failed: %v", err)
	}
	tour := tsp.NewIdentityTour(len(cities))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TwoOptDelta(m, tour, 10, 150); err != nil {
			b.Fatalf("TwoOptDelta failed: %v", err)
		}
	}
}
