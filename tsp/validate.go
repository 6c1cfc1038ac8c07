// Package tsp — validation utilities shared by every solver.
//
// geom.Matrix already enforces matrix-shape and finiteness invariants at
// construction time, so this file is narrower than it would otherwise be:
// it validates the Options parameter bag, one group of fields per solver,
// against the ranges each solver's math requires.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input — only sentinel errors.
package tsp

import "time"

// validateCommon checks the Options fields every solver reads: the start
// vertex (for branch_bound/bellman_karp), the shared Eps tolerance, and the
// optional wall-clock budget.
//
// Complexity: O(1).
func validateCommon(n int, opts Options) error {
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return ErrStartOutOfRange
	}
	if opts.Eps < 0 {
		return ErrUnknownParameter
	}
	if opts.TimeLimit < 0 {
		return ErrUnknownParameter
	}
	return nil
}

// validateTwoOptOptions checks the fields two_opt reads.
func validateTwoOptOptions(opts Options) error {
	if opts.Eps < 0 {
		return ErrUnknownParameter
	}
	if opts.TwoOptMaxIters < 0 {
		return ErrUnknownParameter
	}
	return nil
}

// validateHillClimbOptions checks the fields stochastic_hill reads.
func validateHillClimbOptions(opts Options) error {
	if opts.PlateauEpochs <= 0 {
		return ErrUnknownParameter
	}
	if opts.Epochs < 0 {
		return ErrUnknownParameter
	}
	return nil
}

// validateSAOptions checks the fields simulated_annealing reads.
func validateSAOptions(opts Options) error {
	if opts.CoolingRate <= 0 || opts.CoolingRate >= 1 {
		return ErrUnknownParameter
	}
	if opts.MaxTemperature <= 0 {
		return ErrUnknownParameter
	}
	if opts.MinTemperature <= 0 || opts.MinTemperature >= opts.MaxTemperature {
		return ErrUnknownParameter
	}
	if opts.Epochs < 0 {
		return ErrUnknownParameter
	}
	return nil
}

// validateTabuOptions checks the fields tabu_search reads.
func validateTabuOptions(opts Options) error {
	if opts.TabuCapacity < 0 {
		return ErrUnknownParameter
	}
	if opts.Epochs < 0 {
		return ErrUnknownParameter
	}
	return nil
}

// validateGeneticOptions checks the fields genetic_algorithm reads.
func validateGeneticOptions(opts Options) error {
	if opts.PopSize < 4 {
		return ErrUnknownParameter
	}
	if opts.NElite < 0 || opts.NElite >= opts.PopSize {
		return ErrUnknownParameter
	}
	if opts.TournamentK < 2 || opts.TournamentK > opts.PopSize {
		return ErrUnknownParameter
	}
	if opts.MutationProbability < 0 || opts.MutationProbability > 1 {
		return ErrUnknownParameter
	}
	if opts.Epochs < 0 {
		return ErrUnknownParameter
	}
	return nil
}

// validateBBOptions checks the fields branch_bound reads.
func validateBBOptions(opts Options) error {
	switch opts.BoundAlgo {
	case SimpleBound, OneTreeBound:
	default:
		return ErrUnknownParameter
	}
	return nil
}

// compatibleTimeBudget returns whether the remaining time budget is usable.
// Policy: 0 means "unlimited."
//
// Complexity: O(1).
func compatibleTimeBudget(tl time.Duration) bool {
	return tl >= 0
}
