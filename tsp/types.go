// Sentinel errors, the Options parameter bag, and the Result type shared
// by every solver in this package.
package tsp

import (
	"errors"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, algorithm governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a
// sentinel suffices; Solve adds caller-facing context at its one boundary.
var (
	// ErrDimensionMismatch indicates a tour/permutation does not have the
	// shape a complete Hamiltonian cycle over N cities requires.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// Config errors: unrecognized solver name, or a parameter value the chosen
// solver cannot accept.
var (
	// ErrUnknownSolver is returned when Solve is asked for a name it does
	// not recognize (after alias resolution).
	ErrUnknownSolver = errors.New("tsp: unknown solver")

	// ErrUnknownParameter is returned when an Options field the chosen
	// solver reads carries a value outside that field's valid range.
	ErrUnknownParameter = errors.New("tsp: unknown or out-of-range parameter")
)

// Capacity errors.
var (
	// ErrHeldKarpTooLarge signals N > MaxHeldKarpN for the exact DP
	// solver: memory grows as n·2ⁿ and becomes infeasible well before the
	// time does.
	ErrHeldKarpTooLarge = errors.New("tsp: held-karp solver supports at most 20 cities")
)

// Numeric errors and search-governance sentinels.
var (
	// ErrNonFiniteDistance guards against a NaN/Inf distance slipping past
	// geom.Matrix construction into a solver's hot path.
	ErrNonFiniteDistance = errors.New("tsp: non-finite distance encountered")

	// ErrTimeBudgetExceeded indicates Options.TimeLimit elapsed before the
	// solver produced a result.
	ErrTimeBudgetExceeded = errors.New("tsp: time budget exceeded")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Branch-and-bound bound selection
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// BoundAlgo selects the lower-bound strategy used by branch_bound.
type BoundAlgo int

const (
	// SimpleBound is the specification's default: cost-so-far plus the
	// larger of two degree-1 relaxations, the sum of cheapest outgoing
	// edges and the sum of cheapest incoming edges over the cities whose
	// edge is not yet fixed. Cheap to compute at every node.
	SimpleBound BoundAlgo = iota

	// OneTreeBound enables the Held–Karp 1-tree Lagrangian bound, which
	// prunes more aggressively at the cost of a subgradient loop run once
	// at the root. Either bound is an acceptable choice; SimpleBound stays
	// the default so branch_bound's behavior matches the baseline exactly
	// unless a caller opts in.
	OneTreeBound
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Result is the output of a solver.
type Result struct {
	// Tour is a permutation of [0, n): city at position k is visited k-th,
	// with an implicit edge back from Tour[n-1] to Tour[0].
	Tour Tour

	// Cost is the total length of Tour under the matrix it was solved
	// against.
	Cost float64

	// Optimal is true only for branch_bound and bellman_karp: the two
	// solvers that return a proven optimum rather than a heuristic.
	Optimal bool
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs, one per solver-specific field.
const (
	DefaultEps                 = 1e-9
	DefaultTwoOptMaxIters      = 100_000
	DefaultEpochs              = 10_000
	DefaultPlateauEpochs       = 200
	DefaultCoolingRate         = 0.0005
	DefaultMaxTemperature      = 1000.0
	DefaultMinTemperature      = 0.001
	DefaultMutationProbability = 0.001
	DefaultNElite              = 3
	DefaultPopSize             = 50
	DefaultTournamentK         = 3

	// MaxHeldKarpN is the hard ceiling on bellman_karp's instance size.
	MaxHeldKarpN = 20
)

// Options defines configurable parameters for every solver. Zero value is
// not meaningful; use DefaultOptions() and override fields as needed. Each
// solver reads only the subset of fields relevant to it; see each solver's
// file for which ones and their valid ranges (enforced in validate.go).
type Options struct {
	// StartVertex selects the start/end vertex for branch_bound and
	// bellman_karp, both of which fix a start by construction. Default: 0.
	StartVertex int

	// Verbose makes Solve emit two zerolog Debug-level lines: one when it
	// dispatches to a solver and one with the final cost. The solvers
	// themselves do not log; there is no per-move, per-generation or
	// per-annealing-step output. Off by default.
	Verbose bool

	// Epochs bounds iteration count for stochastic_hill and tabu_search.
	// Zero means "run until TimeLimit, or an internal safety cap if
	// TimeLimit is also zero."
	Epochs int

	// TwoOptMaxIters caps the number of accepted improving moves two_opt
	// will apply before returning. Zero means DefaultTwoOptMaxIters.
	TwoOptMaxIters int

	// PlateauEpochs is stochastic_hill's plateau length before restarting
	// from a fresh random tour.
	PlateauEpochs int

	// CoolingRate is simulated_annealing's geometric decay per step:
	// τ ← τ·(1 - CoolingRate). Must lie in (0, 1).
	CoolingRate float64

	// MaxTemperature is simulated_annealing's starting temperature.
	MaxTemperature float64

	// MinTemperature is simulated_annealing's stopping temperature.
	MinTemperature float64

	// MutationProbability is genetic_algorithm's per-child mutation rate.
	MutationProbability float64

	// NElite is genetic_algorithm's elite carryover count per generation.
	NElite int

	// PopSize is genetic_algorithm's population size.
	PopSize int

	// TournamentK is genetic_algorithm's tournament selection size.
	TournamentK int

	// TabuCapacity bounds tabu_search's FIFO move memory. Zero means
	// "use N" (the specification's stated default).
	TabuCapacity int

	// BoundAlgo selects branch_bound's lower-bound strategy.
	BoundAlgo BoundAlgo

	// Eps is the minimal strictly-better improvement local search accepts;
	// guards against floating-point noise masquerading as progress.
	Eps float64

	// TimeLimit optionally bounds wall-clock time. Zero means "no limit"
	// for solvers that have another natural stopping condition (Epochs,
	// convergence, cooling to MinTemperature); it still bounds the
	// Epochs==0 stochastic solvers via an internal safety cap.
	TimeLimit time.Duration

	// Seed drives the one PRNG created at solve entry.
	Seed int64
}

// DefaultOptions returns Options populated with the specified defaults for
// every solver-specific field.
func DefaultOptions() Options {
	return Options{
		StartVertex:         0,
		Verbose:             false,
		Epochs:              DefaultEpochs,
		TwoOptMaxIters:      DefaultTwoOptMaxIters,
		PlateauEpochs:       DefaultPlateauEpochs,
		CoolingRate:         DefaultCoolingRate,
		MaxTemperature:      DefaultMaxTemperature,
		MinTemperature:      DefaultMinTemperature,
		MutationProbability: DefaultMutationProbability,
		NElite:              DefaultNElite,
		PopSize:             DefaultPopSize,
		TournamentK:         DefaultTournamentK,
		TabuCapacity:        0,
		BoundAlgo:           SimpleBound,
		Eps:                 DefaultEps,
		TimeLimit:           0,
		Seed:                0,
	}
}
