// Package tsp provides eight solvers for the symmetric Euclidean Traveling
// Salesman Problem over a geom.Matrix, behind a single dispatcher (Solve),
// with strict sentinel errors, deterministic behavior, and stable cost
// rounding (1e-9).
//
// # Solvers
//
//	nearest_neighbor     — greedy construction, k-d tree accelerated.
//	two_opt              — deterministic first-improvement local search.
//	stochastic_hill      — random position-swap probing with plateau restarts.
//	simulated_annealing  — 2-opt-neighborhood annealing, Metropolis acceptance.
//	tabu_search          — 2-opt-neighborhood search with FIFO move memory.
//	genetic_algorithm    — population search: tournament select, OX1 crossover,
//	                        swap mutation, elitism.
//	branch_bound         — exact DFS with a degree-1 (or opt-in 1-tree) bound.
//	bellman_karp         — exact Held–Karp dynamic program.
//
// Only branch_bound and bellman_karp return a Result with Optimal == true.
//
// # Determinism
//
// No solver reads the system clock for randomness. Every randomized solver
// draws from one *rand.Rand seeded by Options.Seed; Seed == 0 still yields
// a fixed, documented stream. Tie-breaks use city index. Costs are rounded
// to 1e-9 (round1e9) to avoid cross-platform floating-point drift.
//
// # Options
//
// A single Options struct covers every solver's parameter bag; each solver
// reads only the subset relevant to it (see validate.go for the exact
// ranges enforced per solver). DefaultOptions returns the specified
// defaults.
//
// # Errors
//
// ErrDimensionMismatch, ErrStartOutOfRange, ErrUnknownSolver,
// ErrUnknownParameter, ErrHeldKarpTooLarge, ErrNonFiniteDistance,
// ErrTimeBudgetExceeded. Solve wraps these with the requested solver name
// at its one error boundary; individual solver files return bare
// sentinels.
//
// # Mathematics
//
//	2-opt delta:      Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//	Held–Karp 1-tree: L(π) = cost_c'(T(π)) − 2·Σπ_i,  c'_ij = c_ij + π_i + π_j
//
// Costs are stabilized by round1e9 for cross-platform reproducibility.
package tsp
