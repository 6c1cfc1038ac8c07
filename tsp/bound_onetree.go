// Package tsp — Held–Karp 1-tree (Lagrangian) lower bound.
//
// This module computes an admissible lower bound on OPT via the classical
// Held–Karp relaxation:
//
//   - Choose vertex r as the "root". For a multiplier vector π ∈ ℝⁿ define
//     reduced costs c'_ij = c_ij + π_i + π_j.
//   - Build a minimum 1-tree T(π): MST on V\{r} using c', plus the two
//     cheapest r-incident edges (w.r.t. c').
//   - Bound value (Lagrangian dual): L(π) = cost_c'(T(π)) − 2·Σ_i π_i.
//   - Update π by subgradient with components s_i = deg_T(i) − 2 (tour
//     feasibility requires deg(i)=2 for every i).
//
// L(π) is a valid lower bound on the optimal tour cost for every π, and is
// typically much tighter than the degree-1 relaxation branch_bound uses by
// default. This bound is offered as an opt-in (Options.BoundAlgo ==
// OneTreeBound), checked once at the search root.
//
// Complexity: O(iters·n²) time, O(n²) memory for dense weights.
//
// Determinism: no RNG; Prim and root-edge selection break ties by vertex
// index; the subgradient schedule is purely arithmetic.
package tsp

import (
	"math"
	"time"

	"github.com/tsproute/tsp/geom"
)

// OneTreeConfig controls the subgradient loop and optional wall-clock
// budget. A compact, deterministic default works well as a drop-in bound.
type OneTreeConfig struct {
	// MaxIter is the maximum number of subgradient iterations (≥ 1).
	MaxIter int
	// Alpha ∈ (0, 2): step scale.
	Alpha float64
	// UB is an optional incumbent (feasible tour) cost for adaptive steps.
	// If UB ≤ 0 or +Inf, the schedule ignores UB and uses a decreasing
	// sequence instead.
	UB float64
	// TimeLimit is an optional per-call wall-clock budget (0 disables
	// checks).
	TimeLimit time.Duration
}

// DefaultOneTreeConfig returns conservative defaults.
func DefaultOneTreeConfig() OneTreeConfig {
	return OneTreeConfig{
		MaxIter:   32,
		Alpha:     0.9,
		UB:        math.Inf(1),
		TimeLimit: 0,
	}
}

// OneTreeLowerBound computes the Held–Karp 1-tree lower bound using root as
// the distinguished vertex (usually Options.StartVertex).
//
// Returned bound is stabilized to 1e-9 for cross-platform consistency.
func OneTreeLowerBound(m *geom.Matrix, root int, cfg OneTreeConfig) (float64, error) {
	n := m.N()
	if root < 0 || root >= n {
		return 0, ErrStartOutOfRange
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 2 {
		cfg.Alpha = 0.9
	}

	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, err := edgeCost(m, i, j)
			if err != nil {
				return 0, err
			}
			w[i*n+j] = x
		}
	}

	eng := oneTreeEngine{
		n:      n,
		root:   root,
		w:      w,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}

	var useDeadline bool
	var deadline time.Time
	var tick uint64
	if cfg.TimeLimit > 0 && compatibleTimeBudget(cfg.TimeLimit) {
		useDeadline = true
		deadline = time.Now().Add(cfg.TimeLimit)
	}
	checkDeadline := func() bool {
		tick++
		if !useDeadline || (tick&2047) != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	var (
		bestLB = math.Inf(-1)
		haveUB bool
		usedUB float64
	)
	if !math.IsInf(cfg.UB, 0) && cfg.UB > 0 {
		haveUB = true
		usedUB = cfg.UB
	}

	for iter := 0; iter < cfg.MaxIter; iter++ {
		if checkDeadline() {
			return 0, ErrTimeBudgetExceeded
		}

		redCost, err := eng.buildOneTreeReduced()
		if err != nil {
			return 0, err
		}

		var sumPi float64
		for i := 0; i < n; i++ {
			sumPi += eng.pi[i]
		}
		lastBound := redCost - 2*sumPi
		if lastBound > bestLB {
			bestLB = lastBound
		}

		var norm2 float64
		for i := 0; i < n; i++ {
			degDiff := eng.deg[i] - 2
			norm2 += float64(degDiff * degDiff)
		}
		if norm2 == 0 {
			break
		}

		var step float64
		if haveUB {
			step = usedUB - lastBound
			if step < 0 {
				step = 0
			}
			step = cfg.Alpha * step / norm2
		} else {
			step = cfg.Alpha / (1.0 + float64(iter))
		}
		if step == 0 {
			break
		}

		for i := 0; i < n; i++ {
			eng.pi[i] += step * float64(eng.deg[i]-2)
		}
	}

	return round1e9(bestLB), nil
}

// oneTreeEngine holds mutable state for building 1-trees on reduced costs.
// Arrays are reused across iterations to avoid per-iteration allocations.
type oneTreeEngine struct {
	n    int
	root int
	w    []float64 // dense original costs c_ij, length n*n

	pi []float64 // Lagrange multipliers

	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func (e *oneTreeEngine) reduced(u, v int) float64 {
	return e.w[u*e.n+v] + e.pi[u] + e.pi[v]
}

func (e *oneTreeEngine) zeroDegrees() {
	for i := range e.deg {
		e.deg[i] = 0
	}
}

// buildOneTreeReduced builds a minimum 1-tree on reduced costs: an MST over
// V\{root} via Prim in O(n²), plus the two cheapest root edges. Fills e.deg
// and returns the reduced-cost total.
func (e *oneTreeEngine) buildOneTreeReduced() (float64, error) {
	inf := math.Inf(1)
	e.zeroDegrees()

	for v := 0; v < e.n; v++ {
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = inf
	}
	start := 0
	if start == e.root {
		start = 1
	}
	e.key[start] = 0

	var costReduced float64
	for iter := 0; iter < e.n-1; iter++ {
		best := -1
		for v := 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] || (e.key[v] == e.key[best] && v < best) {
				best = v
			}
		}
		if best == -1 || math.IsInf(e.key[best], 0) {
			return 0, ErrDimensionMismatch
		}

		e.inTree[best] = true
		if e.parent[best] != -1 {
			u := e.parent[best]
			c := e.reduced(best, u)
			costReduced += c
			e.deg[best]++
			e.deg[u]++
		}

		for v := 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] || v == best {
				continue
			}
			if c := e.reduced(best, v); c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	var m1, m2 float64 = inf, inf
	var m1To, m2To int = -1, -1
	for v := 0; v < e.n; v++ {
		if v == e.root {
			continue
		}
		c := e.reduced(e.root, v)
		if c < m1 || (c == m1 && v < m1To) {
			m2, m2To = m1, m1To
			m1, m1To = c, v
		} else if c < m2 || (c == m2 && v < m2To) {
			m2, m2To = c, v
		}
	}
	if math.IsInf(m1, 0) || math.IsInf(m2, 0) {
		return 0, ErrDimensionMismatch
	}

	costReduced += m1 + m2
	e.deg[e.root] += 2
	e.deg[m1To]++
	e.deg[m2To]++

	return costReduced, nil
}
