// Package tsp — Held–Karp exact solver (DP, O(n²·2ⁿ)).
//
// HeldKarp computes an optimal Hamiltonian cycle using the Held–Karp
// dynamic program over subsets of cities. Since this package only handles
// the symmetric Euclidean case, the ATSP branch the algorithm supports in
// general is dropped; otherwise the DP table layout and transition are
// unchanged.
//
// Behavior:
//   - A hard size limit, MaxHeldKarpN (20), bounds time/space: memory grows
//     as n·2ⁿ and becomes impractical well before 2ⁿ time does.
//   - If Options.TimeLimit > 0, a deadline is checked every 1024 DP
//     transitions.
//   - Final cost is stabilized to 1e-9 via round1e9.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory for the DP and parent tables.
package tsp

import (
	"math"
	"math/bits"
	"time"

	"github.com/tsproute/tsp/geom"
)

// HeldKarp runs the Held–Karp DP over m. Returns a proven-optimal Result.
func HeldKarp(m *geom.Matrix, opts Options) (Result, error) {
	n := m.N()
	if n > MaxHeldKarpN {
		return Result{}, ErrHeldKarpTooLarge
	}
	if err := validateCommon(n, opts); err != nil {
		return Result{}, err
	}

	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, err := edgeCost(m, i, j)
			if err != nil {
				return Result{}, err
			}
			w[i*n+j] = x
		}
	}

	var (
		useDeadline bool
		deadline    time.Time
		step        int
	)
	if compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	checkDeadline := func() bool {
		step++
		if !useDeadline || (step&1023) != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	// dp[mask*n+j]: min cost to visit "mask" (always containing start) and
	// end at j. parent[mask*n+j]: predecessor of j in that optimal path.
	totalMasks := 1 << uint(n)
	dp := make([]float64, totalMasks*n)
	parent := make([]int, totalMasks*n)
	for idx := range dp {
		dp[idx] = math.Inf(1)
		parent[idx] = -1
	}

	start := opts.StartVertex
	startBit := 1 << uint(start)
	baseMask := startBit
	dp[baseMask*n+start] = 0

	masksBySize := make([][]int, n+1)
	for mask := 0; mask < totalMasks; mask++ {
		if mask&startBit == 0 {
			continue
		}
		ps := bits.OnesCount(uint(mask))
		if ps >= 1 && ps <= n {
			masksBySize[ps] = append(masksBySize[ps], mask)
		}
	}

	for size := 2; size <= n; size++ {
		for _, mask := range masksBySize[size] {
			for j := 0; j < n; j++ {
				jbit := 1 << uint(j)
				if j == start || mask&jbit == 0 {
					continue
				}
				prev := mask ^ jbit

				best := math.Inf(1)
				argk := -1
				for k := 0; k < n; k++ {
					kbit := 1 << uint(k)
					if prev&kbit == 0 {
						continue
					}
					base := dp[prev*n+k]
					if math.IsInf(base, 1) {
						continue
					}
					cand := base + w[k*n+j]
					if cand < best {
						best = cand
						argk = k
					}
				}
				if argk >= 0 {
					dp[mask*n+j] = best
					parent[mask*n+j] = argk
				}

				if checkDeadline() {
					return Result{}, ErrTimeBudgetExceeded
				}
			}
		}
	}

	all := totalMasks - 1
	bestCost := math.Inf(1)
	last := -1
	for j := 0; j < n; j++ {
		if j == start {
			continue
		}
		base := dp[all*n+j]
		if math.IsInf(base, 1) {
			continue
		}
		total := base + w[j*n+start]
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestCost, 1) {
		return Result{}, ErrDimensionMismatch
	}

	tour := make(Tour, n)
	mask := all
	cur := last
	for idx := n - 1; idx >= 1; idx-- {
		tour[idx] = cur
		prev := parent[mask*n+cur]
		mask ^= 1 << uint(cur)
		cur = prev
	}
	tour[0] = start

	_ = tour.CanonicalizeOrientation()
	if err := tour.Validate(n); err != nil {
		return Result{}, err
	}

	return Result{Tour: tour, Cost: round1e9(bestCost), Optimal: true}, nil
}
