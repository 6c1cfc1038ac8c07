// Package tsp — k-d tree over a CoordinateSet, used to accelerate
// nearest-neighbor construction.
//
// The tree is built once from the full coordinate set and never mutated;
// "visiting" a city during tour construction is tracked by the caller in an
// external []bool rather than by flagging tree nodes, keeping NearestUnvisited
// safe to call from a single-threaded solver without touching tree state.
//
// Grounded in the functional-options shape used elsewhere in this package's
// ecosystem for k-d tree construction (NewKDTree(points, WithBackend(...),
// WithMetric(...))), simplified here to the one metric (Euclidean) and one
// backend (a balanced binary tree) this package needs.
package tsp

import (
	"sort"

	"github.com/tsproute/tsp/geom"
)

// kdNode is one node of the balanced k-d tree over 2-D points.
type kdNode struct {
	cityIdx int
	axis    int // 0 = split on X, 1 = split on Y
	left    *kdNode
	right   *kdNode
}

// KDTree indexes a CoordinateSet for nearest-neighbor queries.
type KDTree struct {
	cities geom.CoordinateSet
	root   *kdNode
}

// NewKDTree builds a balanced k-d tree over cities by recursively splitting
// on the median of alternating axes.
//
// Complexity: O(n log n) time, O(n) space.
func NewKDTree(cities geom.CoordinateSet) *KDTree {
	idxs := make([]int, len(cities))
	for i := range idxs {
		idxs[i] = i
	}
	t := &KDTree{cities: cities}
	t.root = t.build(idxs, 0)
	return t
}

func (t *KDTree) build(idxs []int, depth int) *kdNode {
	if len(idxs) == 0 {
		return nil
	}
	axis := depth % 2
	sort.Slice(idxs, func(i, j int) bool {
		if axis == 0 {
			return t.cities[idxs[i]].X < t.cities[idxs[j]].X
		}
		return t.cities[idxs[i]].Y < t.cities[idxs[j]].Y
	})

	mid := len(idxs) / 2
	node := &kdNode{cityIdx: idxs[mid], axis: axis}
	node.left = t.build(idxs[:mid], depth+1)
	node.right = t.build(idxs[mid+1:], depth+1)
	return node
}

// NearestUnvisited returns the closest city to q (by Euclidean distance)
// among those with visited[i] == false, excluding q itself; ties go to the
// lowest city index. ok is false if every city is visited.
//
// Complexity: O(log n) average, O(n) worst case (degenerate/adversarial
// inputs); the search still only ever visits candidates the pruning rule
// cannot rule out.
func (t *KDTree) NearestUnvisited(q int, visited []bool) (idx int, ok bool) {
	qc := t.cities[q]
	best := -1
	bestDist := 0.0

	var search func(n *kdNode)
	search = func(n *kdNode) {
		if n == nil {
			return
		}
		c := t.cities[n.cityIdx]
		if n.cityIdx != q && !visited[n.cityIdx] {
			d := sqDist(qc, c)
			if best == -1 || d < bestDist || (d == bestDist && n.cityIdx < best) {
				best = n.cityIdx
				bestDist = d
			}
		}

		var axisVal, qVal float64
		if n.axis == 0 {
			axisVal, qVal = c.X, qc.X
		} else {
			axisVal, qVal = c.Y, qc.Y
		}

		near, far := n.left, n.right
		if qVal > axisVal {
			near, far = n.right, n.left
		}
		search(near)

		diff := qVal - axisVal
		// Equality still searches the far side: it may hold an equally near
		// city with a lower index.
		if best == -1 || diff*diff <= bestDist {
			search(far)
		}
	}
	search(t.root)

	return best, best != -1
}

func sqDist(a, b geom.City) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
