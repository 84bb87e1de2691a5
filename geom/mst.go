package geom

import "math"

// MSTLowerBound computes the total weight of a minimum spanning tree over
// the complete graph described by the n×n distance matrix dist, using
// Prim's algorithm grown from vertex 0.
//
// The MST weight is a lower bound on the optimal tour length and serves
// only as an external quality reference; the capacity harness never calls
// it.
//
// Returns ErrNonSquare for ragged input and ErrDisconnected when some
// vertex cannot be attached through a finite edge.
//
// Complexity: O(n²) time, O(n) extra space.
func MSTLowerBound(dist [][]float64) (float64, error) {
	n := len(dist)
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}
	if n < 2 {
		return 0, nil
	}

	var (
		inTree   = make([]bool, n)
		bestCost = make([]float64, n)
		total    float64
		v        int
	)
	for v = 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
	}
	bestCost[0] = 0

	// Grow the tree one vertex at a time, always attaching the cheapest
	// frontier vertex.
	var (
		it   int
		u    int
		minW float64
	)
	for it = 0; it < n; it++ {
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		if u < 0 {
			return 0, ErrDisconnected
		}

		inTree[u] = true
		total += minW

		for v = 0; v < n; v++ {
			if !inTree[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
			}
		}
	}

	return total, nil
}
