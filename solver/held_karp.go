package solver

import (
	"math"

	"github.com/konard/sonar/geom"
)

// HeldKarp finds the optimal tour over the first n cities of dist by
// subset dynamic programming.
//
// State: dp[mask][last-1] is the minimum cost of a path that starts at
// city 0, visits exactly the cities flagged in mask (a bit set over cities
// 1..n-1; bit i-1 stands for city i) and ends at last. Unreachable states
// keep the +Inf sentinel — absence of a path is never representable as
// cost zero, or reconstruction would silently produce broken tours.
//
// Masks are filled in increasing numeric order. Every transition reads
// prevMask = mask with the last bit cleared, which is strictly smaller, so
// each subset is complete before any superset consults it — the same
// invariant as enumerating subsets by increasing population count.
//
// parent[mask][last-1] records the predecessor achieving the minimum; the
// tour is reconstructed by walking it backward from the best closing state
// and prepending city 0.
//
// Complexity: O(2ⁿ · n²) time, O(2ⁿ · n) space. Practical for n ≤ 20,
// which is exactly why SolveExact refuses anything larger.
func HeldKarp(dist [][]float64, n int) (Solution, error) {
	if err := squareOrder(dist, n); err != nil {
		return Solution{}, err
	}
	switch n {
	case 0:
		return Solution{Tour: []int{}}, nil
	case 1:
		return Solution{Tour: []int{0}}, nil
	}

	// full covers all of 1..n-1.
	full := 1<<(n-1) - 1

	dp := make([][]float64, full+1)
	parent := make([][]int, full+1)

	var (
		mask int
		j    int
	)
	for mask = 0; mask <= full; mask++ {
		dp[mask] = make([]float64, n-1)
		parent[mask] = make([]int, n-1)
		for j = 0; j < n-1; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}

	// Base case: go straight from 0 to each city i.
	var i int
	for i = 1; i < n; i++ {
		dp[1<<(i-1)][i-1] = dist[0][i]
		parent[1<<(i-1)][i-1] = 0
	}

	// Transitions.
	var (
		last, prev     int
		bit, prevMask  int
		prevCost, cand float64
	)
	for mask = 1; mask <= full; mask++ {
		for last = 1; last < n; last++ {
			bit = 1 << (last - 1)
			if mask&bit == 0 {
				continue
			}
			prevMask = mask ^ bit
			if prevMask == 0 {
				continue // base case, already set
			}

			for prev = 1; prev < n; prev++ {
				if prevMask&(1<<(prev-1)) == 0 {
					continue
				}
				prevCost = dp[prevMask][prev-1]
				if math.IsInf(prevCost, 1) {
					continue // unreachable state; never treat as zero
				}

				cand = prevCost + dist[prev][last]
				if cand < dp[mask][last-1] {
					dp[mask][last-1] = cand
					parent[mask][last-1] = prev
				}
			}
		}
	}

	// Close the cycle back to 0 over every possible final city.
	var (
		bestCost = math.Inf(1)
		bestLast = -1
		total    float64
	)
	for last = 1; last < n; last++ {
		if math.IsInf(dp[full][last-1], 1) {
			continue
		}
		total = dp[full][last-1] + dist[last][0]
		if total < bestCost {
			bestCost = total
			bestLast = last
		}
	}
	if bestLast < 0 {
		return Solution{}, ErrIncompleteGraph
	}

	// Reconstruct by walking parents back to the base case.
	tour := make([]int, n)
	mask = full
	j = bestLast
	for i = n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask][j-1]
		mask ^= 1 << (j - 1)
		j = p
	}
	tour[0] = 0

	// The parent chain must land exactly on city 0 with an empty mask.
	if j != 0 || mask != 0 {
		return Solution{}, ErrIncompleteGraph
	}

	return Solution{Tour: tour, Cost: bestCost}, nil
}

// tourCost is the cyclic tour length used by the stochastic solvers when
// re-evaluating candidate tours.
func tourCost(tour []int, dist [][]float64) float64 {
	return geom.TourLength(tour, dist)
}
