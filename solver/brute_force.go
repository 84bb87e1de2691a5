package solver

import "github.com/konard/sonar/geom"

// BruteForce finds the optimal tour over the first n cities of dist by
// exhaustive permutation search.
//
// City 0 is fixed as the start: a cycle is invariant under rotation, so
// fixing one city shrinks the search from n! to (n-1)! orderings. The
// remaining cities are enumerated with an iterative, counter-driven Heap
// permutation scheme — every transition is a single swap, with no
// recursion and no per-permutation allocation. Strictly lower cost
// replaces the incumbent; ties keep the first tour found.
//
// Complexity: O((n-1)! · n) time, O(n) extra space. Practical for n ≤ 10.
func BruteForce(dist [][]float64, n int) (Solution, error) {
	if err := squareOrder(dist, n); err != nil {
		return Solution{}, err
	}
	if n == 0 {
		return Solution{Tour: []int{}}, nil
	}

	cities := make([]int, n)
	for i := 0; i < n; i++ {
		cities[i] = i
	}
	best := make([]int, n)
	copy(best, cities)
	bestLen := geom.TourLength(best, dist)

	if n <= 2 {
		// A single city, or one pair: the identity order is the only cycle.
		return Solution{Tour: best, Cost: bestLen}, nil
	}

	// Heap's algorithm over the suffix cities[1:], iterative form. The
	// counter array c mirrors the recursion depth state; each step swaps
	// exactly two entries and re-evaluates the full cycle.
	var (
		suffix = cities[1:]
		m      = len(suffix)
		c      = make([]int, m)
		length float64
		i      int
	)

	for i = 0; i < m; {
		if c[i] < i {
			if i%2 == 0 {
				suffix[0], suffix[i] = suffix[i], suffix[0]
			} else {
				suffix[c[i]], suffix[i] = suffix[i], suffix[c[i]]
			}

			length = geom.TourLength(cities, dist)
			if length < bestLen {
				bestLen = length
				copy(best, cities)
			}

			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return Solution{Tour: best, Cost: bestLen}, nil
}
