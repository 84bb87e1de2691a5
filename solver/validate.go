package solver

// ValidateTour verifies that tour is a permutation of [0, n): length n,
// every id in range, no id repeated. This is the single output contract
// every solver in the package must satisfy.
//
// Complexity: O(n) time, O(n) extra space.
func ValidateTour(tour []int, n int) error {
	if len(tour) != n {
		return ErrInvalidTour
	}

	seen := make([]bool, n)

	var (
		i  int
		id int
	)
	for i = 0; i < n; i++ {
		id = tour[i]
		if id < 0 || id >= n {
			return ErrInvalidTour
		}
		if seen[id] {
			return ErrInvalidTour
		}
		seen[id] = true
	}

	return nil
}

// squareOrder checks that dist is an n×n matrix covering at least n cities
// and returns n. Solvers call this before touching dist.
func squareOrder(dist [][]float64, n int) error {
	if n < 0 || len(dist) < n {
		return ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		if len(dist[i]) < n {
			return ErrDimensionMismatch
		}
	}

	return nil
}
