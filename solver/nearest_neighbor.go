package solver

import "math"

// NearestNeighbor builds a tour greedily: starting from start, repeatedly
// move to the closest city not yet visited. Equal distances resolve to the
// lowest city index, a consequence of the fixed scan order.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist [][]float64, n, start int) ([]int, error) {
	if err := squareOrder(dist, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n)
		current = start
	)
	tour = append(tour, current)
	visited[current] = true

	var (
		next        int
		nearestDist float64
		i           int
	)
	for len(tour) < n {
		next = -1
		nearestDist = math.Inf(1)
		for i = 0; i < n; i++ {
			if !visited[i] && dist[current][i] < nearestDist {
				next = i
				nearestDist = dist[current][i]
			}
		}
		if next < 0 {
			// Only possible with infinite distances; the matrix is not complete.
			return nil, ErrIncompleteGraph
		}

		tour = append(tour, next)
		visited[next] = true
		current = next
	}

	return tour, nil
}
