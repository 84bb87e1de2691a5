package geom

// BuildDistanceMatrix computes the dense pairwise Euclidean distance matrix
// of points.
//
// Contract:
//   - result[i][j] == result[j][i] (each unordered pair is computed once),
//   - result[i][i] == 0,
//   - every point coordinate must be finite, otherwise ErrMalformedCoordinate.
//
// Complexity: O(n²) time and space.
func BuildDistanceMatrix(points []Point) ([][]float64, error) {
	n := len(points)

	var i int
	for i = 0; i < n; i++ {
		if !finiteCoord(points[i]) {
			return nil, ErrMalformedCoordinate
		}
	}

	dist := make([][]float64, n)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}

	// Fill the upper triangle and mirror it; the diagonal stays zero.
	var (
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist, nil
}

// TourLength sums the edge weights along tour, closing the cycle from the
// last visited city back to the first. An empty or single-city tour has
// length zero.
//
// Contract: every id in tour indexes dist; dist is square. Callers that
// construct tours through the solver package already guarantee this.
//
// Complexity: O(n).
func TourLength(tour []int, dist [][]float64) float64 {
	n := len(tour)
	if n < 2 {
		return 0
	}

	var (
		total float64
		k     int
	)
	for k = 0; k < n; k++ {
		total += dist[tour[k]][tour[(k+1)%n]]
	}

	return total
}
