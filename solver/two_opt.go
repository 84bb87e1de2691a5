package solver

// TwoOpt improves a tour by first-improvement segment reversal.
//
// Each pass scans every non-adjacent edge pair (i,i+1), (j,j+1) of the
// cycle; when replacing them with (i,j), (i+1,j+1) is strictly cheaper,
// the segment between i+1 and j is reversed in place. Passes repeat until
// a full scan finds no improving move or maxPasses is reached
// (maxPasses ≤ 0 means no cap). Because only strictly improving reversals
// are applied, the result is never longer than the input.
//
// The input tour is not mutated; the improved copy is returned.
//
// Complexity: O(n²) candidate checks per pass, O(n) per applied reversal.
func TwoOpt(dist [][]float64, tour []int, maxPasses int) []int {
	n := len(tour)
	current := make([]int, n)
	copy(current, tour)
	if n < 4 {
		return current
	}

	var (
		improved = true
		passes   int
	)
	for improved && (maxPasses <= 0 || passes < maxPasses) {
		improved = false
		passes++

		var (
			i, j             int
			oldDist, newDist float64
		)
		for i = 0; i < n-1; i++ {
			for j = i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					// These two edges are adjacent through the cycle closure.
					continue
				}

				oldDist = dist[current[i]][current[i+1]] + dist[current[j]][current[(j+1)%n]]
				newDist = dist[current[i]][current[j]] + dist[current[i+1]][current[(j+1)%n]]

				if newDist < oldDist {
					reverseSegment(current, i+1, j)
					improved = true
				}
			}
		}
	}

	return current
}

// reverseSegment reverses tour[lo..hi] in place.
func reverseSegment(tour []int, lo, hi int) {
	for lo < hi {
		tour[lo], tour[hi] = tour[hi], tour[lo]
		lo++
		hi--
	}
}
