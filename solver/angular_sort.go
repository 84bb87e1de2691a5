package solver

import (
	"sort"

	"github.com/konard/sonar/geom"
)

// AngularSort orders cities by their precomputed polar angle about the
// sampling-region center. A fast, low-quality baseline: the tour sweeps
// once around the center. The sort is stable, so equal angles keep their
// input order.
//
// Complexity: O(n log n).
func AngularSort(points []geom.Point) []int {
	sorted := make([]geom.Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Angle < sorted[j].Angle })

	tour := make([]int, len(sorted))
	for i, p := range sorted {
		tour[i] = p.ID
	}

	return tour
}
