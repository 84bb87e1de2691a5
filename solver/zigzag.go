package solver

import "github.com/konard/sonar/geom"

// Zigzag straightens local zigzags in a single O(n) pass.
//
// For each interior position the two-edge path around it is compared
// against the reordering that swaps the visit pair; the swap is applied
// only when strictly cheaper. An applied swap consumes two positions, a
// rejected one advances by one. Wraparound interactions near the tour
// boundary can emit an id twice, so a trailing order-preserving
// deduplication pass restores the permutation invariant.
//
// points is indexed by city id (points[id].ID == id, as produced by
// scatter.Generate). The input tour is not mutated.
func Zigzag(points []geom.Point, tour []int) []int {
	n := len(tour)
	if n < 4 {
		out := make([]int, n)
		copy(out, tour)

		return out
	}

	// Materialize the tour as points in visiting order; the geometry test
	// below only needs coordinates of consecutive visits.
	ordered := make([]geom.Point, n)
	for k, id := range tour {
		ordered[k] = points[id]
	}

	next := make([]int, 0, n+2)

	i := 1
	for i < n {
		if n-i > 2 && shouldZigzag(ordered, i) {
			next = append(next,
				ordered[i-1].ID,
				ordered[(i+1)%n].ID,
				ordered[i%n].ID,
				ordered[(i+2)%n].ID,
			)
			i += 3
		} else {
			next = append(next, ordered[i-1].ID, ordered[i%n].ID)
			i++
		}
	}

	// Drop repeated ids introduced by the overlapping windows above,
	// keeping first occurrences in order.
	var (
		seen = make([]bool, n)
		out  = make([]int, 0, n)
	)
	for _, id := range next {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}

// shouldZigzag reports whether swapping the visit pair at position i
// strictly shortens the two edges around it.
func shouldZigzag(ordered []geom.Point, i int) bool {
	n := len(ordered)
	p1 := ordered[(i+n-1)%n]
	p2 := ordered[i%n]
	p3 := ordered[(i+1)%n]
	p4 := ordered[(i+2)%n]

	straight := geom.Distance(p1, p2) + geom.Distance(p3, p4)
	swapped := geom.Distance(p1, p3) + geom.Distance(p2, p4)

	return swapped < straight
}
