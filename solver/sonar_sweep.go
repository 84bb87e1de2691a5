package solver

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/konard/sonar/geom"
)

// regionCenter is the center of the sampling disc; sweep radii are measured
// from here.
var regionCenter = orb.Point{0.5, 0.5}

// SonarSweep builds a tour by a single 360° sweep: the angular domain is
// split into 4·gridSize fixed buckets, every city lands in the bucket of
// its precomputed angle, cities inside one bucket are ordered by distance
// from the region center, and the buckets are concatenated in angular
// order.
//
// With the bucket count fixed by gridSize the work per city is constant,
// so the sweep is effectively O(n) — the only strategy in the family whose
// cost does not grow superlinearly. The result is a pure function of point
// angles and radii: repeated runs over the same input produce the same
// assignment and ordering.
func SonarSweep(points []geom.Point, gridSize int) []int {
	if gridSize < 1 {
		gridSize = 1
	}

	var (
		angleSteps = 4 * gridSize
		angleStep  = 2 * math.Pi / float64(angleSteps)
		buckets    = make([][]geom.Point, angleSteps)
	)

	var (
		angle float64
		idx   int
	)
	for _, p := range points {
		angle = p.Angle
		if angle < 0 {
			angle += 2 * math.Pi
		}
		idx = int(angle / angleStep)
		if idx >= angleSteps {
			// Angle of exactly 2π after float rounding; fold into the last bucket.
			idx = angleSteps - 1
		}
		buckets[idx] = append(buckets[idx], p)
	}

	radius := func(p geom.Point) float64 { return planar.Distance(p.Coord, regionCenter) }

	tour := make([]int, 0, len(points))
	for idx = 0; idx < angleSteps; idx++ {
		bucket := buckets[idx]
		sort.SliceStable(bucket, func(i, j int) bool { return radius(bucket[i]) < radius(bucket[j]) })
		for _, p := range bucket {
			tour = append(tour, p.ID)
		}
	}

	return tour
}
