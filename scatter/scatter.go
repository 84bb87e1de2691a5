package scatter

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/konard/sonar/geom"
)

// Sampling-region shape: a disc of radius maxRadius about (center, center)
// inside the unit square. Grid cells whose center falls outside the disc
// are never used, which keeps angular density roughly uniform.
const (
	center    = 0.5
	maxRadius = 0.45
)

// Generate samples n points on a gridSize×gridSize normalized grid.
//
// Every cell center inside the sampling disc is a candidate position; the
// candidates are shuffled with a deterministic LCG stream derived from seed
// and the first n are taken. Each point gets its polar angle about the disc
// center precomputed (normalized to [0, 2π)) and a sequential ID starting
// at 0.
//
// If the disc holds fewer than n candidates, all of them are returned;
// callers that need exactly n points should size the grid accordingly
// (the harness uses GridSizeFor).
//
// Complexity: O(gridSize²) time and candidate space.
func Generate(n, gridSize int, seed uint64) []geom.Point {
	if n <= 0 || gridSize <= 0 {
		return nil
	}

	rng := newLCG(seed)
	gridStep := 1.0 / float64(gridSize)

	// Enumerate candidate positions row-major so the candidate order, and
	// therefore the shuffled selection, is fully determined by the seed.
	type candidate struct {
		x, y, angle float64
	}
	candidates := make([]candidate, 0, gridSize*gridSize)

	var (
		gx, gy             int
		x, y, dx, dy, dist float64
		angle              float64
	)
	for gx = 0; gx < gridSize; gx++ {
		for gy = 0; gy < gridSize; gy++ {
			x = (float64(gx) + 0.5) * gridStep
			y = (float64(gy) + 0.5) * gridStep
			dx = x - center
			dy = y - center
			dist = math.Sqrt(dx*dx + dy*dy)
			if dist > maxRadius {
				continue
			}

			angle = math.Atan2(dy, dx)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			candidates = append(candidates, candidate{x: x, y: y, angle: angle})
		}
	}

	// Fisher–Yates over the candidate set, driven by the LCG.
	var i, j int
	for i = len(candidates) - 1; i > 0; i-- {
		j = int(rng.next() * float64(i+1))
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	count := n
	if count > len(candidates) {
		count = len(candidates)
	}

	points := make([]geom.Point, count)
	for i = 0; i < count; i++ {
		points[i] = geom.Point{
			Coord: orb.Point{candidates[i].x, candidates[i].y},
			Angle: candidates[i].angle,
			ID:    i,
		}
	}

	return points
}

// GridSizeFor returns the sampling grid size the harness uses for a probe
// of size n: max(40, 2·⌊√n⌋). Scaling the grid with √n keeps spatial
// density roughly constant as instances grow.
func GridSizeFor(n int) int {
	g := 2 * int(math.Sqrt(float64(n)))
	if g < 40 {
		g = 40
	}

	return g
}
