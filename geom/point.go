package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a sampled city in the unit square.
//
// Coord holds the planar position. Angle is the polar angle of the point
// about the sampling-region center, normalized to [0, 2π), precomputed at
// generation time and immutable afterwards. ID is the stable identity that
// appears in output tours.
type Point struct {
	Coord orb.Point
	Angle float64
	ID    int
}

// X returns the horizontal coordinate.
func (p Point) X() float64 { return p.Coord.X() }

// Y returns the vertical coordinate.
func (p Point) Y() float64 { return p.Coord.Y() }

// Distance returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return planar.Distance(p.Coord, q.Coord)
}

// finiteCoord reports whether both coordinates of p are finite numbers.
func finiteCoord(p Point) bool {
	return !math.IsNaN(p.Coord.X()) && !math.IsInf(p.Coord.X(), 0) &&
		!math.IsNaN(p.Coord.Y()) && !math.IsInf(p.Coord.Y(), 0)
}
