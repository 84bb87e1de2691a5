package solver_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/konard/sonar/geom"
	"github.com/konard/sonar/scatter"
)

// unitSquare returns the four corners of the unit square; the optimal tour
// over them is the perimeter, length exactly 4.
func unitSquare() []geom.Point {
	return []geom.Point{
		{Coord: orb.Point{0, 0}, Angle: math.Pi, ID: 0},
		{Coord: orb.Point{1, 0}, Angle: 0, ID: 1},
		{Coord: orb.Point{1, 1}, Angle: math.Pi / 4, ID: 2},
		{Coord: orb.Point{0, 1}, Angle: math.Pi / 2, ID: 3},
	}
}

// mustMatrix builds the distance matrix of pts or fails the test.
func mustMatrix(t *testing.T, pts []geom.Point) [][]float64 {
	t.Helper()
	dist, err := geom.BuildDistanceMatrix(pts)
	require.NoError(t, err)

	return dist
}

// randomInstance generates a reproducible scatter instance with its matrix.
func randomInstance(t *testing.T, n int, seed uint64) ([]geom.Point, [][]float64) {
	t.Helper()
	pts := scatter.Generate(n, scatter.GridSizeFor(n), seed)
	require.Len(t, pts, n)

	return pts, mustMatrix(t, pts)
}

// permutations feeds every permutation of [0, n) to fn. Intended for tiny n.
func permutations(n int, fn func(perm []int)) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			cp := make([]int, n)
			copy(cp, perm)
			fn(cp)

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			recurse(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	recurse(0)
}
