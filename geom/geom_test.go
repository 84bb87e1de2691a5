package geom_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/konard/sonar/geom"
)

// unitSquare returns the four corners of the unit square; the optimal tour
// over them has length exactly 4.
func unitSquare() []geom.Point {
	return []geom.Point{
		{Coord: orb.Point{0, 0}, Angle: math.Pi, ID: 0},
		{Coord: orb.Point{1, 0}, Angle: 0, ID: 1},
		{Coord: orb.Point{1, 1}, Angle: math.Pi / 4, ID: 2},
		{Coord: orb.Point{0, 1}, Angle: math.Pi / 2, ID: 3},
	}
}

func TestDistance_Pythagorean(t *testing.T) {
	p := geom.Point{Coord: orb.Point{0, 0}}
	q := geom.Point{Coord: orb.Point{3, 4}}
	require.InDelta(t, 5.0, geom.Distance(p, q), 1e-9)
}

func TestBuildDistanceMatrix_SymmetricZeroDiagonal(t *testing.T) {
	dist, err := geom.BuildDistanceMatrix(unitSquare())
	require.NoError(t, err)
	require.Len(t, dist, 4)

	for i := 0; i < 4; i++ {
		require.Len(t, dist[i], 4)
		require.Zero(t, dist[i][i])
		for j := 0; j < 4; j++ {
			require.Equal(t, dist[i][j], dist[j][i], "dist[%d][%d]", i, j)
			require.GreaterOrEqual(t, dist[i][j], 0.0)
		}
	}

	// Adjacent corners are 1 apart, diagonals √2.
	require.InDelta(t, 1.0, dist[0][1], 1e-9)
	require.InDelta(t, math.Sqrt2, dist[0][2], 1e-9)
}

func TestBuildDistanceMatrix_RejectsNonFinite(t *testing.T) {
	pts := unitSquare()
	pts[2].Coord = orb.Point{math.NaN(), 1}

	_, err := geom.BuildDistanceMatrix(pts)
	require.ErrorIs(t, err, geom.ErrMalformedCoordinate)
}

func TestBuildDistanceMatrix_Empty(t *testing.T) {
	dist, err := geom.BuildDistanceMatrix(nil)
	require.NoError(t, err)
	require.Empty(t, dist)
}

func TestTourLength_ClosesCycle(t *testing.T) {
	dist, err := geom.BuildDistanceMatrix(unitSquare())
	require.NoError(t, err)

	require.InDelta(t, 4.0, geom.TourLength([]int{0, 1, 2, 3}, dist), 1e-9)
	// Crossing tour is strictly longer.
	require.Greater(t, geom.TourLength([]int{0, 2, 1, 3}, dist), 4.0)
}

func TestTourLength_Degenerate(t *testing.T) {
	require.Zero(t, geom.TourLength(nil, nil))
	require.Zero(t, geom.TourLength([]int{0}, [][]float64{{0}}))
}

func TestMSTLowerBound_UnitSquare(t *testing.T) {
	dist, err := geom.BuildDistanceMatrix(unitSquare())
	require.NoError(t, err)

	w, err := geom.MSTLowerBound(dist)
	require.NoError(t, err)
	// Three unit edges span the square.
	require.InDelta(t, 3.0, w, 1e-9)
	// And the bound holds against the known optimum.
	require.LessOrEqual(t, w, 4.0)
}

func TestMSTLowerBound_Disconnected(t *testing.T) {
	inf := math.Inf(1)
	dist := [][]float64{
		{0, inf},
		{inf, 0},
	}
	_, err := geom.MSTLowerBound(dist)
	require.ErrorIs(t, err, geom.ErrDisconnected)
}

func TestMSTLowerBound_Ragged(t *testing.T) {
	_, err := geom.MSTLowerBound([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, geom.ErrNonSquare)
}

func TestEfficiency(t *testing.T) {
	require.InDelta(t, 100.0, geom.Efficiency(4, 4), 1e-9)
	require.InDelta(t, 80.0, geom.Efficiency(5, 4), 1e-9)
	require.Zero(t, geom.Efficiency(0, 4))
}
