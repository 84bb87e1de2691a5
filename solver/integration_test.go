package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/konard/sonar/geom"
	"github.com/konard/sonar/solver"
)

// TestHeuristics_BoundedByExactAndMST cross-checks the whole family on one
// instance small enough for the exact solvers: every heuristic tour costs
// at least the MST lower bound and at least the proven optimum.
func TestHeuristics_BoundedByExactAndMST(t *testing.T) {
	const n = 10
	pts, dist := randomInstance(t, n, 12345)

	exact, err := solver.SolveExact(dist, n)
	require.NoError(t, err)

	mst, err := geom.MSTLowerBound(dist)
	require.NoError(t, err)
	require.LessOrEqual(t, mst, exact.Cost+improveEps)

	nn, err := solver.NearestNeighbor(dist, n, 0)
	require.NoError(t, err)
	ge, err := solver.GreedyEdge(dist, n)
	require.NoError(t, err)

	tours := map[string][]int{
		"nearest-neighbor": nn,
		"greedy-edge":      ge,
		"angular-sort":     solver.AngularSort(pts),
		"sonar-sweep":      solver.SonarSweep(pts, 40),
		"two-opt":          solver.TwoOpt(dist, nn, 100),
		"zigzag":           solver.Zigzag(pts, solver.AngularSort(pts)),
		"annealing":        solver.Anneal(dist, nn, solver.DefaultAnnealConfig()),
		"genetic":          solver.Genetic(dist, n, solver.DefaultGeneticConfig()),
	}

	for name, tour := range tours {
		require.NoError(t, solver.ValidateTour(tour, n), name)

		cost := geom.TourLength(tour, dist)
		require.GreaterOrEqual(t, cost, exact.Cost-improveEps, name)
		require.GreaterOrEqual(t, cost, mst-improveEps, name)
	}
}

// TestEfficiency_AgainstOptimum ties the quality helper to the exact
// solver: efficiency is 100% at the optimum and below for longer tours.
func TestEfficiency_AgainstOptimum(t *testing.T) {
	const n = 9
	pts, dist := randomInstance(t, n, 42)

	exact, err := solver.SolveExact(dist, n)
	require.NoError(t, err)

	require.InDelta(t, 100.0, geom.Efficiency(exact.Cost, exact.Cost), 1e-9)

	angular := geom.TourLength(solver.AngularSort(pts), dist)
	require.LessOrEqual(t, geom.Efficiency(angular, exact.Cost), 100.0+1e-9)
}
