// Package solver_test — benchmarks for the solver hot paths.
//
// Policy:
//   - Deterministic instances from scatter with fixed seeds.
//   - All inputs built outside the timer; only the algorithmic core is measured.
//   - Sizes tuned to finish fast on CI while still exercising the machinery.
package solver_test

import (
	"testing"

	"github.com/konard/sonar/geom"
	"github.com/konard/sonar/scatter"
	"github.com/konard/sonar/solver"
)

// benchInstance builds a deterministic instance with its matrix, outside
// any benchmark timer.
func benchInstance(b *testing.B, n int) ([]geom.Point, [][]float64) {
	b.Helper()
	pts := scatter.Generate(n, scatter.GridSizeFor(n), 12345)
	dist, err := geom.BuildDistanceMatrix(pts)
	if err != nil {
		b.Fatalf("build matrix: %v", err)
	}

	return pts, dist
}

func BenchmarkBruteForce_n9(b *testing.B) {
	_, dist := benchInstance(b, 9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.BruteForce(dist, 9); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHeldKarp_n14(b *testing.B) {
	_, dist := benchInstance(b, 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.HeldKarp(dist, 14); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearestNeighbor_n1000(b *testing.B) {
	_, dist := benchInstance(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.NearestNeighbor(dist, 1000, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGreedyEdge_n500(b *testing.B) {
	_, dist := benchInstance(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.GreedyEdge(dist, 500); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTwoOpt_n200(b *testing.B) {
	_, dist := benchInstance(b, 200)
	initial, err := solver.NearestNeighbor(dist, 200, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = solver.TwoOpt(dist, initial, 100)
	}
}

func BenchmarkSonarSweep_n10000(b *testing.B) {
	pts := scatter.Generate(10_000, scatter.GridSizeFor(10_000), 12345)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = solver.SonarSweep(pts, 40)
	}
}
