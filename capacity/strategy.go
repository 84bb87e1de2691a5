package capacity

import (
	"github.com/konard/sonar/geom"
	"github.com/konard/sonar/solver"
)

// RunFunc executes one strategy invocation over a freshly generated
// instance. dist is nil unless the strategy declared NeedsMatrix; points
// always carry precomputed angles. The returned tour must be a
// permutation of [0, n).
type RunFunc func(points []geom.Point, dist [][]float64, n int) ([]int, error)

// Strategy describes one benchmarked algorithm: its display name, the
// size range the search may probe, whether a distance matrix must be
// materialized for it, and the invocation itself.
//
// NeedsMatrix exists because building the matrix is itself O(n²); angle-
// and sweep-based strategies scale far past the point where that build
// would dominate, so they are handed nil instead.
type Strategy struct {
	Name        string
	MinSize     int
	MaxSize     int
	NeedsMatrix bool
	Run         RunFunc
}

// DefaultSuite returns the ten benchmark strategies with their hard-coded
// practical size ranges: exact solvers capped where factorial/exponential
// growth bites, fast sweeps allowed into the hundreds of thousands.
func DefaultSuite() []Strategy {
	return []Strategy{
		{
			Name:        "BruteForce (bruteForceExact)",
			MinSize:     4,
			MaxSize:     12,
			NeedsMatrix: true,
			Run: func(_ []geom.Point, dist [][]float64, n int) ([]int, error) {
				sol, err := solver.BruteForce(dist, n)

				return sol.Tour, err
			},
		},
		{
			Name:        "BruteForce (heldKarp)",
			MinSize:     4,
			MaxSize:     20,
			NeedsMatrix: true,
			Run: func(_ []geom.Point, dist [][]float64, n int) ([]int, error) {
				sol, err := solver.HeldKarp(dist, n)

				return sol.Tour, err
			},
		},
		{
			Name:    "AngularSort",
			MinSize: 50_000,
			MaxSize: 500_000,
			Run: func(points []geom.Point, _ [][]float64, _ int) ([]int, error) {
				return solver.AngularSort(points), nil
			},
		},
		{
			Name:    "SonarVisit",
			MinSize: 50_000,
			MaxSize: 500_000,
			Run: func(points []geom.Point, _ [][]float64, _ int) ([]int, error) {
				return solver.SonarSweep(points, 40), nil
			},
		},
		{
			Name:        "NearestNeighbor",
			MinSize:     10,
			MaxSize:     10_000,
			NeedsMatrix: true,
			Run: func(_ []geom.Point, dist [][]float64, n int) ([]int, error) {
				return solver.NearestNeighbor(dist, n, 0)
			},
		},
		{
			Name:        "GreedyEdge",
			MinSize:     10,
			MaxSize:     5_000,
			NeedsMatrix: true,
			Run: func(_ []geom.Point, dist [][]float64, n int) ([]int, error) {
				return solver.GreedyEdge(dist, n)
			},
		},
		{
			Name:        "TwoOpt (with NearestNeighbor)",
			MinSize:     10,
			MaxSize:     3_000,
			NeedsMatrix: true,
			Run: func(_ []geom.Point, dist [][]float64, n int) ([]int, error) {
				initial, err := solver.NearestNeighbor(dist, n, 0)
				if err != nil {
					return nil, err
				}

				return solver.TwoOpt(dist, initial, 100), nil
			},
		},
		{
			// Neither the angular seed tour nor zigzag itself compares
			// matrix entries, so no matrix is materialized for this one.
			Name:    "Zigzag (with AngularSort)",
			MinSize: 10,
			MaxSize: 5_000,
			Run: func(points []geom.Point, _ [][]float64, _ int) ([]int, error) {
				return solver.Zigzag(points, solver.AngularSort(points)), nil
			},
		},
		{
			Name:        "SimulatedAnnealing (with NearestNeighbor, 5000 iterations)",
			MinSize:     10,
			MaxSize:     5_000,
			NeedsMatrix: true,
			Run: func(_ []geom.Point, dist [][]float64, n int) ([]int, error) {
				initial, err := solver.NearestNeighbor(dist, n, 0)
				if err != nil {
					return nil, err
				}

				return solver.Anneal(dist, initial, solver.DefaultAnnealConfig()), nil
			},
		},
		{
			Name:        "GeneticAlgorithm (pop=50, gen=100)",
			MinSize:     10,
			MaxSize:     1_000,
			NeedsMatrix: true,
			Run: func(_ []geom.Point, dist [][]float64, n int) ([]int, error) {
				return solver.Genetic(dist, n, solver.DefaultGeneticConfig()), nil
			},
		},
	}
}
