// Package solver implements the tour-producing algorithm family benchmarked
// by the capacity harness: exact solvers (brute-force permutation search and
// Held–Karp dynamic programming), construction heuristics (nearest-neighbor,
// greedy-edge, angular-sort, sonar-sweep), local-search improvers (2-opt,
// zigzag) and metaheuristics (simulated annealing, genetic algorithm).
//
// Conventions shared by every solver:
//
//   - A tour is an open permutation of [0, n): each city id appears exactly
//     once and the cycle implicitly closes from the last id back to the
//     first. Degenerate inputs are handled uniformly — n==0 yields an empty
//     tour, n==1 yields a single-element tour.
//   - Distance matrices are plain [][]float64 built by geom: square,
//     symmetric, non-negative, zero diagonal.
//   - Solvers own their transient working state (visited flags, DP tables,
//     populations) for the duration of one call; nothing is shared across
//     calls.
//   - Tie-breaking on equal distances follows each solver's own scan order,
//     which is deterministic within a run.
//   - Stochastic solvers (simulated annealing, genetic) own an explicit
//     *rand.Rand seeded from their config; seed 0 selects a fixed default
//     stream, so nothing here depends on wall-clock entropy.
//
// Use SolveExact when an optimal tour is required: it dispatches by size
// and refuses instances beyond MaxExactSize rather than attempting a
// computation that cannot finish.
package solver
