// Package sonar is a capacity benchmark suite for Traveling-Salesman tour
// algorithms: it characterizes the largest problem size each algorithm can
// process within a fixed wall-clock budget, and supplies the exact and
// heuristic solvers being characterized.
//
// Packages:
//
//   - geom     — points, distances, dense distance matrices, tour length,
//     Prim MST lower bound.
//   - scatter  — reproducible random instance generation on a normalized
//     grid inside a disc.
//   - solver   — the algorithm family: brute force and Held-Karp exact
//     solvers, nearest-neighbor / greedy-edge / angular-sort / sonar-sweep
//     construction, 2-opt / zigzag / simulated-annealing improvement, and
//     a genetic algorithm.
//   - capacity — the adaptive capacity search harness, result ranking and
//     reporting.
//   - cmd      — the sonar CLI.
//
// The usual entry point is the CLI:
//
//	sonar run [timeout-seconds]
//
// which probes every strategy with growing instance sizes, binary-searches
// the feasibility boundary against the timeout, and prints a ranked table
// plus JSON records.
package sonar
