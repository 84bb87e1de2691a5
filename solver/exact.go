package solver

// Size caps for the exact family. Brute force explodes factorially and
// Held-Karp exponentially; past MaxExactSize the DP table alone no longer
// fits in reasonable memory.
const (
	// MaxBruteForceSize is the largest instance routed to BruteForce.
	MaxBruteForceSize = 10
	// MaxExactSize is the largest instance any exact solver will attempt.
	MaxExactSize = 20
)

// SolveExact returns the optimal tour over the first n cities of dist,
// dispatching by size:
//
//   - n ≤ MaxBruteForceSize: brute-force permutation search,
//   - n ≤ MaxExactSize: Held-Karp dynamic programming,
//   - otherwise: ErrExactInfeasible, without attempting the computation.
//
// Callers must check the error before using the Solution; an infeasible
// size yields the zero Solution, not a partial result.
func SolveExact(dist [][]float64, n int) (Solution, error) {
	if n > MaxExactSize {
		return Solution{}, ErrExactInfeasible
	}
	if n <= MaxBruteForceSize {
		return BruteForce(dist, n)
	}

	return HeldKarp(dist, n)
}
