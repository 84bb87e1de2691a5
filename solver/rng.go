package solver

import "math/rand"

// defaultRNGSeed is the fixed seed used when a config passes Seed==0, so
// default-configured stochastic solvers are reproducible run to run.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for the given seed,
// mapping the zero seed to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffledRange returns a permutation of 0..n-1 produced by an in-place
// Fisher–Yates shuffle driven by rng.
//
// Complexity: O(n).
func shuffledRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
