package solver

import "math/rand"

// GeneticConfig controls the genetic-algorithm solver.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	// MutationRate is the per-offspring probability of a swap mutation.
	MutationRate float64
	// Seed selects the RNG stream; 0 means the fixed default stream.
	Seed int64
}

// DefaultGeneticConfig mirrors the benchmark suite's setup: population 50,
// 100 generations, 10% mutation.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.1,
	}
}

// Genetic evolves a population of random permutations and returns the best
// tour of the final generation.
//
// Each generation: fitness is the inverse tour length; parents are drawn
// by fitness-proportional roulette selection; offspring come from order
// crossover (a contiguous segment of parent 1, the rest filled in parent-2
// order); swap mutation hits with cfg.MutationRate; the single best
// individual is carried forward unchanged (elitism), so the best length
// never regresses between generations.
//
// The RNG is created here from cfg.Seed and threaded explicitly through
// selection, crossover and mutation — no shared state hides inside
// closures, so the random source's ownership is unambiguous. Any input
// tour a caller might hold is ignored: the population starts from scratch.
//
// Complexity: O(generations · population · n).
func Genetic(dist [][]float64, n int, cfg GeneticConfig) []int {
	switch n {
	case 0:
		return []int{}
	case 1:
		return []int{0}
	}
	if cfg.PopulationSize < 2 || cfg.Generations < 0 {
		cfg = DefaultGeneticConfig()
	}

	rng := rngFromSeed(cfg.Seed)

	population := make([][]int, cfg.PopulationSize)
	for i := range population {
		population[i] = shuffledRange(n, rng)
	}

	var (
		fitnesses = make([]float64, cfg.PopulationSize)
		gen       int
	)
	for gen = 0; gen < cfg.Generations; gen++ {
		var (
			total   float64
			bestIdx int
			i       int
		)
		for i = range population {
			fitnesses[i] = 1 / tourCost(population[i], dist)
			total += fitnesses[i]
			if fitnesses[i] > fitnesses[bestIdx] {
				bestIdx = i
			}
		}

		next := make([][]int, 0, cfg.PopulationSize)

		// Elitism: the incumbent survives verbatim (copied, so later
		// generations cannot alias into the old population).
		elite := make([]int, n)
		copy(elite, population[bestIdx])
		next = append(next, elite)

		for len(next) < cfg.PopulationSize {
			p1 := rouletteSelect(population, fitnesses, total, rng)
			p2 := rouletteSelect(population, fitnesses, total, rng)
			child := orderCrossover(p1, p2, rng)

			if rng.Float64() < cfg.MutationRate {
				swapMutate(child, rng)
			}

			next = append(next, child)
		}

		population = next
	}

	best := population[0]
	bestLen := tourCost(best, dist)
	for _, tour := range population[1:] {
		if l := tourCost(tour, dist); l < bestLen {
			best = tour
			bestLen = l
		}
	}

	return best
}

// rouletteSelect draws one individual with probability proportional to its
// fitness. Falls back to the last individual when rounding leaves the
// wheel pointer past the end.
func rouletteSelect(population [][]int, fitnesses []float64, total float64, rng *rand.Rand) []int {
	r := rng.Float64() * total
	for i, f := range fitnesses {
		r -= f
		if r <= 0 {
			return population[i]
		}
	}

	return population[len(population)-1]
}

// orderCrossover builds a child by copying a random contiguous segment of
// p1 and filling the remaining slots with p2's cities in p2 order,
// skipping cities the segment already used.
func orderCrossover(p1, p2 []int, rng *rand.Rand) []int {
	n := len(p1)
	start := rng.Intn(n)
	end := start + rng.Intn(n-start)

	var (
		child = make([]int, n)
		used  = make([]bool, n)
		i     int
	)
	for i = range child {
		child[i] = -1
	}
	for i = start; i <= end; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	idx := (end + 1) % n
	var city int
	for i = 0; i < n; i++ {
		city = p2[(end+1+i)%n]
		if !used[city] {
			child[idx] = city
			idx = (idx + 1) % n
		}
	}

	return child
}

// swapMutate exchanges two random positions in place.
func swapMutate(tour []int, rng *rand.Rand) {
	n := len(tour)
	i := rng.Intn(n)
	j := rng.Intn(n)
	tour[i], tour[j] = tour[j], tour[i]
}
