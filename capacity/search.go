package capacity

import (
	"fmt"
	"math"
	"time"

	"github.com/konard/sonar/geom"
	"github.com/konard/sonar/scatter"
	"github.com/konard/sonar/solver"
)

// Defaults for Config zero values.
const (
	// DefaultTimeout is the per-probe wall-clock budget.
	DefaultTimeout = 30 * time.Second
	// DefaultSeed drives instance generation; fixed so published numbers
	// are comparable across runs.
	DefaultSeed uint64 = 12345
)

// Config controls a capacity search. Zero values select the defaults
// above.
type Config struct {
	Timeout time.Duration
	Seed    uint64
}

// Search locates the largest size in [st.MinSize, st.MaxSize] that st
// completes within cfg.Timeout.
//
// Phases:
//
//  1. Growth — probe sizes advance by a tiered step (×2 while elapsed is
//     under 1% of the timeout, ×1.5 under 10%, +1 otherwise, clamped to
//     MaxSize, with a forced +1 whenever the step stalls) until a probe
//     overruns the timeout or the cap is reached.
//  2. Binary refinement between the last feasible size and the first
//     failure until the gap closes to one.
//  3. A final verification run at the settled size supplies the reported
//     elapsed time.
//
// Every probe generates a fresh instance from cfg.Seed with the grid
// scaled to the probe size, builds the distance matrix only when the
// strategy asks for it, and times the strategy invocation alone — never
// the instance or matrix construction. Timing uses the monotonic clock
// around the whole invocation.
//
// A strategy failure (error, invalid tour, panic) aborts only this
// strategy's search and is reported in Result.Err.
func Search(st Strategy, cfg Config, obs Observer) Result {
	if obs == nil {
		obs = NopObserver{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	var (
		best = st.MinSize
		n    = st.MinSize

		elapsed time.Duration
		err     error
	)

	// --- 1. Growth phase ---
	for n <= st.MaxSize {
		elapsed, err = probe(st, n, seed)
		if err != nil {
			return failed(st, n, err, obs)
		}
		obs.OnProbe(st.Name, n, elapsed, elapsed <= timeout)

		if elapsed > timeout {
			break
		}
		best = n

		switch {
		case elapsed < timeout/100:
			n = clamp(n*2, st.MaxSize)
		case elapsed < timeout/10:
			n = clamp(int(math.Ceil(float64(n)*1.5)), st.MaxSize)
		default:
			n++
		}
		// A clamped multiplicative step can stall at the current best;
		// force progress so the loop always terminates.
		if n == best {
			n++
		}
	}

	// --- 2. Binary-search refinement ---
	low, high := best, clamp(n, st.MaxSize)
	for low < high-1 {
		mid := (low + high) / 2

		elapsed, err = probe(st, mid, seed)
		if err != nil {
			return failed(st, mid, err, obs)
		}
		obs.OnProbe(st.Name, mid, elapsed, elapsed <= timeout)

		if elapsed <= timeout {
			low = mid
		} else {
			high = mid
		}
	}

	// --- 3. Final verification at the settled size ---
	elapsed, err = probe(st, low, seed)
	if err != nil {
		return failed(st, low, err, obs)
	}
	obs.OnProbe(st.Name, low, elapsed, elapsed <= timeout)

	res := Result{Name: st.Name, MaxSize: low, Elapsed: elapsed}
	obs.OnResult(res)

	return res
}

// Run searches every strategy sequentially and returns the results ranked
// by descending maximum feasible size.
func Run(strategies []Strategy, cfg Config, obs Observer) []Result {
	results := make([]Result, 0, len(strategies))
	for _, st := range strategies {
		results = append(results, Search(st, cfg, obs))
	}

	return Rank(results)
}

// probe generates a fresh instance of size n, runs the strategy once and
// measures the invocation alone.
func probe(st Strategy, n int, seed uint64) (time.Duration, error) {
	points := scatter.Generate(n, scatter.GridSizeFor(n), seed)

	var dist [][]float64
	if st.NeedsMatrix {
		var err error
		dist, err = geom.BuildDistanceMatrix(points)
		if err != nil {
			return 0, err
		}
	}

	start := time.Now()
	tour, err := invoke(st, points, dist, len(points))
	elapsed := time.Since(start)

	if err != nil {
		return elapsed, err
	}
	if verr := solver.ValidateTour(tour, len(points)); verr != nil {
		return elapsed, fmt.Errorf("strategy returned invalid tour: %w", verr)
	}

	return elapsed, nil
}

// invoke runs the strategy with panic capture, so one crashing strategy
// cannot take down the whole benchmark.
func invoke(st Strategy, points []geom.Point, dist [][]float64, n int) (tour []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy panicked: %v", r)
		}
	}()

	return st.Run(points, dist, n)
}

// failed wraps a strategy-level error into a terminal Result.
func failed(st Strategy, n int, err error, obs Observer) Result {
	res := Result{
		Name: st.Name,
		Err:  fmt.Errorf("%s at n=%d: %w", st.Name, n, err),
	}
	obs.OnResult(res)

	return res
}

func clamp(n, max int) int {
	if n > max {
		return max
	}

	return n
}
