// Package capacity finds, for each tour strategy, the largest problem size
// it can process within a wall-clock budget.
//
// The search is a hybrid probe: a growth phase increases the instance size
// aggressively while the strategy is far from the timeout (×2 under 1% of
// the budget, ×1.5 under 10%, +1 otherwise), then a binary search pins the
// exact boundary between the last feasible size and the first failure, and
// a final verification run produces the reported time. Every probe
// regenerates its instance from a fixed seed, so results are reproducible
// for a given size.
//
// The search itself is pure computation over a Strategy; progress and
// results reach the outside world only through the Observer interface, so
// the harness is testable without capturing console output. A probe that
// exceeds the timeout is the expected growth-terminating signal, never an
// error; a strategy that returns an error, produces a non-permutation, or
// panics is captured as a per-strategy Result.Err and the rest of the
// suite keeps running.
package capacity
