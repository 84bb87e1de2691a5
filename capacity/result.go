package capacity

import (
	"sort"
	"time"
)

// Result records the outcome of one capacity search: the strategy name,
// the largest feasible size found, and the elapsed time of the final
// verification run at that size. Err is non-nil only when the strategy
// itself failed (error return, invalid tour, or panic); a probe merely
// exceeding the timeout is not a failure. Results are immutable once
// constructed and consumed only by the reporting layer.
type Result struct {
	Name    string
	MaxSize int
	Elapsed time.Duration
	Err     error
}

// Rank sorts results by descending maximum feasible size, in place, and
// returns the slice. The sort is stable: ties keep their prior order.
func Rank(results []Result) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MaxSize > results[j].MaxSize
	})

	return results
}
