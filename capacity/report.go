package capacity

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Record is the machine-readable form of a Result, in the wire shape
// consumed by downstream tooling.
type Record struct {
	Name   string  `json:"name"`
	MaxN   int     `json:"maxN"`
	TimeMs float64 `json:"timeMs"`
	Error  string  `json:"error,omitempty"`
}

// Records converts results in order, preserving the ranking.
func Records(results []Result) []Record {
	records := make([]Record, len(results))
	for i, r := range results {
		records[i] = Record{
			Name:   r.Name,
			MaxN:   r.MaxSize,
			TimeMs: float64(r.Elapsed) / float64(time.Millisecond),
		}
		if r.Err != nil {
			records[i].Error = r.Err.Error()
		}
	}

	return records
}

// WriteTable renders the ranked human-readable summary table.
func WriteTable(w io.Writer, results []Result, timeout time.Duration) error {
	rule := strings.Repeat("=", 80)

	if _, err := fmt.Fprintf(w, "\n%s\n\nSUMMARY (timeout: %s)\n%s\n\n", rule, timeout, rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-52s | %5s | %10s\n", "Algorithm", "Max N", "Time (ms)"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 80)); err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "%-52s | %5s | FAILED: %v\n", r.Name, "-", r.Err); err != nil {
				return err
			}

			continue
		}
		ms := float64(r.Elapsed) / float64(time.Millisecond)
		if _, err := fmt.Fprintf(w, "%-52s | %5d | %10.2f\n", r.Name, r.MaxSize, ms); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", rule)

	return err
}

// WriteJSON renders the results as an indented JSON array of Records, in
// the same order as the table.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(Records(results))
}
