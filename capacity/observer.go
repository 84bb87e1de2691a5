package capacity

import (
	"log/slog"
	"time"
)

// Observer receives progress events from a capacity search. Implementations
// must not block for long; they run inline between probes.
type Observer interface {
	// OnProbe fires after each measured strategy invocation. within
	// reports whether the probe finished inside the timeout.
	OnProbe(strategy string, n int, elapsed time.Duration, within bool)
	// OnResult fires once per strategy with the settled result.
	OnResult(r Result)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) OnProbe(string, int, time.Duration, bool) {}
func (NopObserver) OnResult(Result)                          {}

// SlogObserver logs probes at debug level and results at info level
// through a structured logger.
type SlogObserver struct {
	Logger *slog.Logger
}

func (o SlogObserver) OnProbe(strategy string, n int, elapsed time.Duration, within bool) {
	o.Logger.Debug("probe",
		"strategy", strategy,
		"n", n,
		"elapsed", elapsed,
		"within", within)
}

func (o SlogObserver) OnResult(r Result) {
	if r.Err != nil {
		o.Logger.Warn("strategy failed", "strategy", r.Name, "err", r.Err)

		return
	}
	o.Logger.Info("result",
		"strategy", r.Name,
		"maxN", r.MaxSize,
		"elapsed", r.Elapsed)
}
