package transform

import (
	"context"
	"log/slog"
	"time"

	"github.com/leapstack-labs/treekit/pkg/tree"
)

// TimingSink receives one observation per Timed invocation. Sinks are
// injected rather than written to a global side channel, so timing output
// stays interceptable by tests and embedders.
type TimingSink func(label string, elapsed time.Duration)

// Timed invokes fn, measures the wall-clock duration spanning the whole
// invocation, reports it to sink, and returns fn's result unchanged. The
// duration is reported even when fn fails. A nil sink disables reporting.
func Timed(fn Func, label string, sink TimingSink) Func {
	return func(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
		start := time.Now()
		res, err := fn(ctx, t)
		if sink != nil {
			sink(label, time.Since(start))
		}
		return res, err
	}
}

// SlogSink returns a TimingSink that logs each observation at info level.
func SlogSink(logger *slog.Logger) TimingSink {
	return func(label string, elapsed time.Duration) {
		logger.Info("transform completed",
			"label", label,
			"duration_ms", elapsed.Milliseconds(),
		)
	}
}
