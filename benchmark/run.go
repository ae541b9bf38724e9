package benchmark

import (
	"context"
	"fmt"

	"github.com/striprouter/stripbench/runner"
	"github.com/striprouter/stripbench/timing"
)

// Loop runs the configured number of repetitions one after another.
type Loop struct {
	runner   runner.Runner
	observer Observer
	clock    timing.Clock
}

// NewLoop returns a loop that invokes programs through r. A nil observer is replaced by NullObserver.
func NewLoop(r runner.Runner, observer Observer) *Loop {
	if observer == nil {
		observer = NullObserver{}
	}

	return &Loop{
		runner:   r,
		observer: observer,
	}
}

// WithClock replaces the wall clock used for measurements.
func (l *Loop) WithClock(clock timing.Clock) *Loop {
	l.clock = clock
	return l
}

// Run performs exactly cfg.RepeatCount() sequential invocations and returns the total time spent.
// Any launch failure or non-zero exit status aborts the remaining repetitions; no partial outcome is returned.
func (l *Loop) Run(ctx context.Context, cfg Config) (Outcome, error) {
	n := cfg.RepeatCount()
	if n <= 0 {
		return Outcome{}, fmt.Errorf("%w: got %d", ErrInvalidRepeatCount, n)
	}

	var (
		total     = timing.NewTimer(l.clock)
		collector = timing.NewDurationCollector(l.clock, n)
	)

	total.Start()

	for i := 1; i <= n; i++ {
		l.observer.RunStarted(i, n)

		collector.Start()

		status, err := l.runner.Run(ctx, cfg.BinaryPath(), cfg.Args(), cfg.WorkingDirectory())
		if err != nil {
			return Outcome{}, fmt.Errorf("run %d/%d of %v: %w", i, n, cfg.BinaryPath(), err)
		}

		if status != 0 {
			return Outcome{}, fmt.Errorf("%w: run %d/%d: %v exited with status %d", runner.ErrLaunch, i, n, cfg.BinaryPath(), status)
		}

		l.observer.RunFinished(i, n, collector.Stop())
	}

	total.Stop()

	return Outcome{
		Total:       total.Elapsed(),
		RepeatCount: n,
		Runs:        collector.Durations(),
	}, nil
}
