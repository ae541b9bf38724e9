// Package stripbench measures the average wall-clock time of repeated strip router runs
// and appends the result to a benchmark log.
package stripbench

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/striprouter/stripbench/benchmark"
	"github.com/striprouter/stripbench/cpu"
	"github.com/striprouter/stripbench/logging"
	"github.com/striprouter/stripbench/reporter"
	"github.com/striprouter/stripbench/runner"
	"github.com/striprouter/stripbench/timing"
)

// Identifier reports the CPU a benchmark runs on.
type Identifier interface {
	Identify() (cpu.Identity, error)
}

// Harness runs a benchmark and records its result.
type Harness struct {
	identifier Identifier
	runner     runner.Runner
	observer   benchmark.Observer
	clock      timing.Clock

	// logFile must succeed for a run to count; echo failures are only logged.
	logFile *reporter.LogFileReporter
	echo    reporter.ResultReporter

	// out receives progress and result lines meant for the operator.
	out io.Writer
}

// New creates a harness which appends results to the log file at logPath.
func New(logPath string, withOpt ...Option) (*Harness, error) {
	builder, err := newBuilder(logPath)
	if err != nil {
		return nil, err
	}

	for _, opt := range withOpt {
		opt.config(builder)
	}

	return builder.build()
}

// Run identifies the CPU, runs the benchmark and writes the result record.
// No record is written unless every repetition succeeded.
func (h *Harness) Run(ctx context.Context, cfg benchmark.Config) (reporter.Record, error) {
	entry := logrus.WithFields(logrus.Fields{
		"benchID": uuid.NewString(),
		"binary":  cfg.BinaryPath(),
		"repeat":  cfg.RepeatCount(),
	})

	entry.Debug("Identifying CPU")

	var (
		identity cpu.Identity
		err      error
	)

	logging.DoAnnotate(ctx, func(context.Context) {
		identity, err = h.identifier.Identify()
	}, map[string]any{"stage": "identify"})

	if err != nil {
		return reporter.Record{}, fmt.Errorf("identify cpu: %w", err)
	}

	entry = entry.WithField("cpu", identity.Brand)
	entry.WithField("hz", identity.ActualHz).Debug("Starting benchmark")

	var outcome benchmark.Outcome

	loop := benchmark.NewLoop(h.runner, benchmark.MultiObserver{h.observer, benchmark.NewLogObserver(entry)}).WithClock(h.clock)

	logging.DoAnnotate(ctx, func(ctx context.Context) {
		outcome, err = loop.Run(ctx, cfg)
	}, map[string]any{"stage": "benchmark"})

	if err != nil {
		return reporter.Record{}, fmt.Errorf("run benchmark: %w", err)
	}

	report := &reporter.Report{
		Record:  reporter.NewRecord(outcome, identity),
		Outcome: outcome,
	}

	entry.WithField("total", outcome.Total).Debug("Benchmark finished")

	logging.DoAnnotate(ctx, func(context.Context) {
		err = h.report(entry, report)
	}, map[string]any{"stage": "report"})

	if err != nil {
		return reporter.Record{}, err
	}

	return report.Record, nil
}

// report appends the record to the log file, then echoes it. Only the append can fail the run.
func (h *Harness) report(entry *logrus.Entry, report *reporter.Report) error {
	if err := h.logFile.ProduceReport(report); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if err := h.echo.ProduceReport(report); err != nil {
		entry.WithError(err).Warn("Failed to echo the result")
	}

	if _, err := fmt.Fprintf(h.out, "Result added to benchmark file. path=\"%v\"\n", h.logFile.Path()); err != nil {
		entry.WithError(err).Warn("Failed to print the confirmation")
	}

	return nil
}
