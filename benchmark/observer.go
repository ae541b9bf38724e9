package benchmark

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Observer is notified around every invocation of the benchmarked program.
// Indices are 1-based.
type Observer interface {
	RunStarted(index, total int)
	RunFinished(index, total int, elapsed time.Duration)
}

// NullObserver ignores all notifications.
type NullObserver struct{}

func (NullObserver) RunStarted(int, int) {}

func (NullObserver) RunFinished(int, int, time.Duration) {}

// ProgressPrinter writes a "<index> / <total>" line before each invocation.
type ProgressPrinter struct {
	w io.Writer
}

func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{w: w}
}

func (p *ProgressPrinter) RunStarted(index, total int) {
	fmt.Fprintf(p.w, "%d / %d\n", index, total)
}

func (*ProgressPrinter) RunFinished(int, int, time.Duration) {}

// LogObserver emits a debug entry for every finished invocation.
type LogObserver struct {
	entry *logrus.Entry
}

func NewLogObserver(entry *logrus.Entry) *LogObserver {
	return &LogObserver{entry: entry}
}

func (o *LogObserver) RunStarted(index, total int) {
	o.entry.WithField("run", index).WithField("total", total).Debug("Starting run")
}

func (o *LogObserver) RunFinished(index, total int, elapsed time.Duration) {
	o.entry.WithFields(logrus.Fields{
		"run":     index,
		"total":   total,
		"elapsed": elapsed,
	}).Debug("Run finished")
}

// MultiObserver forwards notifications to each observer in order.
type MultiObserver []Observer

func (m MultiObserver) RunStarted(index, total int) {
	for _, o := range m {
		o.RunStarted(index, total)
	}
}

func (m MultiObserver) RunFinished(index, total int, elapsed time.Duration) {
	for _, o := range m {
		o.RunFinished(index, total, elapsed)
	}
}
