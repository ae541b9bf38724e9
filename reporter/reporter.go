// Package reporter formats benchmark results and writes them out.
package reporter

import (
	"fmt"
	"io"
	"time"

	"github.com/bradenaw/juniper/xslices"
	"github.com/striprouter/stripbench/benchmark"
)

// Report is everything known about a finished benchmark.
type Report struct {
	Record  Record
	Outcome benchmark.Outcome
}

// ResultReporter is the interface that is required to be implemented by any result sink.
type ResultReporter interface {
	ProduceReport(report *Report) error
}

// StdOutReporter prints the record line, and the time of every run when verbose.
type StdOutReporter struct {
	w       io.Writer
	verbose bool
}

func NewStdOutReporter(w io.Writer, verbose bool) *StdOutReporter {
	return &StdOutReporter{w: w, verbose: verbose}
}

func (r *StdOutReporter) ProduceReport(report *Report) error {
	if r.verbose {
		runs := xslices.Map(report.Outcome.Runs, func(d time.Duration) string {
			return d.Round(time.Millisecond).String()
		})

		for i, v := range runs {
			if _, err := fmt.Fprintf(r.w, "Run %02d - %v\n", i+1, v); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(r.w, "Total - %v\n", report.Outcome.Total.Round(time.Millisecond)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.w, report.Record.String())

	return err
}

// LogFileReporter appends the record line to a benchmark log file.
type LogFileReporter struct {
	path string
}

func NewLogFileReporter(path string) *LogFileReporter {
	return &LogFileReporter{path: path}
}

// Path is the log file the reporter appends to.
func (r *LogFileReporter) Path() string {
	return r.path
}

func (r *LogFileReporter) ProduceReport(report *Report) error {
	return Append(report.Record.String(), r.path)
}

// MultiReporter hands the report to each reporter in order.
// A failing reporter does not stop the ones after it; the first error is returned.
type MultiReporter []ResultReporter

func (m MultiReporter) ProduceReport(report *Report) error {
	var first error

	for _, r := range m {
		if err := r.ProduceReport(report); err != nil && first == nil {
			first = err
		}
	}

	return first
}
