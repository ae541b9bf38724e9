package stripbench

import (
	"io"

	"github.com/striprouter/stripbench/benchmark"
	"github.com/striprouter/stripbench/reporter"
	"github.com/striprouter/stripbench/runner"
	"github.com/striprouter/stripbench/timing"
)

// Option represents a type that can be used to configure the harness.
type Option interface {
	config(builder *harnessBuilder)
}

// WithBaseDir resolves relative binary and working directory paths against dir
// instead of the directory holding the harness executable.
func WithBaseDir(dir string) Option {
	return &withBaseDir{dir: dir}
}

type withBaseDir struct {
	dir string
}

func (opt withBaseDir) config(builder *harnessBuilder) {
	builder.baseDir = opt.dir
}

// WithOutput sends progress and result lines to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return &withOutput{w: w}
}

type withOutput struct {
	w io.Writer
}

func (opt withOutput) config(builder *harnessBuilder) {
	builder.out = opt.w
}

// WithVerbose also prints the time of every run.
func WithVerbose(verbose bool) Option {
	return &withVerbose{verbose: verbose}
}

type withVerbose struct {
	verbose bool
}

func (opt withVerbose) config(builder *harnessBuilder) {
	builder.verbose = opt.verbose
}

// WithQuiet discards the output of the benchmarked program.
func WithQuiet(quiet bool) Option {
	return &withQuiet{quiet: quiet}
}

type withQuiet struct {
	quiet bool
}

func (opt withQuiet) config(builder *harnessBuilder) {
	builder.quiet = opt.quiet
}

// WithIdentifier replaces the host CPU identifier.
func WithIdentifier(identifier Identifier) Option {
	return &withIdentifier{identifier: identifier}
}

type withIdentifier struct {
	identifier Identifier
}

func (opt withIdentifier) config(builder *harnessBuilder) {
	builder.identifier = opt.identifier
}

// WithRunner replaces the process runner. WithBaseDir and WithQuiet have no effect on a custom runner.
func WithRunner(r runner.Runner) Option {
	return &withRunner{runner: r}
}

type withRunner struct {
	runner runner.Runner
}

func (opt withRunner) config(builder *harnessBuilder) {
	builder.runner = opt.runner
}

// WithObserver replaces the progress printer.
func WithObserver(observer benchmark.Observer) Option {
	return &withObserver{observer: observer}
}

type withObserver struct {
	observer benchmark.Observer
}

func (opt withObserver) config(builder *harnessBuilder) {
	builder.observer = opt.observer
}

// WithReporter adds a reporter that runs after the result has been appended to the log.
func WithReporter(r reporter.ResultReporter) Option {
	return &withReporter{reporter: r}
}

type withReporter struct {
	reporter reporter.ResultReporter
}

func (opt withReporter) config(builder *harnessBuilder) {
	builder.reporters = append(builder.reporters, opt.reporter)
}

// WithClock replaces the wall clock used for timing.
func WithClock(clock timing.Clock) Option {
	return &withClock{clock: clock}
}

type withClock struct {
	clock timing.Clock
}

func (opt withClock) config(builder *harnessBuilder) {
	builder.clock = opt.clock
}
