package stripbench

import (
	"io"
	"os"

	"github.com/striprouter/stripbench/benchmark"
	"github.com/striprouter/stripbench/cpu"
	"github.com/striprouter/stripbench/reporter"
	"github.com/striprouter/stripbench/runner"
	"github.com/striprouter/stripbench/timing"
)

type harnessBuilder struct {
	logPath    string
	baseDir    string
	out        io.Writer
	verbose    bool
	quiet      bool
	identifier Identifier
	runner     runner.Runner
	observer   benchmark.Observer
	reporters  []reporter.ResultReporter
	clock      timing.Clock
}

func newBuilder(logPath string) (*harnessBuilder, error) {
	if logPath == "" {
		return nil, ErrMissingLogPath
	}

	return &harnessBuilder{
		logPath:    logPath,
		out:        os.Stdout,
		identifier: cpu.NewIdentifier(),
	}, nil
}

func (builder *harnessBuilder) build() (*Harness, error) {
	if builder.runner == nil {
		execRunner, err := builder.newExecRunner()
		if err != nil {
			return nil, err
		}

		builder.runner = execRunner
	}

	if builder.observer == nil {
		builder.observer = benchmark.NewProgressPrinter(builder.out)
	}

	echo := append(reporter.MultiReporter{reporter.NewStdOutReporter(builder.out, builder.verbose)}, builder.reporters...)

	return &Harness{
		identifier: builder.identifier,
		runner:     builder.runner,
		observer:   builder.observer,
		clock:      builder.clock,
		logFile:    reporter.NewLogFileReporter(builder.logPath),
		echo:       echo,
		out:        builder.out,
	}, nil
}

func (builder *harnessBuilder) newExecRunner() (*runner.ExecRunner, error) {
	baseDir := builder.baseDir

	if baseDir == "" {
		dir, err := runner.ExecutableDir()
		if err != nil {
			return nil, err
		}

		baseDir = dir
	}

	execRunner := runner.NewExecRunner(baseDir)

	if builder.quiet {
		execRunner.Stdout = io.Discard
		execRunner.Stderr = io.Discard
	}

	return execRunner, nil
}
