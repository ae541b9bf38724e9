package stripbench

import (
	"errors"

	"github.com/striprouter/stripbench/benchmark"
	"github.com/striprouter/stripbench/cpu"
	"github.com/striprouter/stripbench/flags"
	"github.com/striprouter/stripbench/reporter"
	"github.com/striprouter/stripbench/runner"
)

var ErrMissingLogPath = errors.New("benchmark log path must be set")

// IsEnvironmentError returns true if the error is caused by missing CPU metadata.
func IsEnvironmentError(err error) bool {
	return errors.Is(err, cpu.ErrEnvironment)
}

// IsLaunchError returns true if the benchmarked program could not be run to a successful exit.
func IsLaunchError(err error) bool {
	return errors.Is(err, runner.ErrLaunch)
}

// IsIOError returns true if the result could not be written to the benchmark log.
func IsIOError(err error) bool {
	return errors.Is(err, reporter.ErrIO)
}

// IsConfigError returns true if the error is caused by invalid settings.
func IsConfigError(err error) bool {
	return errors.Is(err, benchmark.ErrInvalidRepeatCount) ||
		errors.Is(err, benchmark.ErrMissingBinary) ||
		errors.Is(err, flags.ErrInvalidProfile) ||
		errors.Is(err, flags.ErrConfigFile) ||
		errors.Is(err, ErrMissingLogPath)
}
