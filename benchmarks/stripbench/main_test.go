package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/striprouter/stripbench/benchmark"
	"github.com/striprouter/stripbench/cpu"
	"github.com/striprouter/stripbench/flags"
	"github.com/striprouter/stripbench/reporter"
	"github.com/striprouter/stripbench/runner"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
		code int
	}{
		{"repeat", fmt.Errorf("build config: %w", benchmark.ErrInvalidRepeatCount), "Invalid configuration", exitConfig},
		{"config file", fmt.Errorf("%w: failed to parse bench.yaml: bad", flags.ErrConfigFile), "Invalid configuration", exitConfig},
		{"profile", flags.ErrInvalidProfile, "Invalid configuration", exitConfig},
		{"cpu", fmt.Errorf("identify cpu: %w", cpu.ErrEnvironment), "Cannot identify the host CPU, results would not be comparable", exitEnvironment},
		{"launch", fmt.Errorf("run benchmark: %w", runner.ErrLaunch), "Benchmark aborted, no result recorded", exitLaunch},
		{"io", fmt.Errorf("write result: %w", reporter.ErrIO), "Benchmark finished but the result could not be saved", exitIO},
		{"other", errors.New("boom"), "Benchmark failed", exitFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg, code := classify(tc.err)
			require.Equal(t, tc.msg, msg)
			require.Equal(t, tc.code, code)
		})
	}
}
