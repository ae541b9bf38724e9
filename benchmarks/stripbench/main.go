package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/striprouter/stripbench"
	"github.com/striprouter/stripbench/flags"
	"github.com/striprouter/stripbench/logging"
	"github.com/striprouter/stripbench/version"
)

func main() {
	flags.Register(flag.CommandLine)

	flag.Usage = func() {
		fmt.Printf("Usage %v [options]\n", os.Args[0])
		fmt.Printf("\nRuns the strip router benchmark and appends the average run time to the benchmark log.\n")
		fmt.Printf("\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		exit(err)
	}
}

func run() error {
	settings, err := flags.Load(flag.CommandLine)
	if err != nil {
		return err
	}

	if settings.Version {
		fmt.Println(version.Harness.String())
		return nil
	}

	logging.Setup(os.Stderr, settings.Verbose)

	switch settings.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	cfg, err := settings.BenchmarkConfig()
	if err != nil {
		return err
	}

	harness, err := stripbench.New(settings.LogFile,
		stripbench.WithBaseDir(settings.BaseDir),
		stripbench.WithVerbose(settings.Verbose),
		stripbench.WithQuiet(settings.Quiet),
	)
	if err != nil {
		return err
	}

	logrus.WithField("version", version.Harness.String()).WithField("config", settings.Config).Debug("Starting harness")

	_, err = harness.Run(context.Background(), cfg)

	return err
}

// Exit codes, one per failing stage.
const (
	exitFailure     = 1
	exitConfig      = 2
	exitEnvironment = 3
	exitLaunch      = 4
	exitIO          = 5
)

func exit(err error) {
	msg, code := classify(err)

	logrus.WithError(err).Error(msg)

	os.Exit(code)
}

// classify maps a harness error to the message logged for the operator and the process exit code.
func classify(err error) (string, int) {
	switch {
	case stripbench.IsConfigError(err):
		return "Invalid configuration", exitConfig
	case stripbench.IsEnvironmentError(err):
		return "Cannot identify the host CPU, results would not be comparable", exitEnvironment
	case stripbench.IsLaunchError(err):
		return "Benchmark aborted, no result recorded", exitLaunch
	case stripbench.IsIOError(err):
		return "Benchmark finished but the result could not be saved", exitIO
	default:
		return "Benchmark failed", exitFailure
	}
}
