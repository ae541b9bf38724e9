package benchmark

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"golang.org/x/exp/slices"
)

var (
	ErrInvalidRepeatCount = errors.New("repeat count must be positive")
	ErrMissingBinary      = errors.New("binary path must be set")
)

// Config describes one benchmark: which program to run, where, with which arguments, and how many times.
// It can only be built with NewConfig and is never modified afterwards.
type Config struct {
	repeatCount      int
	binaryPath       string
	workingDirectory string
	args             []string
}

// NewConfig validates and returns a benchmark configuration.
// An empty workingDirectory means the directory holding the binary.
func NewConfig(repeatCount int, binaryPath, workingDirectory string, args []string) (Config, error) {
	if repeatCount <= 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidRepeatCount, repeatCount)
	}

	if binaryPath == "" {
		return Config{}, ErrMissingBinary
	}

	if workingDirectory == "" {
		workingDirectory = filepath.Dir(binaryPath)
	}

	return Config{
		repeatCount:      repeatCount,
		binaryPath:       binaryPath,
		workingDirectory: workingDirectory,
		args:             slices.Clone(args),
	}, nil
}

func (c Config) RepeatCount() int {
	return c.repeatCount
}

func (c Config) BinaryPath() string {
	return c.binaryPath
}

func (c Config) WorkingDirectory() string {
	return c.workingDirectory
}

// Args returns a copy of the arguments passed to every invocation.
func (c Config) Args() []string {
	return slices.Clone(c.args)
}

// InvocationArgs builds the router's headless benchmark command line.
func InvocationArgs(exitAfter, checkpoint int, circuitPath string) []string {
	return []string{
		"--nogui",
		"--exitafter", strconv.Itoa(exitAfter),
		"--checkpoint", strconv.Itoa(checkpoint),
		"--circuit", circuitPath,
	}
}
