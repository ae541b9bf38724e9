// Package runner launches the benchmarked program as a child process.
package runner

//go:generate mockgen -destination mock_runner/runner.go . Runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrLaunch is returned when the child process cannot be found or started.
var ErrLaunch = errors.New("failed to launch process")

// Runner runs a program to completion and returns its exit status.
type Runner interface {
	Run(ctx context.Context, binaryPath string, args []string, workingDirectory string) (int, error)
}

// ExecRunner runs programs with os/exec.
// Relative paths are resolved against BaseDir rather than the current directory.
type ExecRunner struct {
	BaseDir string
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExecRunner returns a runner anchored at baseDir whose children share this process's output streams.
func NewExecRunner(baseDir string) *ExecRunner {
	return &ExecRunner{
		BaseDir: baseDir,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

func (r *ExecRunner) Run(ctx context.Context, binaryPath string, args []string, workingDirectory string) (int, error) {
	binaryPath, workingDirectory = r.resolve(binaryPath), r.resolve(workingDirectory)

	if info, err := os.Stat(workingDirectory); err != nil {
		return -1, fmt.Errorf("%w: working directory: %v", ErrLaunch, err)
	} else if !info.IsDir() {
		return -1, fmt.Errorf("%w: working directory %v is not a directory", ErrLaunch, workingDirectory)
	}

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Dir = workingDirectory
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	return cmd.ProcessState.ExitCode(), nil
}

// resolve makes path absolute so the child's working directory cannot change what it refers to.
func (r *ExecRunner) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	if r.BaseDir != "" {
		return filepath.Join(r.BaseDir, path)
	}

	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}

	return path
}

// ExecutableDir returns the directory holding the running executable, with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}

	return filepath.Dir(exe), nil
}
