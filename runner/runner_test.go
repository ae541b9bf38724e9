package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body), 0o755))
}

func TestRunPassesArgsVerbatim(t *testing.T) {
	base := t.TempDir()
	writeScript(t, base, "echo-args", `for a in "$@"; do echo "[$a]"; done; pwd -P`)

	var stdout bytes.Buffer

	r := &ExecRunner{BaseDir: base, Stdout: &stdout}

	status, err := r.Run(context.Background(), "echo-args", []string{"--circuit", "a b", "$HOME", "*"}, ".")
	require.NoError(t, err)
	require.Equal(t, 0, status)

	wd, err := filepath.EvalSymlinks(base)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "[--circuit]\n[a b]\n[$HOME]\n[*]\n")
	require.Contains(t, out, wd)
}

func TestRunResolvesAgainstBaseDir(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "bin"), 0o755))
	writeScript(t, filepath.Join(base, "bin"), "prog", "pwd -P")

	// Run from somewhere else entirely.
	other := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(other))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	var stdout bytes.Buffer

	r := &ExecRunner{BaseDir: filepath.Join(base, "sub"), Stdout: &stdout}
	require.NoError(t, os.Mkdir(filepath.Join(base, "sub"), 0o755))

	status, err := r.Run(context.Background(), "../bin/prog", nil, "../bin")
	require.NoError(t, err)
	require.Equal(t, 0, status)

	wd, err := filepath.EvalSymlinks(filepath.Join(base, "bin"))
	require.NoError(t, err)
	require.Contains(t, stdout.String(), wd)
}

func TestRunReturnsExitStatus(t *testing.T) {
	base := t.TempDir()
	writeScript(t, base, "fail", "exit 3")

	status, err := NewExecRunner(base).Run(context.Background(), "fail", nil, ".")
	require.NoError(t, err)
	require.Equal(t, 3, status)
}

func TestRunMissingBinary(t *testing.T) {
	base := t.TempDir()

	_, err := NewExecRunner(base).Run(context.Background(), "does-not-exist", nil, ".")
	require.ErrorIs(t, err, ErrLaunch)
}

func TestRunNotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}

	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "plain"), []byte("data"), 0o644))

	_, err := NewExecRunner(base).Run(context.Background(), "plain", nil, ".")
	require.ErrorIs(t, err, ErrLaunch)
}

func TestRunMissingWorkingDirectory(t *testing.T) {
	base := t.TempDir()
	writeScript(t, base, "ok", "exit 0")

	_, err := NewExecRunner(base).Run(context.Background(), "ok", nil, "nowhere")
	require.ErrorIs(t, err, ErrLaunch)
}
