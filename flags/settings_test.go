package flags

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/striprouter/stripbench/benchmark"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	fs := flag.NewFlagSet("stripbench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Register(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(newFlagSet(t))
	require.NoError(t, err)
	require.Equal(t, Defaults(), s)

	cfg, err := s.BenchmarkConfig()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.RepeatCount())
	require.Equal(t, "../striprouter", cfg.BinaryPath())
	require.Equal(t, "..", cfg.WorkingDirectory())
	require.Equal(t, []string{"--nogui", "--exitafter", "1000", "--checkpoint", "100", "--circuit", "./circuits/benchmark.circuit"}, cfg.Args())
}

func TestLoadFlags(t *testing.T) {
	s, err := Load(newFlagSet(t, "-repeat", "3", "-binary", "/opt/striprouter", "-checkpoint", "5", "-verbose", "-profile", "cpu"))
	require.NoError(t, err)
	require.Equal(t, 3, s.Repeat)
	require.Equal(t, "/opt/striprouter", s.Binary)
	require.Equal(t, 5, s.Checkpoint)
	require.True(t, s.Verbose)
	require.Equal(t, "cpu", s.Profile)
	require.Equal(t, 1000, s.ExitAfter)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
repeat: 4
binary: ./build/striprouter
circuit: ./circuits/big.circuit
log_file: /var/log/bench.txt
quiet: true
`), 0o600))

	s, err := Load(newFlagSet(t, "-config", path, "-repeat", "7"))
	require.NoError(t, err)

	// The command line wins over the file.
	require.Equal(t, 7, s.Repeat)
	require.Equal(t, "./build/striprouter", s.Binary)
	require.Equal(t, "./circuits/big.circuit", s.Circuit)
	require.Equal(t, "/var/log/bench.txt", s.LogFile)
	require.True(t, s.Quiet)
	require.Equal(t, path, s.Config)

	// Unset keys keep their defaults.
	require.Equal(t, 100, s.Checkpoint)
}

func TestLoadConfigFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(newFlagSet(t, "-config", missing))
	require.ErrorIs(t, err, ErrConfigFile)
	require.Contains(t, err.Error(), missing)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repeat: [1, 2"), 0o600))

	_, err = Load(newFlagSet(t, "-config", path))
	require.ErrorIs(t, err, ErrConfigFile)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoadInvalidProfile(t *testing.T) {
	_, err := Load(newFlagSet(t, "-profile", "heap"))
	require.ErrorIs(t, err, ErrInvalidProfile)
}

func TestBenchmarkConfigRejectsZeroRepeat(t *testing.T) {
	s, err := Load(newFlagSet(t, "-repeat", "0"))
	require.NoError(t, err)

	_, err = s.BenchmarkConfig()
	require.ErrorIs(t, err, benchmark.ErrInvalidRepeatCount)
}
