// Package flags holds the harness settings and the command line and config file they are read from.
package flags

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/striprouter/stripbench/benchmark"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidProfile = errors.New("unknown profile mode")
	ErrConfigFile     = errors.New("config file cannot be loaded")
)

// Settings is the complete harness configuration.
type Settings struct {
	Config  string `yaml:"-"`
	Version bool   `yaml:"-"`

	Repeat     int    `yaml:"repeat"`
	Binary     string `yaml:"binary"`
	WorkDir    string `yaml:"workdir"`
	BaseDir    string `yaml:"base_dir"`
	Circuit    string `yaml:"circuit"`
	Checkpoint int    `yaml:"checkpoint"`
	ExitAfter  int    `yaml:"exit_after"`
	LogFile    string `yaml:"log_file"`
	Verbose    bool   `yaml:"verbose"`
	Quiet      bool   `yaml:"quiet"`
	Profile    string `yaml:"profile"`
}

// Defaults reproduce the router's reference benchmark.
func Defaults() Settings {
	return Settings{
		Repeat:     10,
		Binary:     "../striprouter",
		Circuit:    "./circuits/benchmark.circuit",
		Checkpoint: 100,
		ExitAfter:  1000,
		LogFile:    "./benchmarks.txt",
	}
}

// Load builds the settings from the defaults, the -config file if any, then the flags set on fs.
func Load(fs *flag.FlagSet) (Settings, error) {
	s := Defaults()

	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		if err := s.loadFile(f.Value.String()); err != nil {
			return Settings{}, err
		}

		s.Config = f.Value.String()
	}

	var err error

	fs.Visit(func(f *flag.Flag) {
		if err == nil {
			err = s.set(f)
		}
	})

	if err != nil {
		return Settings{}, err
	}

	return s, s.validate()
}

func (s *Settings) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to read %v: %v", ErrConfigFile, path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("%w: failed to parse %v: %v", ErrConfigFile, path, err)
	}

	return nil
}

func (s *Settings) set(f *flag.Flag) error {
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		return fmt.Errorf("flag %v cannot be read", f.Name)
	}

	v := getter.Get()

	switch f.Name {
	case "config":
		s.Config = v.(string)
	case "version":
		s.Version = v.(bool)
	case "repeat":
		s.Repeat = v.(int)
	case "binary":
		s.Binary = v.(string)
	case "workdir":
		s.WorkDir = v.(string)
	case "base-dir":
		s.BaseDir = v.(string)
	case "circuit":
		s.Circuit = v.(string)
	case "checkpoint":
		s.Checkpoint = v.(int)
	case "exit-after":
		s.ExitAfter = v.(int)
	case "log-file":
		s.LogFile = v.(string)
	case "verbose":
		s.Verbose = v.(bool)
	case "quiet":
		s.Quiet = v.(bool)
	case "profile":
		s.Profile = v.(string)
	}

	return nil
}

func (s *Settings) validate() error {
	switch s.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProfile, s.Profile)
	}

	return nil
}

// BenchmarkConfig returns the benchmark described by the settings.
func (s Settings) BenchmarkConfig() (benchmark.Config, error) {
	return benchmark.NewConfig(
		s.Repeat,
		s.Binary,
		s.WorkDir,
		benchmark.InvocationArgs(s.ExitAfter, s.Checkpoint, s.Circuit),
	)
}
