package flags

import "flag"

// Register defines the harness flags on fs. Defaults match Defaults().
func Register(fs *flag.FlagSet) {
	d := Defaults()

	fs.String("config", "", "Optional YAML file with settings. Flags given on the command line take precedence.")
	fs.Bool("version", false, "Print the harness version and exit.")
	fs.Int("repeat", d.Repeat, "Number of runs to average over.")
	fs.String("binary", d.Binary, "Path of the router binary, relative to -base-dir.")
	fs.String("workdir", d.WorkDir, "Directory the router is launched from, relative to -base-dir. Defaults to the directory of -binary.")
	fs.String("base-dir", d.BaseDir, "Directory relative paths are resolved against. Defaults to the directory holding this executable.")
	fs.String("circuit", d.Circuit, "Circuit file passed to the router.")
	fs.Int("checkpoint", d.Checkpoint, "Checkpoint interval passed to the router.")
	fs.Int("exit-after", d.ExitAfter, "Number of routes after which the router exits.")
	fs.String("log-file", d.LogFile, "Benchmark log the result line is appended to.")
	fs.Bool("verbose", d.Verbose, "Enable verbose logging and per-run timings.")
	fs.Bool("quiet", d.Quiet, "Discard the router's own output.")
	fs.String("profile", d.Profile, "Profile the harness itself. One of: cpu, mem.")
}
