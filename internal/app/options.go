package app

import (
	"flag"
	"io"

	"github.com/katalvlaran/musent/analysis"
)

// options collects every flag shared by the analyze subcommands.
type options struct {
	Input      string
	InputType  string
	Pattern    string
	ConfigPath string

	MarkovOrder int
	WindowSize  int
	WindowStep  int
	TimeUnit    float64
	Local       bool

	OutputCSV  string
	LocalCSV   string
	OutputJSON string
	Summary    bool
	Verbose    bool
}

// newFlagSet registers the common analysis flags. batch adds the
// folder-only flags.
func newFlagSet(name string, o *options, batch bool, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := analysis.DefaultConfig()

	if batch {
		fs.StringVar(&o.Input, "input", "", "folder to analyze (required)")
		fs.StringVar(&o.Pattern, "pattern", "*", "glob pattern inside the folder")
		fs.BoolVar(&o.Summary, "summary", false, "print batch summary statistics")
	} else {
		fs.StringVar(&o.Input, "input", "", "file to analyze (required)")
	}
	fs.StringVar(&o.InputType, "input-type", "", "input type: midi, json or csv (required)")
	fs.StringVar(&o.ConfigPath, "config", "", "YAML config file; explicit flags override it")

	fs.IntVar(&o.MarkovOrder, "markov-order", def.MarkovOrder, "Markov order k")
	fs.IntVar(&o.WindowSize, "window-size", def.WindowSize, "window size for local metrics")
	fs.IntVar(&o.WindowStep, "window-step", def.WindowStep, "stride for local metrics")
	fs.Float64Var(&o.TimeUnit, "time-unit", def.TimeUnit, "beat resolution for the MIDI rhythm grid")
	fs.BoolVar(&o.Local, "local", false, "compute local entropies")

	fs.StringVar(&o.OutputCSV, "output-csv", "", "path to save global metrics CSV")
	fs.StringVar(&o.LocalCSV, "local-csv", "", "path to save local metrics CSV")
	fs.StringVar(&o.OutputJSON, "output-json", "", "path to save JSON results")
	fs.BoolVar(&o.Verbose, "verbose", false, "log analysis progress to stderr")
	return fs
}

// buildConfig resolves the effective Config: defaults, then the config
// file when given, then any flag the user set explicitly.
func (o *options) buildConfig(fs *flag.FlagSet) (analysis.Config, error) {
	cfg := analysis.DefaultConfig()
	if o.ConfigPath != "" {
		loaded, err := analysis.LoadConfig(o.ConfigPath)
		if err != nil {
			return analysis.Config{}, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "markov-order":
			cfg.MarkovOrder = o.MarkovOrder
		case "window-size":
			cfg.WindowSize = o.WindowSize
		case "window-step":
			cfg.WindowStep = o.WindowStep
		case "time-unit":
			cfg.TimeUnit = o.TimeUnit
		case "local":
			cfg.ComputeLocal = o.Local
		}
	})
	if err := cfg.Validate(); err != nil {
		return analysis.Config{}, err
	}
	return cfg, nil
}
