// Package app implements the musent command line front end: argument
// parsing, subcommand dispatch, output writing and exit codes. main
// stays a thin shell around Run so the whole surface is testable.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/musent/analysis"
	"github.com/katalvlaran/musent/internal/writers"
)

// Exit codes: 0 success, 1 runtime failure, 2 usage error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Run executes the musent CLI with the given arguments and streams.
func Run(argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		usage(stderr)
		return exitUsage
	}
	switch argv[0] {
	case "analyze":
		return runAnalyze(argv[1:], stdout, stderr)
	case "analyze-batch":
		return runBatch(argv[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "musent: unknown command %q\n\n", argv[0])
		usage(stderr)
		return exitUsage
	}
}

// usage prints the top-level command summary.
func usage(w io.Writer) {
	fmt.Fprint(w, `musent — music entropy and complexity toolkit

Usage:
  musent analyze       --input FILE   --input-type {midi|json|csv} [flags]
  musent analyze-batch --input FOLDER --input-type {midi|json|csv} [flags]

Run a subcommand with -h for its full flag list.
`)
}

// runAnalyze handles the single-piece subcommand.
func runAnalyze(argv []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet("analyze", &o, false, stderr)
	if code, done := parseArgs(fs, argv); done {
		return code
	}

	typ, cfg, code := resolveInputs(&o, fs, stderr)
	if code != exitOK {
		return code
	}

	log := newLogger(o.Verbose, stderr)
	defer func() { _ = log.Sync() }()

	res, err := analysis.New(cfg, analysis.WithLogger(log)).AnalyzePiece(o.Input, typ)
	if err != nil {
		fmt.Fprintln(stderr, "musent:", err)
		return exitError
	}
	printResult(stdout, res)

	results := []analysis.Result{res}
	if err = writeOutputs(&o, results, func(w io.Writer) error {
		return writers.ResultJSON(w, res)
	}); err != nil {
		fmt.Fprintln(stderr, "musent:", err)
		return exitError
	}
	return exitOK
}

// runBatch handles the folder subcommand.
func runBatch(argv []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet("analyze-batch", &o, true, stderr)
	if code, done := parseArgs(fs, argv); done {
		return code
	}

	typ, cfg, code := resolveInputs(&o, fs, stderr)
	if code != exitOK {
		return code
	}

	log := newLogger(o.Verbose, stderr)
	defer func() { _ = log.Sync() }()

	results, err := analysis.New(cfg, analysis.WithLogger(log)).AnalyzeFolder(o.Input, typ, o.Pattern)
	if err != nil {
		fmt.Fprintln(stderr, "musent:", err)
		return exitError
	}
	for _, res := range results {
		printResult(stdout, res)
	}
	if o.Summary {
		if err = writers.SummaryText(stdout, analysis.Summarize(results)); err != nil {
			fmt.Fprintln(stderr, "musent:", err)
			return exitError
		}
	}
	if err = writeOutputs(&o, results, func(w io.Writer) error {
		return writers.ResultsJSON(w, results)
	}); err != nil {
		fmt.Fprintln(stderr, "musent:", err)
		return exitError
	}
	return exitOK
}

// parseArgs runs flag parsing; done=true means Run should return code
// immediately (help requested or bad flags). The flag set already
// reports errors to its configured output.
func parseArgs(fs *flag.FlagSet, argv []string) (int, bool) {
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK, true
		}
		return exitUsage, true
	}
	return exitOK, false
}

// resolveInputs validates the required flags and builds the effective
// analysis config. A non-exitOK code means the caller should stop.
func resolveInputs(o *options, fs *flag.FlagSet, stderr io.Writer) (analysis.InputType, analysis.Config, int) {
	if o.Input == "" || o.InputType == "" {
		fmt.Fprintln(stderr, "musent: --input and --input-type are required")
		fs.Usage()
		return 0, analysis.Config{}, exitUsage
	}
	typ, err := analysis.ParseInputType(o.InputType)
	if err != nil {
		fmt.Fprintln(stderr, "musent:", err)
		return 0, analysis.Config{}, exitUsage
	}
	cfg, err := o.buildConfig(fs)
	if err != nil {
		fmt.Fprintln(stderr, "musent:", err)
		return 0, analysis.Config{}, exitUsage
	}
	return typ, cfg, exitOK
}

// printResult renders the human-readable per-piece block.
func printResult(w io.Writer, res analysis.Result) {
	fmt.Fprintf(w, "File: %s\n", res.Path)
	fmt.Fprintf(w, "  H0: %.4f\n", res.H0)
	fmt.Fprintf(w, "  Hk (order): %.4f\n", res.HK)
	fmt.Fprintf(w, "  Hmax: %.4f\n", res.HMax)
	fmt.Fprintf(w, "  Redundancy: %.4f\n", res.Redundancy)
	fmt.Fprintf(w, "  LZC: %d\n", res.LZC)
	fmt.Fprintf(w, "  LZC normalized: %.4f\n", res.LZCNorm)
	fmt.Fprintf(w, "  Predictability (IP): %.4f\n", res.IP)
	if len(res.Local) > 0 {
		fmt.Fprintf(w, "  Local windows: %d\n", len(res.Local))
	}
}

// writeOutputs saves the optional CSV/JSON artifacts.
func writeOutputs(o *options, results []analysis.Result, jsonWrite func(io.Writer) error) error {
	if o.OutputCSV != "" {
		if err := writeFile(o.OutputCSV, func(w io.Writer) error {
			return writers.ResultsCSV(w, results)
		}); err != nil {
			return err
		}
	}
	if o.LocalCSV != "" {
		if err := writeFile(o.LocalCSV, func(w io.Writer) error {
			return writers.LocalCSV(w, results)
		}); err != nil {
			return err
		}
	}
	if o.OutputJSON != "" {
		if err := writeFile(o.OutputJSON, jsonWrite); err != nil {
			return err
		}
	}
	return nil
}

// writeFile creates path and streams write into it.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// newLogger builds the CLI logger: silent by default, console debug
// output on stderr when verbose.
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core)
}
