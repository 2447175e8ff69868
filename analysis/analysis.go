package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/musent/entropy"
	"github.com/katalvlaran/musent/lzc"
	"github.com/katalvlaran/musent/midifile"
	"github.com/katalvlaran/musent/symbol"
	"github.com/katalvlaran/musent/textseq"
)

// Analyzer runs the full metric pipeline for a fixed Config. It holds no
// per-piece state; one Analyzer may serve any number of goroutines.
type Analyzer struct {
	cfg Config
	log *zap.Logger
}

// Option configures an Analyzer at construction.
type Option func(*Analyzer)

// WithLogger attaches a zap logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// New builds an Analyzer. An invalid Config surfaces later as
// ErrBadConfig from the analysis methods, keeping construction total.
func New(cfg Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg: cfg,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzePiece loads one file with the loader selected by typ, then
// computes the entropy metrics over its melody and the complexity
// metrics over its rhythm grid.
func (a *Analyzer) AnalyzePiece(path string, typ InputType) (Result, error) {
	if err := a.cfg.Validate(); err != nil {
		return Result{}, err
	}
	melody, rhythm, err := a.load(path, typ)
	if err != nil {
		return Result{}, err
	}

	hk := entropy.Markov(melody, a.cfg.MarkovOrder)
	hmax := entropy.Max(entropy.AlphabetSize(melody))
	res := Result{
		Path:       path,
		H0:         entropy.Shannon(melody),
		HK:         hk,
		HMax:       hmax,
		Redundancy: entropy.Redundancy(hmax, hk),
		LZC:        lzc.Complexity(rhythm),
		LZCNorm:    lzc.Normalized(rhythm),
		IP:         entropy.PredictabilityIndex(hk, hmax),
	}

	if a.cfg.ComputeLocal {
		windows, werr := entropy.SlidingWindow(melody, entropy.WindowOptions{
			Size:  a.cfg.WindowSize,
			Step:  a.cfg.WindowStep,
			Order: a.cfg.MarkovOrder,
		})
		if werr != nil {
			return Result{}, werr
		}
		res.Local = make([]LocalWindow, len(windows))
		for i, w := range windows {
			res.Local[i] = LocalWindow{Index: i, H0: w.H0, HK: w.HK}
		}
	}

	a.log.Debug("piece analyzed",
		zap.String("path", path),
		zap.Int("melody_len", len(melody)),
		zap.Int("rhythm_len", len(rhythm)),
		zap.Float64("h0", res.H0),
		zap.Float64("hk", res.HK),
		zap.Int("lzc", res.LZC),
	)
	return res, nil
}

// AnalyzeFolder analyzes every file in dir matching pattern (a shell
// glob, "*" by default behavior of callers) whose extension fits typ.
// Results come back in lexical path order. A missing dir surfaces the
// underlying fs error; an existing dir with no matching files yields
// ErrEmptyFolder.
func (a *Analyzer) AnalyzeFolder(dir string, typ InputType, pattern string) ([]Result, error) {
	if pattern == "" {
		pattern = "*"
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("analysis: folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("analysis: %s is not a folder", dir)
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("analysis: bad pattern %q: %w", pattern, err)
	}
	sort.Strings(paths)

	var results []Result
	for _, path := range paths {
		if !matchesType(path, typ) {
			continue
		}
		res, perr := a.AnalyzePiece(path, typ)
		if perr != nil {
			return nil, fmt.Errorf("analysis: %s: %w", path, perr)
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		return nil, ErrEmptyFolder
	}
	a.log.Info("folder analyzed",
		zap.String("dir", dir),
		zap.String("type", typ.String()),
		zap.Int("pieces", len(results)),
	)
	return results, nil
}

// matchesType filters folder entries by extension per input type.
func matchesType(path string, typ InputType) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch typ {
	case TypeMIDI:
		return ext == ".mid" || ext == ".midi"
	case TypeJSON:
		return ext == ".json"
	case TypeCSV:
		return ext == ".csv"
	default:
		return false
	}
}

// load reads and standardizes one piece into engine-ready sequences.
func (a *Analyzer) load(path string, typ InputType) ([]symbol.Symbol, []int, error) {
	switch typ {
	case TypeMIDI:
		f, err := midifile.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		opts := midifile.DefaultExtractOptions()
		opts.TimeUnit = a.cfg.TimeUnit
		piece, err := midifile.Extract(f, opts)
		if err != nil {
			return nil, nil, err
		}
		return symbol.IntSeq(piece.Melody...), piece.Rhythm, nil
	case TypeJSON, TypeCSV:
		piece, err := textseq.Load(path)
		if err != nil {
			return nil, nil, err
		}
		return symbol.StandardizeMelody(piece.Melody), symbol.StandardizeRhythm(piece.Rhythm), nil
	default:
		return nil, nil, ErrBadInputType
	}
}
