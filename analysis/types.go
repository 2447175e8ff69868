// Package analysis defines the configuration, result records, and
// sentinel errors for the analysis subpackage of
// github.com/katalvlaran/musent.
package analysis

import (
	"errors"
	"strings"
)

// Sentinel errors for orchestration.
var (
	// ErrBadConfig indicates an out-of-range analysis knob.
	ErrBadConfig = errors.New("analysis: markov order must be non-negative; window size, window step and time unit must be positive")
	// ErrBadInputType indicates an unrecognized input type name.
	ErrBadInputType = errors.New("analysis: input type must be midi, json or csv")
	// ErrEmptyFolder indicates folder analysis matched no files.
	ErrEmptyFolder = errors.New("analysis: no matching files in folder")
)

// InputType selects the loader used for a piece.
type InputType int

const (
	// TypeMIDI loads Standard MIDI Files (.mid/.midi).
	TypeMIDI InputType = iota
	// TypeJSON loads JSON sequence files.
	TypeJSON
	// TypeCSV loads CSV sequence files.
	TypeCSV
)

// ParseInputType resolves a case-insensitive type name.
func ParseInputType(name string) (InputType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "midi":
		return TypeMIDI, nil
	case "json":
		return TypeJSON, nil
	case "csv":
		return TypeCSV, nil
	default:
		return 0, ErrBadInputType
	}
}

// String returns the canonical lowercase name.
func (t InputType) String() string {
	switch t {
	case TypeMIDI:
		return "midi"
	case TypeJSON:
		return "json"
	case TypeCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// Config carries the analysis knobs.
//
// Fields:
//   - MarkovOrder — context length k for the conditional entropy.
//   - WindowSize / WindowStep — geometry of the local decomposition.
//   - TimeUnit — MIDI rhythm grid resolution in beats.
//   - ComputeLocal — whether AnalyzePiece fills Result.Local.
type Config struct {
	MarkovOrder  int     `yaml:"markov_order"`
	WindowSize   int     `yaml:"window_size"`
	WindowStep   int     `yaml:"window_step"`
	TimeUnit     float64 `yaml:"time_unit"`
	ComputeLocal bool    `yaml:"compute_local"`
}

// DefaultConfig returns the conventional settings: first-order contexts,
// 16/8 windows, sixteenth-note rhythm grid, no local decomposition.
func DefaultConfig() Config {
	return Config{
		MarkovOrder:  1,
		WindowSize:   16,
		WindowStep:   8,
		TimeUnit:     0.25,
		ComputeLocal: false,
	}
}

// Validate reports ErrBadConfig when any knob is out of range. Order 0
// is allowed: the conditional entropy then degrades to plain Shannon
// entropy.
func (c Config) Validate() error {
	if c.MarkovOrder < 0 || c.WindowSize <= 0 || c.WindowStep <= 0 || c.TimeUnit <= 0 {
		return ErrBadConfig
	}
	return nil
}

// LocalWindow is one sliding-window measurement, indexed by position.
type LocalWindow struct {
	Index int     `json:"window"`
	H0    float64 `json:"h0"`
	HK    float64 `json:"hk"`
}

// Result is the full metric record for one piece.
type Result struct {
	// Path identifies the analyzed file.
	Path string `json:"path"`

	// H0 is the order-0 Shannon entropy of the melody, in bits.
	H0 float64 `json:"h0"`

	// HK is the order-k conditional entropy of the melody, in bits.
	HK float64 `json:"hk"`

	// HMax is the entropy ceiling log2(alphabet size).
	HMax float64 `json:"hmax"`

	// Redundancy is the non-negative gap HMax − HK.
	Redundancy float64 `json:"redundancy"`

	// LZC is the LZ76 phrase count of the rhythm grid.
	LZC int `json:"lzc"`

	// LZCNorm is the length-normalized LZ76 complexity in [0,1].
	LZCNorm float64 `json:"lzc_normalized"`

	// IP is the Predictability Index in [0,1].
	IP float64 `json:"ip"`

	// Local holds the window decomposition when ComputeLocal is set.
	Local []LocalWindow `json:"local,omitempty"`
}
