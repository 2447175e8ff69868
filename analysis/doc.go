// Package analysis orchestrates the musent metric engines over real
// inputs: it loads a piece (MIDI, JSON or CSV), standardizes its
// sequences, runs the entropy and complexity engines, and assembles one
// flat Result record per piece.
//
// What:
//
//   - Analyzer, built from a Config, analyzes single files
//     (AnalyzePiece) or whole folders (AnalyzeFolder).
//   - Config carries the analysis knobs (Markov order, window geometry,
//     MIDI grid resolution) and loads from YAML.
//   - Summarize reduces a batch of Results to per-metric mean and
//     sample standard deviation.
//
// Why:
//
//   - Batch studies compare dozens of pieces; every call-tree is
//     independent, so callers may parallelize across files freely.
//   - Keeping orchestration out of the engines keeps those pure.
//
// Errors:
//
//   - ErrBadConfig: non-positive analysis knobs.
//   - ErrBadInputType: input type is not midi/json/csv.
//   - ErrEmptyFolder: folder analysis matched no files.
//
// Loader and engine errors propagate wrapped with the offending path.
package analysis
