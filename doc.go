// Package musent is a toolkit for measuring the information content and
// algorithmic complexity of symbolic music — melodic pitch sequences and
// binary rhythmic activation grids.
//
// 🚀 What is musent?
//
//	A small, pure-Go library that brings together:
//		• Order-0 Shannon entropy and order-k conditional (Markov) entropy
//		• Redundancy and the Predictability Index (IP)
//		• Sliding-window local entropy decomposition
//		• Lempel-Ziv (LZ76) complexity and its length-normalized variant
//		• Loaders for Standard MIDI Files and JSON/CSV symbol sequences
//		• A batch analysis layer with CSV/JSON export and summary statistics
//
// ✨ Why choose musent?
//
//   - Pure engines – entropy and complexity are free functions with no
//     internal state, safe to call from any number of goroutines
//   - Defined degenerate cases – empty sequences, single symbols and
//     zero alphabets yield documented zero values, not panics
//   - Mixed symbol alphabets – pitches and unresolved text tokens share
//     one comparable Symbol type usable directly as a map key
//
// Under the hood, everything is organized in flat subpackages:
//
//	symbol/   — Symbol union type, note-name parsing, sequence standardization
//	entropy/  — Shannon, Markov, redundancy, predictability, sliding windows
//	lzc/      — LZ76 incremental parser and normalized complexity
//	midifile/ — Standard MIDI File reader, melody & rhythm grid extraction
//	textseq/  — JSON/CSV sequence loaders
//	analysis/ — per-piece and per-folder orchestration, batch summaries
//
// Quick sketch:
//
//	melody  C4 E4 G4 C5 …  ──▶ H0, Hk, R, IP
//	rhythm  1 0 1 1 0 1 …  ──▶ LZ76, normalized LZC
//
// The command line front end lives in cmd/musent; see README.md for
// usage, file formats and the metric definitions.
//
//	go get github.com/katalvlaran/musent
package musent
