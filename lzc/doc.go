// Package lzc measures the algorithmic complexity of binary sequences
// with the classic Lempel-Ziv (LZ76) incremental parser.
//
// What:
//
//   - Complexity: the LZ76 phrase count — the minimal number of
//     self-referential phrases needed to reconstruct the sequence.
//   - Normalized: the length-adjusted rescaling c·log2(n)/n, capped at 1,
//     comparable across sequences of different lengths.
//
// Why:
//
//   - Rhythm analysis: a groove that copies itself parses into few
//     phrases; syncopated, irregular patterns need many.
//   - Compressibility proxy: the phrase count tracks how well the
//     sequence would compress without running a compressor.
//
// Complexity: O(n) amortized time, O(n) memory for the coerced copy.
//
// Inputs are coerced onto the binary alphabet (value > 0 → 1, else 0),
// so raw velocity or duration grids can be fed directly. Both functions
// are total: empty input yields 0, a single symbol yields 1 / 0.
package lzc
