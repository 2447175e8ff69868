// Package textseq loads raw melody and rhythm token sequences from JSON
// and CSV files. It stops at tokenization: mapping tokens onto the
// Symbol/binary alphabets is the symbol package's job.
//
// What:
//
//   - Load dispatches on the file extension (.json / .csv).
//   - JSON: an object with "melody" and "rhythm" arrays whose elements
//     are numbers or strings.
//   - CSV, three accepted layouts:
//     1. columns melody,rhythm — each cell holds a token list;
//     2. rows type,sequence — one sequence per row, type selects which;
//     3. fallback — first column melody, second column rhythm.
//     Token lists split on commas and whitespace.
//
// Why:
//
//   - Hand-written corpora and spreadsheet exports are the cheapest way
//     to get symbolic material into the analyzer; both deserve the same
//     forgiving treatment the original data sets received.
//
// Errors:
//
//   - ErrUnsupportedFormat: extension is neither .json nor .csv.
//   - ErrMissingKeys: a required melody or rhythm part is absent.
//   - ErrBadLayout: CSV matches none of the accepted layouts.
package textseq
