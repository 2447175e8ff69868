// Package symbol defines the discrete symbol alphabet shared by the
// musent metric engines, plus the standardization helpers that turn raw
// melody/rhythm tokens into engine-ready sequences.
//
// What:
//
//   - Symbol is a tagged union of an integer pitch code and a text token.
//     It is a comparable value type: two Symbols are equal iff they carry
//     the same variant and payload, so a Symbol works directly as a map key.
//   - NoteToMIDI resolves note names such as "C#4" or "Db3" to MIDI numbers.
//   - StandardizeMelody maps raw tokens to Symbols: integer strings and
//     note names become pitch codes, everything else stays a text token.
//   - StandardizeRhythm forces raw tokens onto the binary {0,1} alphabet.
//
// Why:
//
//   - Melody sources mix numeric pitches with unresolved note names; the
//     entropy engine must count both under one value-equality contract.
//   - Keeping standardization here leaves the metric packages free of any
//     parsing concerns.
//
// Complexity: all helpers are O(n) over their input; Symbol operations are O(1).
//
// Symbols are immutable; none of the helpers mutate their input slices.
package symbol
