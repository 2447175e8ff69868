// Package midifile reads Standard MIDI Files and extracts the discrete
// sequences the musent metric engines consume: a melodic pitch list and
// a binary rhythmic activation grid.
//
// What:
//
//   - Parse / ReadFile walk the MThd/MTrk chunk structure, decoding
//     variable-length delta times, running status, and note events;
//     meta and sysex events are skipped by their declared lengths.
//   - Extract selects a track (explicitly or the one with the most
//     note-ons), lists its pitches in onset order, and rasterizes the
//     sounding intervals onto a beat grid with a configurable TimeUnit.
//
// Why:
//
//   - MIDI is the lingua franca for symbolic music; a self-contained
//     reader keeps the analysis pipeline free of audio dependencies.
//   - Only note timing matters here, so the reader deliberately ignores
//     tempo, program and controller data.
//
// Complexity: parsing and extraction are O(bytes) / O(events).
//
// Errors:
//
//   - ErrNotSMF: missing or malformed MThd header.
//   - ErrSMPTE: SMPTE time division (unsupported; beats are required).
//   - ErrTruncated: chunk or event cut short, or fewer tracks than declared.
//   - ErrTrackIndex: explicit track selection out of range.
//   - ErrBadTimeUnit: non-positive grid resolution.
//
// A note-on with velocity 0 is treated as a note-off, per MIDI
// convention. Notes still sounding at end of track are closed there.
package midifile
