// Package midifile defines the parsed-file types and sentinel errors for
// the midifile subpackage of github.com/katalvlaran/musent.
package midifile

import "errors"

// Sentinel errors for MIDI file reading and extraction.
var (
	// ErrNotSMF indicates the data does not start with a valid MThd header.
	ErrNotSMF = errors.New("midifile: not a standard MIDI file")
	// ErrSMPTE indicates the file uses SMPTE time division, which has no
	// beat grid to rasterize onto.
	ErrSMPTE = errors.New("midifile: SMPTE time division not supported")
	// ErrTruncated indicates a chunk or event ended before its declared length.
	ErrTruncated = errors.New("midifile: truncated chunk or event")
	// ErrTrackIndex indicates an explicit track selection out of range.
	ErrTrackIndex = errors.New("midifile: track index out of range")
	// ErrBadTimeUnit indicates a non-positive rhythm grid resolution.
	ErrBadTimeUnit = errors.New("midifile: time unit must be positive")
)

// NoteEvent is a note boundary within one track.
//
// On is true only for a sounding onset (note-on with velocity > 0);
// note-offs and the conventional velocity-0 note-offs both carry On=false.
type NoteEvent struct {
	// Tick is the absolute time of the event in ticks from track start.
	Tick uint32

	// Note is the MIDI note number (0-127).
	Note byte

	// Velocity is the raw velocity byte.
	Velocity byte

	// On reports whether this event starts a sounding note.
	On bool
}

// Track holds the note events of one MTrk chunk in file order.
type Track struct {
	// Events lists the note boundaries in chronological order.
	Events []NoteEvent

	// EndTick is the absolute tick at which the track ends, including
	// the delta carried by the end-of-track meta event.
	EndTick uint32
}

// File is a parsed Standard MIDI File reduced to note timing.
type File struct {
	// Format is the SMF format word (0, 1 or 2).
	Format uint16

	// TicksPerBeat is the PPQ time division.
	TicksPerBeat uint16

	// Tracks holds one entry per MTrk chunk, in file order.
	Tracks []Track
}

// Piece is the pair of discrete sequences extracted from one track:
// melody pitches in onset order and a binary rhythm activation grid.
type Piece struct {
	Melody []int
	Rhythm []int
}

// AutoTrack selects the track with the most note-on events.
const AutoTrack = -1

// ExtractOptions configures Extract.
//
// Fields:
//   - TimeUnit — rhythm grid resolution in beats (0.25 = sixteenth notes
//     in 4/4). Must be positive.
//   - Track — track index to extract, or AutoTrack to pick the most
//     active one.
type ExtractOptions struct {
	TimeUnit float64
	Track    int
}

// DefaultExtractOptions returns sixteenth-note resolution with automatic
// track selection.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		TimeUnit: 0.25,
		Track:    AutoTrack,
	}
}
