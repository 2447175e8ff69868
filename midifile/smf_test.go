package midifile_test

import (
	"encoding/binary"
	"testing"

	"github.com/katalvlaran/musent/midifile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunk frames payload as an SMF chunk of the given 4-byte type.
func chunk(typ string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	out = append(out, typ...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	return append(out, payload...)
}

// header builds an MThd chunk.
func header(format, ntracks, division uint16) []byte {
	var p []byte
	p = binary.BigEndian.AppendUint16(p, format)
	p = binary.BigEndian.AppendUint16(p, ntracks)
	p = binary.BigEndian.AppendUint16(p, division)
	return chunk("MThd", p)
}

// endOfTrack is the terminating meta event with a zero delta.
var endOfTrack = []byte{0x00, 0xFF, 0x2F, 0x00}

// smf concatenates a header and track chunks into one file image.
func smf(format, division uint16, tracks ...[]byte) []byte {
	out := header(format, uint16(len(tracks)), division)
	for _, tr := range tracks {
		out = append(out, chunk("MTrk", tr)...)
	}
	return out
}

// TestParse_SingleNote decodes the smallest useful file: one note-on,
// one note-off, end of track.
func TestParse_SingleNote(t *testing.T) {
	track := []byte{
		0x00, 0x90, 60, 100, // delta 0: note-on C4
		0x60, 0x80, 60, 0, // delta 96: note-off C4
	}
	track = append(track, endOfTrack...)

	f, err := midifile.Parse(smf(0, 96, track))
	require.NoError(t, err)
	assert.Equal(t, uint16(0), f.Format)
	assert.Equal(t, uint16(96), f.TicksPerBeat)
	require.Len(t, f.Tracks, 1)

	events := f.Tracks[0].Events
	require.Len(t, events, 2)
	assert.Equal(t, midifile.NoteEvent{Tick: 0, Note: 60, Velocity: 100, On: true}, events[0])
	assert.Equal(t, midifile.NoteEvent{Tick: 96, Note: 60, Velocity: 0, On: false}, events[1])
	assert.Equal(t, uint32(96), f.Tracks[0].EndTick)
}

// TestParse_RunningStatus reuses the previous status byte for successive
// note events, the most common SMF encoding.
func TestParse_RunningStatus(t *testing.T) {
	track := []byte{
		0x00, 0x90, 60, 100, // note-on with explicit status
		0x10, 62, 100, // running status: second note-on
		0x10, 60, 0, // running status: velocity 0 acts as note-off
	}
	track = append(track, endOfTrack...)

	f, err := midifile.Parse(smf(0, 480, track))
	require.NoError(t, err)
	events := f.Tracks[0].Events
	require.Len(t, events, 3)
	assert.True(t, events[0].On)
	assert.True(t, events[1].On, "running-status note-on must be decoded")
	assert.Equal(t, byte(62), events[1].Note)
	assert.Equal(t, uint32(0x10), events[1].Tick)
	assert.False(t, events[2].On, "velocity 0 note-on is a note-off")
}

// TestParse_MultiByteDelta decodes a two-byte variable-length delta.
func TestParse_MultiByteDelta(t *testing.T) {
	track := []byte{
		0x81, 0x48, 0x90, 60, 100, // delta 200
	}
	track = append(track, endOfTrack...)

	f, err := midifile.Parse(smf(0, 96, track))
	require.NoError(t, err)
	require.Len(t, f.Tracks[0].Events, 1)
	assert.Equal(t, uint32(200), f.Tracks[0].Events[0].Tick)
}

// TestParse_SkipsMetaSysexAndOtherChannels: unrelated events advance the
// clock but produce no note events.
func TestParse_SkipsMetaSysexAndOtherChannels(t *testing.T) {
	track := []byte{
		0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20, // tempo meta
		0x00, 0xF0, 0x02, 0x01, 0xF7, // sysex, length 2
		0x00, 0xB0, 0x07, 0x64, // controller
		0x00, 0xC0, 0x05, // program change
		0x20, 0x90, 64, 90, // the only note
	}
	track = append(track, endOfTrack...)

	f, err := midifile.Parse(smf(0, 96, track))
	require.NoError(t, err)
	require.Len(t, f.Tracks[0].Events, 1)
	assert.Equal(t, byte(64), f.Tracks[0].Events[0].Note)
	assert.Equal(t, uint32(0x20), f.Tracks[0].Events[0].Tick)
}

// TestParse_AlienChunkSkipped: unknown chunk types between tracks are
// skipped by their declared length.
func TestParse_AlienChunkSkipped(t *testing.T) {
	track := append([]byte{0x00, 0x90, 60, 100}, endOfTrack...)
	data := header(0, 1, 96)
	data = append(data, chunk("XFIR", []byte{1, 2, 3, 4})...)
	data = append(data, chunk("MTrk", track)...)

	f, err := midifile.Parse(data)
	require.NoError(t, err)
	require.Len(t, f.Tracks, 1)
	assert.Len(t, f.Tracks[0].Events, 1)
}

// TestParse_Errors maps malformed inputs onto the sentinel taxonomy.
func TestParse_Errors(t *testing.T) {
	t.Run("not SMF", func(t *testing.T) {
		_, err := midifile.Parse([]byte("RIFF....whatever"))
		assert.ErrorIs(t, err, midifile.ErrNotSMF)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := midifile.Parse(nil)
		assert.ErrorIs(t, err, midifile.ErrNotSMF)
	})
	t.Run("SMPTE division", func(t *testing.T) {
		_, err := midifile.Parse(smf(0, 0xE250, append([]byte{}, endOfTrack...)))
		assert.ErrorIs(t, err, midifile.ErrSMPTE)
	})
	t.Run("missing track", func(t *testing.T) {
		_, err := midifile.Parse(header(0, 1, 96))
		assert.ErrorIs(t, err, midifile.ErrTruncated)
	})
	t.Run("event cut short", func(t *testing.T) {
		track := []byte{0x00, 0x90, 60} // note-on missing velocity
		_, err := midifile.Parse(smf(0, 96, track))
		assert.ErrorIs(t, err, midifile.ErrTruncated)
	})
	t.Run("data byte without running status", func(t *testing.T) {
		track := []byte{0x00, 0x3C, 0x64}
		_, err := midifile.Parse(smf(0, 96, track))
		assert.ErrorIs(t, err, midifile.ErrTruncated)
	})
}
