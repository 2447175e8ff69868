package midifile

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Status byte layout constants per the SMF specification.
const (
	statusBit     = 0x80
	typeMask      = 0xF0
	noteOff       = 0x80
	noteOn        = 0x90
	polyPressure  = 0xA0
	controlChange = 0xB0
	programChange = 0xC0
	chanPressure  = 0xD0
	pitchBend     = 0xE0
	sysexStart    = 0xF0
	sysexCont     = 0xF7
	metaEvent     = 0xFF
	metaEndTrack  = 0x2F
)

// ReadFile reads and parses the Standard MIDI File at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("midifile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a Standard MIDI File from data.
//
// The header chunk is validated strictly; alien (non-MTrk) chunks after
// it are skipped by length, as the SMF specification requires. Parsing
// stops once the declared number of tracks has been read.
func Parse(data []byte) (*File, error) {
	if len(data) < 14 || string(data[:4]) != "MThd" {
		return nil, ErrNotSMF
	}
	hdrLen := binary.BigEndian.Uint32(data[4:8])
	if hdrLen < 6 {
		return nil, ErrNotSMF
	}
	if len(data) < 8+int(hdrLen) {
		return nil, ErrTruncated
	}
	division := binary.BigEndian.Uint16(data[12:14])
	if division&0x8000 != 0 {
		return nil, ErrSMPTE
	}
	if division == 0 {
		return nil, ErrNotSMF
	}

	f := &File{
		Format:       binary.BigEndian.Uint16(data[8:10]),
		TicksPerBeat: division,
	}
	declared := int(binary.BigEndian.Uint16(data[10:12]))

	pos := 8 + int(hdrLen)
	for len(f.Tracks) < declared && pos < len(data) {
		if pos+8 > len(data) {
			return nil, ErrTruncated
		}
		chunkType := string(data[pos : pos+4])
		chunkLen := int(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
		pos += 8
		if pos+chunkLen > len(data) {
			return nil, ErrTruncated
		}
		if chunkType != "MTrk" {
			pos += chunkLen
			continue
		}
		track, err := parseTrack(data[pos : pos+chunkLen])
		if err != nil {
			return nil, err
		}
		f.Tracks = append(f.Tracks, track)
		pos += chunkLen
	}
	if len(f.Tracks) < declared {
		return nil, ErrTruncated
	}
	return f, nil
}

// parseTrack decodes one MTrk payload into note events. Non-note channel
// events advance time and running status but are otherwise dropped.
func parseTrack(payload []byte) (Track, error) {
	var (
		tr      Track
		tick    uint32
		running byte
		pos     int
	)
	for pos < len(payload) {
		delta, n, err := readVLQ(payload[pos:])
		if err != nil {
			return tr, err
		}
		pos += n
		tick += delta

		if pos >= len(payload) {
			return tr, ErrTruncated
		}
		status := payload[pos]
		if status&statusBit != 0 {
			pos++
			if status < sysexStart {
				running = status
			}
		} else {
			// Data byte in status position: running status applies.
			if running == 0 {
				return tr, ErrTruncated
			}
			status = running
		}

		switch {
		case status == metaEvent:
			// Meta and sysex events cancel running status.
			running = 0
			if pos >= len(payload) {
				return tr, ErrTruncated
			}
			metaType := payload[pos]
			pos++
			length, n, err := readVLQ(payload[pos:])
			if err != nil {
				return tr, err
			}
			pos += n + int(length)
			if pos > len(payload) {
				return tr, ErrTruncated
			}
			if metaType == metaEndTrack {
				tr.EndTick = tick
				return tr, nil
			}
		case status == sysexStart || status == sysexCont:
			running = 0
			length, n, err := readVLQ(payload[pos:])
			if err != nil {
				return tr, err
			}
			pos += n + int(length)
			if pos > len(payload) {
				return tr, ErrTruncated
			}
		default:
			switch status & typeMask {
			case noteOff, noteOn:
				if pos+2 > len(payload) {
					return tr, ErrTruncated
				}
				note, vel := payload[pos], payload[pos+1]
				pos += 2
				tr.Events = append(tr.Events, NoteEvent{
					Tick:     tick,
					Note:     note,
					Velocity: vel,
					On:       status&typeMask == noteOn && vel > 0,
				})
			case polyPressure, controlChange, pitchBend:
				if pos+2 > len(payload) {
					return tr, ErrTruncated
				}
				pos += 2
			case programChange, chanPressure:
				if pos+1 > len(payload) {
					return tr, ErrTruncated
				}
				pos++
			default:
				return tr, ErrTruncated
			}
		}
	}
	tr.EndTick = tick
	return tr, nil
}

// readVLQ decodes one variable-length quantity (at most 4 bytes).
func readVLQ(b []byte) (uint32, int, error) {
	var value uint32
	for i := 0; i < 4 && i < len(b); i++ {
		value = value<<7 | uint32(b[i]&0x7F)
		if b[i]&statusBit == 0 {
			return value, i + 1, nil
		}
	}
	return 0, 0, ErrTruncated
}
