package symbol

import (
	"regexp"
	"strconv"
	"strings"
)

// noteBase maps a natural note letter to its semitone offset within the octave.
var noteBase = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// notePattern matches note names: letter, optional accidental, signed octave.
var notePattern = regexp.MustCompile(`^([A-Ga-g])([#b]?)(-?\d+)$`)

// NoteToMIDI converts a note name such as "C#4" or "Db3" to its MIDI
// number. The octave convention places C4 at 60. The second result is
// false when name is not a well-formed note name.
func NoteToMIDI(name string) (int, bool) {
	m := notePattern.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return 0, false
	}
	base := noteBase[strings.ToUpper(m[1])[0]]
	switch m[2] {
	case "#":
		base++
	case "b":
		base--
	}
	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, false
	}
	return (octave+1)*12 + base, true
}

// StandardizeMelody maps raw melody tokens onto the Symbol alphabet:
// integer strings become pitch codes, note names resolve through
// NoteToMIDI, and anything else is kept verbatim as a text token so it
// still participates in the frequency counts.
func StandardizeMelody(tokens []string) []Symbol {
	seq := make([]Symbol, 0, len(tokens))
	for _, tok := range tokens {
		trimmed := strings.TrimSpace(tok)
		if code, err := strconv.Atoi(trimmed); err == nil {
			seq = append(seq, Int(code))
			continue
		}
		if code, ok := NoteToMIDI(trimmed); ok {
			seq = append(seq, Int(code))
			continue
		}
		seq = append(seq, Text(trimmed))
	}
	return seq
}

// StandardizeRhythm forces raw rhythm tokens onto the binary alphabet:
// numeric tokens (floats accepted, truncated toward zero) above zero map
// to 1; everything else, unparseable tokens included, maps to 0.
func StandardizeRhythm(tokens []string) []int {
	grid := make([]int, len(tokens))
	for i, tok := range tokens {
		f, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			continue
		}
		if int(f) > 0 {
			grid[i] = 1
		}
	}
	return grid
}
