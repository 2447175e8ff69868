package textseq

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for sequence loading.
var (
	// ErrUnsupportedFormat indicates the file extension is neither .json nor .csv.
	ErrUnsupportedFormat = errors.New("textseq: unsupported format, use .json or .csv")
	// ErrMissingKeys indicates a required melody or rhythm part is absent.
	ErrMissingKeys = errors.New("textseq: input must provide both melody and rhythm")
	// ErrBadLayout indicates a CSV file matches none of the accepted layouts.
	ErrBadLayout = errors.New("textseq: unsupported CSV layout")
)

// Piece holds raw token sequences as read from a file, prior to any
// standardization.
type Piece struct {
	Melody []string
	Rhythm []string
}

// Load reads a melody/rhythm piece from the JSON or CSV file at path.
func Load(path string) (Piece, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".csv":
		return loadCSV(path)
	default:
		return Piece{}, ErrUnsupportedFormat
	}
}

// loadJSON decodes {"melody": [...], "rhythm": [...]}. Array elements
// may mix numbers and strings; numbers keep their literal form via
// json.Number, so integer pitches round-trip without a float detour.
func loadJSON(path string) (Piece, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Piece{}, fmt.Errorf("textseq: read %s: %w", path, err)
	}
	var doc map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return Piece{}, fmt.Errorf("textseq: parse %s: %w", path, err)
	}
	melodyRaw, okM := doc["melody"]
	rhythmRaw, okR := doc["rhythm"]
	if !okM || !okR {
		return Piece{}, ErrMissingKeys
	}
	melody, err := decodeTokenArray(melodyRaw)
	if err != nil {
		return Piece{}, fmt.Errorf("textseq: parse %s: %w", path, err)
	}
	rhythm, err := decodeTokenArray(rhythmRaw)
	if err != nil {
		return Piece{}, fmt.Errorf("textseq: parse %s: %w", path, err)
	}
	return Piece{Melody: melody, Rhythm: rhythm}, nil
}

// decodeTokenArray flattens a JSON array of numbers/strings to tokens.
func decodeTokenArray(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case string:
			tokens = append(tokens, v)
		case json.Number:
			tokens = append(tokens, v.String())
		default:
			tokens = append(tokens, fmt.Sprint(v))
		}
	}
	return tokens, nil
}

// loadCSV reads one of the three accepted CSV layouts.
func loadCSV(path string) (Piece, error) {
	f, err := os.Open(path)
	if err != nil {
		return Piece{}, fmt.Errorf("textseq: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return Piece{}, fmt.Errorf("textseq: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return Piece{}, ErrBadLayout
	}

	head := headerIndex(rows[0])
	switch {
	case head["melody"] >= 0 && head["rhythm"] >= 0:
		return csvColumns(rows[1:], head["melody"], head["rhythm"])
	case head["type"] >= 0 && head["sequence"] >= 0:
		return csvTypedRows(rows[1:], head["type"], head["sequence"])
	case len(rows[0]) >= 2:
		return csvPositional(rows)
	default:
		return Piece{}, ErrBadLayout
	}
}

// headerIndex maps normalized header names to column positions; absent
// names map to -1.
func headerIndex(row []string) map[string]int {
	idx := map[string]int{"melody": -1, "rhythm": -1, "type": -1, "sequence": -1}
	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		if cur, ok := idx[name]; ok && cur < 0 {
			idx[name] = i
		}
	}
	return idx
}

// csvColumns handles layout 1: melody and rhythm columns of token lists.
func csvColumns(rows [][]string, melodyCol, rhythmCol int) (Piece, error) {
	var piece Piece
	for _, row := range rows {
		if melodyCol < len(row) {
			piece.Melody = append(piece.Melody, splitTokens(row[melodyCol])...)
		}
		if rhythmCol < len(row) {
			piece.Rhythm = append(piece.Rhythm, splitTokens(row[rhythmCol])...)
		}
	}
	if len(piece.Melody) == 0 || len(piece.Rhythm) == 0 {
		return Piece{}, ErrMissingKeys
	}
	return piece, nil
}

// csvTypedRows handles layout 2: one sequence per row, tagged by type.
func csvTypedRows(rows [][]string, typeCol, seqCol int) (Piece, error) {
	var piece Piece
	for _, row := range rows {
		if typeCol >= len(row) || seqCol >= len(row) {
			continue
		}
		tokens := splitTokens(row[seqCol])
		switch strings.ToLower(strings.TrimSpace(row[typeCol])) {
		case "melody":
			piece.Melody = append(piece.Melody, tokens...)
		case "rhythm":
			piece.Rhythm = append(piece.Rhythm, tokens...)
		}
	}
	if len(piece.Melody) == 0 || len(piece.Rhythm) == 0 {
		return Piece{}, ErrMissingKeys
	}
	return piece, nil
}

// csvPositional handles layout 3: headerless two-column data.
func csvPositional(rows [][]string) (Piece, error) {
	var piece Piece
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		piece.Melody = append(piece.Melody, splitTokens(row[0])...)
		piece.Rhythm = append(piece.Rhythm, splitTokens(row[1])...)
	}
	if len(piece.Melody) == 0 || len(piece.Rhythm) == 0 {
		return Piece{}, ErrBadLayout
	}
	return piece, nil
}

// splitTokens splits a cell on commas and whitespace, dropping empties.
func splitTokens(cell string) []string {
	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return fields
}
