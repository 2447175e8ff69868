package textseq_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/musent/textseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops content into a temp file with the given name and
// returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_JSON covers the canonical JSON layout with mixed melody types.
func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "piece.json", `{"melody": ["C4", 62, "E4"], "rhythm": [1, 0, 1]}`)

	piece, err := textseq.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"C4", "62", "E4"}, piece.Melody)
	assert.Equal(t, []string{"1", "0", "1"}, piece.Rhythm)
}

// TestLoad_JSONMissingKeys: both arrays are mandatory.
func TestLoad_JSONMissingKeys(t *testing.T) {
	path := writeFile(t, "piece.json", `{"melody": ["C4"]}`)
	_, err := textseq.Load(path)
	assert.ErrorIs(t, err, textseq.ErrMissingKeys)
}

// TestLoad_JSONMalformed surfaces the decode failure with file context.
func TestLoad_JSONMalformed(t *testing.T) {
	path := writeFile(t, "piece.json", `{"melody": [`)
	_, err := textseq.Load(path)
	assert.Error(t, err)
}

// TestLoad_CSVColumns covers layout 1: melody/rhythm columns holding
// token lists split on commas and whitespace.
func TestLoad_CSVColumns(t *testing.T) {
	path := writeFile(t, "piece.csv", "melody,rhythm\nC4 D4 E4,\"1, 1, 0\"\nG4,1\n")

	piece, err := textseq.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"C4", "D4", "E4", "G4"}, piece.Melody)
	assert.Equal(t, []string{"1", "1", "0", "1"}, piece.Rhythm)
}

// TestLoad_CSVTypedRows covers layout 2: type/sequence rows.
func TestLoad_CSVTypedRows(t *testing.T) {
	path := writeFile(t, "piece.csv", "type,sequence\nmelody,\"C4,D4,E4\"\nrhythm,\"1,1,0\"\n")

	piece, err := textseq.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"C4", "D4", "E4"}, piece.Melody)
	assert.Equal(t, []string{"1", "1", "0"}, piece.Rhythm)
}

// TestLoad_CSVTypedRowsIncomplete: a typed file carrying only one kind
// of sequence is rejected.
func TestLoad_CSVTypedRowsIncomplete(t *testing.T) {
	path := writeFile(t, "piece.csv", "type,sequence\nmelody,\"C4,D4\"\n")
	_, err := textseq.Load(path)
	assert.ErrorIs(t, err, textseq.ErrMissingKeys)
}

// TestLoad_CSVPositional covers layout 3: headerless two-column data.
func TestLoad_CSVPositional(t *testing.T) {
	path := writeFile(t, "piece.csv", "60 62,1 1\n64,0\n")

	piece, err := textseq.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"60", "62", "64"}, piece.Melody)
	assert.Equal(t, []string{"1", "1", "0"}, piece.Rhythm)
}

// TestLoad_UnsupportedExtension rejects anything but .json/.csv.
func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "piece.txt", "C4 D4")
	_, err := textseq.Load(path)
	assert.ErrorIs(t, err, textseq.ErrUnsupportedFormat)
}

// TestLoad_MissingFile propagates the underlying I/O error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := textseq.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
