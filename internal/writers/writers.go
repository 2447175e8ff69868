// Package writers serializes analysis results to CSV and JSON for the
// musent command line tool.
package writers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/musent/analysis"
)

// resultsHeader is the fixed global-metrics CSV column order.
var resultsHeader = []string{"path", "h0", "hk", "hmax", "redundancy", "lzc", "lzc_normalized", "ip"}

// localHeader is the fixed local-metrics CSV column order.
var localHeader = []string{"path", "window", "h0", "hk"}

// ResultsCSV writes one row of global metrics per piece.
func ResultsCSV(w io.Writer, results []analysis.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultsHeader); err != nil {
		return fmt.Errorf("writers: csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Path,
			formatFloat(r.H0),
			formatFloat(r.HK),
			formatFloat(r.HMax),
			formatFloat(r.Redundancy),
			strconv.Itoa(r.LZC),
			formatFloat(r.LZCNorm),
			formatFloat(r.IP),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writers: csv row for %s: %w", r.Path, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LocalCSV writes one row per sliding window for every piece carrying
// local metrics; pieces without them contribute nothing.
func LocalCSV(w io.Writer, results []analysis.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(localHeader); err != nil {
		return fmt.Errorf("writers: csv header: %w", err)
	}
	for _, r := range results {
		for _, win := range r.Local {
			row := []string{
				r.Path,
				strconv.Itoa(win.Index),
				formatFloat(win.H0),
				formatFloat(win.HK),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writers: csv row for %s: %w", r.Path, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ResultsJSON writes the batch as an indented JSON array.
func ResultsJSON(w io.Writer, results []analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("writers: json: %w", err)
	}
	return nil
}

// ResultJSON writes a single piece as an indented JSON object.
func ResultJSON(w io.Writer, result analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("writers: json: %w", err)
	}
	return nil
}

// SummaryText renders a batch summary as aligned mean ± std lines.
func SummaryText(w io.Writer, s analysis.Summary) error {
	if _, err := fmt.Fprintf(w, "Pieces: %d\n", s.Count); err != nil {
		return err
	}
	lines := []struct {
		name string
		stat analysis.Stat
	}{
		{"H0", s.H0},
		{"Hk", s.HK},
		{"Hmax", s.HMax},
		{"Redundancy", s.Redundancy},
		{"LZC", s.LZC},
		{"LZC norm", s.LZCNorm},
		{"IP", s.IP},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "  %-10s %8.4f ± %.4f\n", l.name, l.stat.Mean, l.stat.Std); err != nil {
			return err
		}
	}
	return nil
}

// formatFloat renders metric floats compactly but losslessly enough for
// spreadsheets.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
