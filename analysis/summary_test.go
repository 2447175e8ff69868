package analysis_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/musent/analysis"
	"github.com/stretchr/testify/assert"
)

// TestSummarize_Empty yields the zero summary without dividing by zero.
func TestSummarize_Empty(t *testing.T) {
	s := analysis.Summarize(nil)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.H0.Mean)
	assert.Zero(t, s.H0.Std)
}

// TestSummarize_SinglePiece: mean equals the piece, std stays zero.
func TestSummarize_SinglePiece(t *testing.T) {
	s := analysis.Summarize([]analysis.Result{{H0: 2.0, LZC: 5, IP: 0.5}})
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 2.0, s.H0.Mean)
	assert.Equal(t, 5.0, s.LZC.Mean)
	assert.Equal(t, 0.5, s.IP.Mean)
	assert.Zero(t, s.H0.Std, "one sample has no spread")
}

// TestSummarize_Batch pins mean and sample standard deviation on a
// hand-computed pair: values 1 and 3 → mean 2, std sqrt(2).
func TestSummarize_Batch(t *testing.T) {
	s := analysis.Summarize([]analysis.Result{
		{H0: 1.0, HK: 0.5, HMax: 2.0, Redundancy: 1.5, LZC: 4, LZCNorm: 0.25, IP: 0.75},
		{H0: 3.0, HK: 1.5, HMax: 4.0, Redundancy: 2.5, LZC: 8, LZCNorm: 0.75, IP: 0.25},
	})
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 2.0, s.H0.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt2, s.H0.Std, 1e-12)
	assert.InDelta(t, 1.0, s.HK.Mean, 1e-12)
	assert.InDelta(t, 6.0, s.LZC.Mean, 1e-12)
	assert.InDelta(t, 0.5, s.LZCNorm.Mean, 1e-12)
	assert.InDelta(t, 0.5, s.IP.Mean, 1e-12)
}
