package entropy

import (
	"math"

	"github.com/katalvlaran/musent/symbol"
)

// Shannon — order-0 entropy
//
// Description:
//
//	Builds the empirical distribution of symbol occurrences and
//	accumulates -Σ p·log2(p) over the distinct symbols, where
//	p = count/len(seq). The result is the average information content
//	per symbol, in bits.
//
// Edge cases:
//
//	Empty sequence → 0. A sequence of identical symbols → 0.
//
// Complexity: O(n) time, O(a) memory for the count table.
func Shannon(seq []symbol.Symbol) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	counts := make(map[symbol.Symbol]int, len(seq))
	for _, s := range seq {
		counts[s]++
	}
	return countsEntropy(counts, len(seq))
}

// Markov — order-k conditional entropy estimate
//
// Description:
//
//	Estimates H(symbol | previous k symbols) empirically:
//	 1. For every start index i in [0, n-k), record seq[i+k] as a
//	    successor of the context seq[i:i+k].
//	 2. For each distinct context, compute the Shannon entropy of its
//	    successor multiset.
//	 3. Return the average over contexts, weighted by
//	    contextCount/(n-k).
//
//	The estimator is biased for small samples or large k; that is the
//	defined metric, not something to correct.
//
// Edge cases:
//
//	order ≤ 0 delegates to Shannon(seq). len(seq) ≤ order → 0 (not one
//	complete context/successor pair exists).
//
// Complexity: O(n·k) time, O(c·a) memory (c = distinct contexts).
func Markov(seq []symbol.Symbol, order int) float64 {
	if order <= 0 {
		return Shannon(seq)
	}
	n := len(seq)
	if n <= order {
		return 0.0
	}
	successors := make(map[string]map[symbol.Symbol]int)
	for i := 0; i < n-order; i++ {
		ctx := symbol.Join(seq[i : i+order])
		dist := successors[ctx]
		if dist == nil {
			dist = make(map[symbol.Symbol]int)
			successors[ctx] = dist
		}
		dist[seq[i+order]]++
	}
	total := float64(n - order)
	var h float64
	for _, dist := range successors {
		ctxCount := 0
		for _, c := range dist {
			ctxCount += c
		}
		weight := float64(ctxCount) / total
		h += weight * countsEntropy(dist, ctxCount)
	}
	return h
}

// Max returns the maximum possible entropy for an alphabet of
// alphabetSize equiprobable symbols: log2(alphabetSize), or 0 when the
// alphabet is empty.
func Max(alphabetSize int) float64 {
	if alphabetSize <= 0 {
		return 0.0
	}
	return math.Log2(float64(alphabetSize))
}

// Redundancy returns the non-negative gap R = Hmax − H*.
func Redundancy(hMax, hStar float64) float64 {
	return math.Max(0.0, hMax-hStar)
}

// PredictabilityIndex returns IP = 1 − H*/Hmax clamped to [0,1].
// When hMax ≤ 0 there is nothing to predict against and IP is 0.
func PredictabilityIndex(hStar, hMax float64) float64 {
	if hMax <= 0 {
		return 0.0
	}
	ip := 1.0 - hStar/hMax
	return math.Min(1.0, math.Max(0.0, ip))
}

// AlphabetSize returns the number of distinct symbols observed in seq.
func AlphabetSize(seq []symbol.Symbol) int {
	seen := make(map[symbol.Symbol]struct{}, len(seq))
	for _, s := range seq {
		seen[s] = struct{}{}
	}
	return len(seen)
}

// countsEntropy computes -Σ p·log2(p) over a count table whose counts
// sum to total. Callers guarantee total > 0.
func countsEntropy(counts map[symbol.Symbol]int, total int) float64 {
	var h float64
	t := float64(total)
	for _, c := range counts {
		p := float64(c) / t
		h -= p * math.Log2(p)
	}
	return h
}
