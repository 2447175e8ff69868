package entropy

import "github.com/katalvlaran/musent/symbol"

// SlidingWindow — local entropy decomposition
//
// Description:
//
//	Starting at index 0 and advancing by opts.Step, extracts up to
//	opts.Size consecutive symbols and emits
//	(Shannon(window), Markov(window, opts.Order)) per window, in
//	traversal order. The trailing window may be shorter than Size; it is
//	emitted as long as it is non-empty, never padded.
//
// Errors:
//
//	ErrBadWindow when opts.Size ≤ 0 or opts.Step ≤ 0. Validation is the
//	caller's job before batch runs; the error propagates unwrapped.
//
// Complexity: O((n/step)·size·order) time; windows share no state.
func SlidingWindow(seq []symbol.Symbol, opts WindowOptions) ([]WindowEntropy, error) {
	if opts.Size <= 0 || opts.Step <= 0 {
		return nil, ErrBadWindow
	}
	n := len(seq)
	var results []WindowEntropy
	for start := 0; start < n; start += opts.Step {
		end := start + opts.Size
		if end > n {
			end = n
		}
		window := seq[start:end]
		results = append(results, WindowEntropy{
			H0: Shannon(window),
			HK: Markov(window, opts.Order),
		})
	}
	return results, nil
}
