// Package entropy defines options, result types, and sentinel errors for
// the entropy subpackage of github.com/katalvlaran/musent.
package entropy

import "errors"

// ErrBadWindow indicates SlidingWindow received a non-positive window
// size or step. It is the package's only failure mode; every other edge
// case resolves to a documented zero value.
var ErrBadWindow = errors.New("entropy: window size and step must be positive")

// WindowOptions configures the sliding-window decomposition.
//
// Fields:
//   - Size — number of consecutive symbols per window; the trailing
//     window may be shorter and is still emitted.
//   - Step — stride between successive window starts.
//   - Order — Markov order k used for the Hk half of each pair.
type WindowOptions struct {
	Size  int
	Step  int
	Order int
}

// DefaultWindowOptions returns the conventional analysis settings:
// 16-symbol windows, half-window overlap, first-order contexts.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Size:  16,
		Step:  8,
		Order: 1,
	}
}

// WindowEntropy is the (H0, Hk) measurement for one window. Results keep
// traversal order, so the slice index is the window position.
type WindowEntropy struct {
	// H0 is the order-0 Shannon entropy of the window, in bits.
	H0 float64

	// HK is the order-k conditional entropy of the window, in bits.
	HK float64
}
