// Package entropy computes information-theoretic metrics over finite
// symbolic sequences: order-0 Shannon entropy, order-k conditional
// (Markov) entropy, redundancy, the Predictability Index, and a
// sliding-window local decomposition.
//
// What:
//
//   - Shannon: order-0 entropy of the empirical symbol distribution, in bits.
//   - Markov: empirical estimate of H(next symbol | previous k symbols).
//   - Max: log2 of the alphabet size — the uniform-distribution ceiling.
//   - Redundancy: the non-negative gap Hmax − H*.
//   - PredictabilityIndex: 1 − H*/Hmax clamped to [0,1].
//   - SlidingWindow: (H0, Hk) pairs over strided windows of a sequence.
//
// Why:
//
//   - Melodic analysis: how much information a pitch stream carries and
//     how far short of its alphabet's ceiling it stays.
//   - Style comparison: predictable, formulaic passages score a high IP;
//     free material scores near zero.
//   - Local structure: the window decomposition localizes where a piece
//     tightens or loosens.
//
// Complexity:
//
//   - Shannon:       O(n) time, O(a) memory (a = alphabet size).
//   - Markov:        O(n·k) time, O(c·a) memory (c = distinct contexts).
//   - SlidingWindow: O(w·k) per window, windows ≈ n/step.
//
// Errors:
//
//   - ErrBadWindow: SlidingWindow received a non-positive size or step.
//
// Degenerate inputs are defined, not exceptional: empty sequences, zero
// alphabets and zero entropy ceilings all yield 0, so batch callers need
// no per-call error handling for them.
//
// Note on Markov: the estimator is the frequency-weighted average of the
// per-context successor entropies. It is a biased empirical approximation
// of the conditional entropy, not a stationary Markov-chain entropy rate;
// the bias grows for short sequences or large k. That is the defined
// metric, carried intentionally.
package entropy
