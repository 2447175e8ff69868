package lzc

import "math"

// Complexity — LZ76 phrase count
//
// Description:
//
//	Runs the LZ76 incremental parse over the binary projection of seq
//	(value > 0 → 1, else 0). The parser is a state machine over three
//	integer cursors:
//	  l — boundary of the already-parsed prefix (starts at 1),
//	  k — length of the candidate match (starts at 1),
//	  i — scan position inside the parsed prefix (starts at 0),
//	with the phrase counter c starting at 1 (the first symbol is always
//	a trivial new phrase).
//
// Algorithm Outline:
//
//  1. If l+k would pass the end, the remaining tail is the last phrase:
//     increment c and stop.
//  2. Compare s[i+k-1] with s[l+k-1]. Equal → extend the candidate
//     match (k++).
//  3. Unequal → try the next scan position (i++). When i reaches l, no
//     position in the prefix extends the match: a new phrase ends at
//     l+k. Increment c, advance l by k, reset i=0, k=1; stop once
//     l ≥ n.
//
// Edge cases: empty input → 0, single symbol → 1.
//
// Complexity: O(n) amortized time, O(n) memory.
func Complexity(seq []int) int {
	n := len(seq)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	s := make([]byte, n)
	for idx, v := range seq {
		if v > 0 {
			s[idx] = 1
		}
	}

	c, i, k, l := 1, 0, 1, 1
	for {
		if l+k > n {
			c++
			break
		}
		if s[i+k-1] == s[l+k-1] {
			k++
			continue
		}
		i++
		if i == l {
			c++
			l += k
			if l >= n {
				break
			}
			i, k = 0, 1
		}
	}
	return c
}

// Normalized returns the length-normalized LZ76 complexity
// min(1, c·log2(n)/n), where c = Complexity(seq) and n = len(seq).
// Empty input yields 0; note that log2(1) = 0, so a single-symbol
// sequence also normalizes to 0.
func Normalized(seq []int) float64 {
	n := len(seq)
	if n == 0 {
		return 0.0
	}
	norm := float64(Complexity(seq)) * math.Log2(float64(n)) / float64(n)
	return math.Min(1.0, norm)
}
