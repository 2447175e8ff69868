package entropy_test

import (
	"fmt"

	"github.com/katalvlaran/musent/entropy"
	"github.com/katalvlaran/musent/symbol"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleShannon
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A four-note motif repeated five times. All four pitches are
//	equiprobable, so the order-0 entropy hits the 2-bit ceiling of a
//	4-symbol alphabet — while the order-1 conditional entropy collapses
//	to zero, because every pitch fully determines its successor.
//
// Use case: separating "rich alphabet" from "hard to predict".
func ExampleShannon() {
	seq := symbol.IntSeq(
		60, 62, 64, 67, 60, 62, 64, 67, 60, 62,
		64, 67, 60, 62, 64, 67, 60, 62, 64, 67,
	)
	fmt.Printf("H0 = %.2f bits\n", entropy.Shannon(seq))
	fmt.Printf("H1 = %.2f bits\n", entropy.Markov(seq, 1))
	// Output:
	// H0 = 2.00 bits
	// H1 = 0.00 bits
}

// ExamplePredictabilityIndex derives the full redundancy picture of a
// melody from its entropies.
func ExamplePredictabilityIndex() {
	seq := symbol.IntSeq(60, 62, 60, 62, 60, 62, 60, 62)
	h0 := entropy.Shannon(seq)
	hk := entropy.Markov(seq, 1)
	hmax := entropy.Max(entropy.AlphabetSize(seq))

	fmt.Printf("H0   = %.2f\n", h0)
	fmt.Printf("Hmax = %.2f\n", hmax)
	fmt.Printf("R    = %.2f\n", entropy.Redundancy(hmax, hk))
	fmt.Printf("IP   = %.2f\n", entropy.PredictabilityIndex(hk, hmax))
	// Output:
	// H0   = 1.00
	// Hmax = 1.00
	// R    = 1.00
	// IP   = 1.00
}

// ExampleSlidingWindow decomposes a melody into overlapping windows and
// prints the local (H0, Hk) pairs in traversal order.
func ExampleSlidingWindow() {
	// Eight constant pitches followed by eight alternating ones.
	seq := symbol.IntSeq(60, 60, 60, 60, 60, 60, 60, 60, 60, 64, 60, 64, 60, 64, 60, 64)
	windows, err := entropy.SlidingWindow(seq, entropy.WindowOptions{Size: 8, Step: 8, Order: 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, w := range windows {
		fmt.Printf("window %d: H0=%.2f Hk=%.2f\n", i, w.H0, w.HK)
	}
	// Output:
	// window 0: H0=0.00 Hk=0.00
	// window 1: H0=1.00 Hk=0.00
}
