package lzc_test

import (
	"testing"

	"github.com/katalvlaran/musent/lzc"
)

// benchGrid builds a deterministic pseudo-random binary grid of length n.
func benchGrid(n int) []int {
	grid := make([]int, n)
	state := uint32(7)
	for i := range grid {
		state = state*1664525 + 1013904223
		grid[i] = int(state >> 31)
	}
	return grid
}

// benchmarkComplexity parses a grid of length n per iteration.
func benchmarkComplexity(b *testing.B, n int) {
	grid := benchGrid(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lzc.Complexity(grid)
	}
}

func BenchmarkComplexity_1k(b *testing.B)   { benchmarkComplexity(b, 1_000) }
func BenchmarkComplexity_10k(b *testing.B)  { benchmarkComplexity(b, 10_000) }
func BenchmarkComplexity_100k(b *testing.B) { benchmarkComplexity(b, 100_000) }

// BenchmarkComplexity_Periodic exercises the long-match fast path.
func BenchmarkComplexity_Periodic(b *testing.B) {
	grid := make([]int, 100_000)
	for i := range grid {
		grid[i] = i % 2
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lzc.Complexity(grid)
	}
}
