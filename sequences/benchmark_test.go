package sequences_test

import (
	"testing"

	"lazyseq/sequences"
)

func benchInput(size int) []int {
	input := make([]int, size)
	for i := range input {
		input[i] = i
	}
	return input
}

// BenchmarkPipeline compares a lazy filter+map chain against the equivalent
// hand-written slice loop.
func BenchmarkPipeline(b *testing.B) {
	input := benchInput(100_000)
	even := func(v, _ int, _ *sequences.Sequence[int]) bool { return v%2 == 0 }
	double := func(v, _ int, _ *sequences.Sequence[int]) int { return v * 2 }

	b.Run("LazyChain", func(b *testing.B) {
		s := sequences.FromSlice(input).Filter(even).Map(double)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.ToSlice()
		}
	})

	b.Run("SliceLoop", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			out := make([]int, 0, len(input)/2)
			for _, v := range input {
				if v%2 == 0 {
					out = append(out, v*2)
				}
			}
			_ = out
		}
	})
}

// BenchmarkShortCircuit measures the payoff of deferred evaluation: the lazy
// chain stops pulling at the requested index, the eager variant pays for the
// whole input first.
func BenchmarkShortCircuit(b *testing.B) {
	input := benchInput(100_000)
	double := func(v, _ int, _ *sequences.Sequence[int]) int { return v * 2 }

	b.Run("LazyItemAt", func(b *testing.B) {
		s := sequences.FromSlice(input).Map(double)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = s.ItemAt(10)
		}
	})

	b.Run("MaterializeThenIndex", func(b *testing.B) {
		s := sequences.FromSlice(input).Map(double)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			out := s.ToSlice()
			_ = out[10]
		}
	})
}

func BenchmarkIndexOf(b *testing.B) {
	input := benchInput(100_000)
	s := sequences.FromSlice(input)

	b.Run("PositiveFromIndex", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = sequences.IndexOf(s, 50_000)
		}
	})

	b.Run("NegativeFromIndex", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = sequences.IndexOf(s, 50_000, -60_000)
		}
	})
}
