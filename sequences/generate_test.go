package sequences_test

import (
	"slices"
	"testing"

	"lazyseq/sequences"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"Ascending", 0, 5, 1, []int{0, 1, 2, 3, 4}},
		{"Stepped", 1, 10, 3, []int{1, 4, 7}},
		{"Descending", 5, 0, -2, []int{5, 3, 1}},
		{"EmptyRange", 3, 3, 1, nil},
		{"ZeroStep", 0, 5, 0, nil},
		{"WrongDirection", 5, 0, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sequences.Range(tt.start, tt.end, tt.step).ToSlice()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Range(%d, %d, %d) = %v, want %v", tt.start, tt.end, tt.step, got, tt.want)
			}
		})
	}

	t.Run("Replayable", func(t *testing.T) {
		r := sequences.Range(0, 3, 1)
		if !slices.Equal(r.ToSlice(), r.ToSlice()) {
			t.Error("Range() runs are not independent")
		}
	})
}

func TestRepeat(t *testing.T) {
	got := sequences.Repeat("x", 3).ToSlice()
	if !slices.Equal(got, []string{"x", "x", "x"}) {
		t.Errorf("Repeat() = %v", got)
	}
	if got := sequences.Repeat(1, 0).Len(); got != 0 {
		t.Errorf("Repeat(1, 0).Len() = %v, want 0", got)
	}
}

func TestGenerate(t *testing.T) {
	squares := sequences.Generate(func(i int) int { return i * i })

	got := squares.Slice(0, 4).ToSlice()
	if !slices.Equal(got, []int{0, 1, 4, 9}) {
		t.Errorf("Generate squares = %v, want [0 1 4 9]", got)
	}

	t.Run("LazyChainsStayBounded", func(t *testing.T) {
		got := squares.
			Filter(func(v, _ int, _ *sequences.Sequence[int]) bool { return v%2 == 0 }).
			Slice(0, 3).
			ToSlice()
		if !slices.Equal(got, []int{0, 4, 16}) {
			t.Errorf("filtered squares = %v, want [0 4 16]", got)
		}
	})
}
