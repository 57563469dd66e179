package sequences_test

import (
	"testing"

	"lazyseq/sequences"
)

func TestSum(t *testing.T) {
	if got := sequences.Sum(sequences.FromSlice([]int{1, 2, 3})); got != 6 {
		t.Errorf("Sum() = %v, want 6", got)
	}
	if got := sequences.Sum(sequences.FromSlice([]float64{0.5, 1.5})); got != 2.0 {
		t.Errorf("Sum() = %v, want 2.0", got)
	}
	if got := sequences.Sum(sequences.FromSlice([]int{})); got != 0 {
		t.Errorf("Sum() on empty = %v, want 0", got)
	}
}

func TestMinMax(t *testing.T) {
	s := sequences.FromSlice([]int{3, 1, 4, 1, 5})

	if v, ok := sequences.Min(s); !ok || v != 1 {
		t.Errorf("Min() = (%v, %v), want (1, true)", v, ok)
	}
	if v, ok := sequences.Max(s); !ok || v != 5 {
		t.Errorf("Max() = (%v, %v), want (5, true)", v, ok)
	}

	empty := sequences.FromSlice([]int{})
	if _, ok := sequences.Min(empty); ok {
		t.Error("Min() on empty should report false")
	}
	if _, ok := sequences.Max(empty); ok {
		t.Error("Max() on empty should report false")
	}

	t.Run("Strings", func(t *testing.T) {
		words := sequences.FromSlice([]string{"pear", "apple", "plum"})
		if v, _ := sequences.Min(words); v != "apple" {
			t.Errorf("Min() = %v, want apple", v)
		}
	})
}
