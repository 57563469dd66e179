package sequences

import "golang.org/x/exp/constraints"

// Number covers the built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up all values of a numeric sequence. The empty sequence sums to
// zero.
func Sum[T Number](s *Sequence[T]) T {
	var total T
	for v := range s.produce {
		total += v
	}
	return total
}

// Min returns the smallest value, or the zero value and false if the sequence
// is empty.
func Min[T constraints.Ordered](s *Sequence[T]) (T, bool) {
	var min T
	first := true
	for v := range s.produce {
		if first || v < min {
			min = v
			first = false
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

// Max returns the largest value, or the zero value and false if the sequence
// is empty.
func Max[T constraints.Ordered](s *Sequence[T]) (T, bool) {
	var max T
	first := true
	for v := range s.produce {
		if first || v > max {
			max = v
			first = false
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return max, true
}
