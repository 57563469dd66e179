package sequences

// Range returns the sequence start, start+step, ... while the value is below
// end (above end for a negative step). A zero step yields nothing.
func Range(start, end, step int) *Sequence[int] {
	return FromSeq(func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	})
}

// Repeat returns a sequence yielding value count times.
func Repeat[T any](value T, count int) *Sequence[T] {
	return FromSeq(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	})
}

// Generate returns the infinite sequence f(0), f(1), f(2), ...
// Only short-circuiting consumers (a bounded [Sequence.Slice], [Sequence.Find],
// [Sequence.ItemAt], a cursor) terminate on it.
func Generate[T any](f func(index int) T) *Sequence[T] {
	return FromSeq(func(yield func(T) bool) {
		for i := 0; ; i++ {
			if !yield(f(i)) {
				return
			}
		}
	})
}
