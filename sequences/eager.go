package sequences

import (
	"fmt"
	"slices"
	"strings"
)

// Eager operations: each drives iteration immediately (fully, or up to a
// short-circuit point) and returns a plain value. On an infinite sequence the
// non-short-circuiting ones never return.

var (
	ErrEmptySequence = fmt.Errorf("reduce of empty sequence with no initial value")
)

// Len counts the values by iterating fully. The count is recomputed on every
// call, never cached.
func (s *Sequence[T]) Len() int {
	count := 0
	for range s.produce {
		count++
	}
	return count
}

// Every reports whether predicate holds for all values. It short-circuits on
// the first failure and is true for the empty sequence.
func (s *Sequence[T]) Every(predicate func(value T, index int, seq *Sequence[T]) bool) bool {
	index := 0
	for v := range s.produce {
		if !predicate(v, index, s) {
			return false
		}
		index++
	}
	return true
}

// Some reports whether predicate holds for at least one value. It
// short-circuits on the first match and is false for the empty sequence.
func (s *Sequence[T]) Some(predicate func(value T, index int, seq *Sequence[T]) bool) bool {
	index := 0
	for v := range s.produce {
		if predicate(v, index, s) {
			return true
		}
		index++
	}
	return false
}

// Find returns the first value satisfying predicate, or the zero value and
// false if none does.
func (s *Sequence[T]) Find(predicate func(value T, index int, seq *Sequence[T]) bool) (T, bool) {
	index := 0
	for v := range s.produce {
		if predicate(v, index, s) {
			return v, true
		}
		index++
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first value satisfying predicate, or -1
// if none does.
func (s *Sequence[T]) FindIndex(predicate func(value T, index int, seq *Sequence[T]) bool) int {
	index := 0
	for v := range s.produce {
		if predicate(v, index, s) {
			return index
		}
		index++
	}
	return -1
}

// ForEach invokes fn for every value in order.
func (s *Sequence[T]) ForEach(fn func(value T, index int, seq *Sequence[T])) {
	index := 0
	for v := range s.produce {
		fn(v, index, s)
		index++
	}
}

// First returns the first value, pulling at most one, or the zero value and
// false if the sequence is empty.
func (s *Sequence[T]) First() (T, bool) {
	for v := range s.produce {
		return v, true
	}
	var zero T
	return zero, false
}

// Last returns the final value after a full pass, or the zero value and false
// if the sequence is empty.
func (s *Sequence[T]) Last() (T, bool) {
	var last T
	found := false
	for v := range s.produce {
		last = v
		found = true
	}
	return last, found
}

// ItemAt returns the value at the given zero-based index by counting during a
// single forward pass, stopping as soon as it is reached. A negative index or
// one at or beyond the length yields the zero value and false.
func (s *Sequence[T]) ItemAt(index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	i := 0
	for v := range s.produce {
		if i == index {
			return v, true
		}
		i++
	}
	return zero, false
}

// Join concatenates the string conversion of every value, with separator
// between consecutive values and none before the first or after the last.
// The empty sequence yields the empty string.
func (s *Sequence[T]) Join(separator string) string {
	var b strings.Builder
	first := true
	for v := range s.produce {
		if !first {
			b.WriteString(separator)
		}
		fmt.Fprint(&b, v)
		first = false
	}
	return b.String()
}

// Reduce left-folds the sequence with fn. Supplying an initial value seeds
// the accumulator and the first callback sees index 0; omitting it makes the
// first value the seed (never passed through fn) and the first callback sees
// index 1. Whether a seed was supplied is keyed off the argument count alone,
// so a zero-valued initial is a legitimate seed, distinct from omission.
// An empty sequence with no initial value fails with [ErrEmptySequence].
func (s *Sequence[T]) Reduce(fn func(acc, value T, index int, seq *Sequence[T]) T, initial ...T) (T, error) {
	var acc T
	seeded := len(initial) > 0
	if seeded {
		acc = initial[0]
	}
	index := 0
	for v := range s.produce {
		if !seeded {
			acc = v
			seeded = true
		} else {
			acc = fn(acc, v, index, s)
		}
		index++
	}
	if !seeded {
		var zero T
		return zero, ErrEmptySequence
	}
	return acc, nil
}

// ReduceRight folds from the last value to the first, with the same
// initial-value contract as [Sequence.Reduce]. Right-to-left order cannot be
// produced by a single forward pull pass, so the sequence is materialized
// first. Indices passed to fn are source indices, descending.
func (s *Sequence[T]) ReduceRight(fn func(acc, value T, index int, seq *Sequence[T]) T, initial ...T) (T, error) {
	buf := slices.Collect(s.produce)
	i := len(buf) - 1
	var acc T
	if len(initial) > 0 {
		acc = initial[0]
	} else {
		if len(buf) == 0 {
			var zero T
			return zero, ErrEmptySequence
		}
		acc = buf[i]
		i--
	}
	for ; i >= 0; i-- {
		acc = fn(acc, buf[i], i, s)
	}
	return acc, nil
}

// Fold left-folds into an accumulator of a different type. The initial value
// is required; use [Sequence.Reduce] for the optional-seed contract.
func Fold[T, R any](s *Sequence[T], initial R, fn func(acc R, value T, index int, seq *Sequence[T]) R) R {
	acc := initial
	index := 0
	for v := range s.produce {
		acc = fn(acc, v, index, s)
		index++
	}
	return acc
}

// FoldRight folds from the last value to the first into an accumulator of a
// different type, materializing the sequence first.
func FoldRight[T, R any](s *Sequence[T], initial R, fn func(acc R, value T, index int, seq *Sequence[T]) R) R {
	buf := slices.Collect(s.produce)
	acc := initial
	for i := len(buf) - 1; i >= 0; i-- {
		acc = fn(acc, buf[i], i, s)
	}
	return acc
}

// ToSlice materializes the full sequence into a new slice, preserving order.
// Every call runs an independent iteration.
func (s *Sequence[T]) ToSlice() []T {
	return slices.Collect(s.produce)
}
