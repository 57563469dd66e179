package sequences

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Lazy operations: each returns a new Sequence wrapping a new production
// function and performs zero pulls from the source at construction time.
// Caller-supplied callbacks receive (value, index, sequence), where sequence
// is the Sequence the method was called on.

// Concat returns a sequence yielding all of s's values followed by the given
// items, left to right. An item that is sequence-like (*Sequence[T],
// Iterable[T], []T, iter.Seq[T] or a raw func(func(T) bool)) contributes all
// of its values; a plain value of type T contributes itself. Any other item
// cannot be yielded as a T and panics here, at construction.
func (s *Sequence[T]) Concat(items ...any) *Sequence[T] {
	parts := make([]iter.Seq[T], 0, len(items)+1)
	parts = append(parts, s.produce)
	for _, item := range items {
		parts = append(parts, concatPart[T](item))
	}
	return FromSeq(func(yield func(T) bool) {
		for _, part := range parts {
			for v := range part {
				if !yield(v) {
					return
				}
			}
		}
	})
}

func concatPart[T any](item any) iter.Seq[T] {
	if isNilValue(item) {
		panic(fmt.Sprintf("sequences: cannot concat nil %T onto a sequence", item))
	}
	switch it := item.(type) {
	case *Sequence[T]:
		return it.produce
	case Iterable[T]:
		return func(yield func(T) bool) {
			for v := range it.Seq() {
				if !yield(v) {
					return
				}
			}
		}
	case []T:
		return slices.Values(it)
	case iter.Seq[T]:
		return it
	case func(func(T) bool):
		return iter.Seq[T](it)
	case T:
		return func(yield func(T) bool) {
			yield(it)
		}
	default:
		panic(fmt.Sprintf("sequences: cannot concat %T onto a sequence of %T", item, *new(T)))
	}
}

// Entry is an (index, value) pair yielded by [Entries].
type Entry[T any] struct {
	Index int
	Value T
}

// Entries returns a sequence of (index, value) pairs in source order, indices
// starting at 0. It lives at package level like [Map]: a method returning
// *Sequence[Entry[T]] would force the compiler into an endless chain of
// instantiations (Sequence[T] needs Sequence[Entry[T]], which needs
// Sequence[Entry[Entry[T]]], ...).
func Entries[T any](s *Sequence[T]) *Sequence[Entry[T]] {
	src := s.produce
	return FromSeq(func(yield func(Entry[T]) bool) {
		index := 0
		for v := range src {
			if !yield(Entry[T]{Index: index, Value: v}) {
				return
			}
			index++
		}
	})
}

// Filter returns a sequence of the values for which predicate returns true.
// The index passed to predicate counts positions of the source sequence, not
// positions in the filtered result.
func (s *Sequence[T]) Filter(predicate func(value T, index int, seq *Sequence[T]) bool) *Sequence[T] {
	return FromSeq(func(yield func(T) bool) {
		index := 0
		for v := range s.produce {
			if predicate(v, index, s) {
				if !yield(v) {
					return
				}
			}
			index++
		}
	})
}

// Keys returns the sequence 0..n-1, one index per source value, without
// yielding the values themselves.
func (s *Sequence[T]) Keys() *Sequence[int] {
	src := s.produce
	return FromSeq(func(yield func(int) bool) {
		index := 0
		for range src {
			if !yield(index) {
				return
			}
			index++
		}
	})
}

// Map returns a sequence of transform applied to each value in source order.
// The method form is restricted to transforms that keep the value type; use
// the package-level [Map] to change it.
func (s *Sequence[T]) Map(transform func(value T, index int, seq *Sequence[T]) T) *Sequence[T] {
	return Map(s, transform)
}

// Map returns a sequence of transform applied to each value of s in order.
// It lives at package level because a method cannot introduce the result type
// parameter R.
func Map[T, R any](s *Sequence[T], transform func(value T, index int, seq *Sequence[T]) R) *Sequence[R] {
	return FromSeq(func(yield func(R) bool) {
		index := 0
		for v := range s.produce {
			if !yield(transform(v, index, s)) {
				return
			}
			index++
		}
	})
}

// Reverse returns a sequence yielding s's values back-to-front. The source is
// fully materialized per iteration run (reversal cannot be produced by a
// single forward pass); the source itself is never mutated.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	src := s.produce
	return FromSeq(func(yield func(T) bool) {
		buf := slices.Collect(src)
		for i := len(buf) - 1; i >= 0; i-- {
			if !yield(buf[i]) {
				return
			}
		}
	})
}

// Slice returns the values whose zero-based source index i satisfies
// begin <= i < end. Call shapes: Slice() yields everything, Slice(begin)
// leaves the upper bound open, Slice(begin, end) bounds both sides; further
// bounds are ignored. Iteration stops pulling once end is reached, so a
// bounded Slice is safe on infinite sequences.
//
// Unlike [IndexOf] and [Contains], negative bounds are NOT normalized against
// the length: a negative begin admits every index and a negative end admits
// none. Callers wanting end-relative bounds must resolve them beforehand.
func (s *Sequence[T]) Slice(bounds ...int) *Sequence[T] {
	begin, end := 0, 0
	bounded := false
	switch len(bounds) {
	case 0:
	case 1:
		begin = bounds[0]
	default:
		begin, end = bounds[0], bounds[1]
		bounded = true
	}
	src := s.produce
	return FromSeq(func(yield func(T) bool) {
		index := 0
		for v := range src {
			if bounded && index >= end {
				return
			}
			if index >= begin {
				if !yield(v) {
					return
				}
			}
			index++
		}
	})
}

// Sort returns a sequence yielding s's values in sorted order. With no
// comparator, values are ordered by their string conversion, ascending — the
// array-default-sort convention, which orders numbers lexicographically
// ("10" before "2"). The sort is stable. The source is fully materialized per
// iteration run and never mutated.
func (s *Sequence[T]) Sort(compare ...func(a, b T) int) *Sequence[T] {
	cmp := defaultCompare[T]
	if len(compare) > 0 && compare[0] != nil {
		cmp = compare[0]
	}
	src := s.produce
	return FromSeq(func(yield func(T) bool) {
		buf := slices.Collect(src)
		slices.SortStableFunc(buf, cmp)
		for _, v := range buf {
			if !yield(v) {
				return
			}
		}
	})
}

func defaultCompare[T any](a, b T) int {
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// Values returns a pass-through copy of s: same values, same order, detached
// identity. Equivalent to Concat with no arguments.
func (s *Sequence[T]) Values() *Sequence[T] {
	return s.Concat()
}
