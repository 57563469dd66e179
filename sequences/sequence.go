package sequences

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

var (
	ErrInvalidSource = fmt.Errorf("source is neither iterable nor a production function")
)

// Iterable is anything that can hand out a fresh iteration run on demand.
// In-memory collections and cursor-bearing containers satisfy it naturally;
// [Sequence] satisfies it too, so sequences compose with each other.
type Iterable[T any] interface {
	Seq() iter.Seq[T]
}

// Sequence is a deferred view over an ordered stream of values of type T.
//
// It holds exactly one thing: a production function. Each iteration run
// invokes that function again, so a Sequence never consumes or mutates its
// source by being constructed, and can be iterated repeatedly as long as the
// root source replays. Derived sequences hold their source by reference,
// forming a chain of production functions that is only walked when an eager
// operation drives it.
type Sequence[T any] struct {
	produce iter.Seq[T]
}

// New builds a Sequence from any recognized source form:
//
//   - *Sequence[T]: shares the replay mechanism of the given sequence
//   - Iterable[T]: requests a fresh run from the source on every iteration
//   - []T: iterates the slice contents, replay-safe
//   - iter.Seq[T] (or a raw func(func(T) bool)): used as the production
//     function directly, see the caveat on [FromSeq]
//
// Anything else, including nil, fails with [ErrInvalidSource]. The check
// happens here, never at iteration time.
func New[T any](source any) (*Sequence[T], error) {
	switch src := source.(type) {
	case nil:
		return nil, ErrInvalidSource
	case *Sequence[T]:
		if src == nil {
			return nil, ErrInvalidSource
		}
		return FromSeq(src.produce), nil
	case Iterable[T]:
		// a typed nil would defer the nil dereference to iteration time
		if isNilValue(src) {
			return nil, ErrInvalidSource
		}
		return FromIterable(src), nil
	case []T:
		return FromSlice(src), nil
	case iter.Seq[T]:
		return FromSeq(src), nil
	case func(func(T) bool):
		return FromSeq(iter.Seq[T](src)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSource, source)
	}
}

// FromSequence always returns a fresh Sequence re-wrapping the full content of
// the given source, whether or not it already is a Sequence. It copies the
// reference to the underlying replay mechanism, not the values.
func FromSequence[T any](source any) (*Sequence[T], error) {
	s, err := New[T](source)
	if err != nil {
		return nil, err
	}
	return s.Values(), nil
}

// FromSlice wraps an in-memory slice. Replay-safe: every run re-reads the
// slice contents.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{produce: slices.Values(items)}
}

// FromSeq wraps a production function directly.
//
// Replay safety is the caller's responsibility here: the Sequence is
// re-iterable if and only if seq restarts from the beginning on each call.
// That holds for seqs built over in-memory data (slices.Values, maps.Keys)
// and for every sequence this package constructs, but not for a one-shot
// cursor adapted into an iter.Seq. A nil seq behaves as an empty sequence.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	if seq == nil {
		seq = func(yield func(T) bool) {}
	}
	return &Sequence[T]{produce: seq}
}

// FromIterable wraps a source that hands out iteration runs on demand. Every
// run of the Sequence requests a new run from src, so replay safety follows
// from the source's own.
func FromIterable[T any](src Iterable[T]) *Sequence[T] {
	return &Sequence[T]{produce: func(yield func(T) bool) {
		for v := range src.Seq() {
			if !yield(v) {
				return
			}
		}
	}}
}

// Seq exposes the production function, making Sequence itself an [Iterable].
// Each `for range` over the result is one independent iteration run.
func (s *Sequence[T]) Seq() iter.Seq[T] {
	return s.produce
}

// isNilValue reports whether v is a typed nil hiding inside a non-nil
// interface value.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
