package sequences

import "iter"

// Cursor is a single-use pull iterator over one run of a Sequence.
//
// Two cursors obtained from the same Sequence belong to independent runs and
// never interfere, provided the root source replays.
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()
}

// Cursor starts a new iteration run and returns a pull cursor over it.
// Callers that abandon the cursor before exhaustion should call [Cursor.Stop]
// to release the underlying coroutine.
func (s *Sequence[T]) Cursor() *Cursor[T] {
	next, stop := iter.Pull(s.produce)
	return &Cursor[T]{next: next, stop: stop}
}

// Next returns the next value of the run, or the zero value and false once
// the run is exhausted.
func (c *Cursor[T]) Next() (T, bool) {
	return c.next()
}

// Stop ends the run early. Further Next calls report exhaustion.
func (c *Cursor[T]) Stop() {
	c.stop()
}
