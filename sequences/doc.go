/*
Package sequences provides a deferred-evaluation wrapper over Go 1.23+ iterators
(iter.Seq): a [Sequence] represents a potentially unbounded or expensive ordered
stream of values and exposes array-like operations over it without materializing
intermediate results.

Operations split into two families:

  - **Lazy operations** ([Sequence.Concat], [Sequence.Filter], [Sequence.Map],
    [Sequence.Slice], [Sequence.Sort], ...) return a new Sequence wrapping a new
    production function. Constructing them performs zero pulls from the source;
    cost is only paid when the chain is eventually driven.
  - **Eager operations** ([Sequence.Len], [Sequence.Reduce], [Sequence.Find],
    [Sequence.ToSlice], ...) drive iteration immediately and return a plain value.

# Re-iterability

A Sequence stores a production function, not values. Every iteration run invokes
it again, so a Sequence built from a replayable source (a slice, an [Iterable],
another Sequence) can be consumed any number of times, each run independent of
the others. A single-use iter.Seq handed to [FromSeq] is the one construction
path where replay safety is the caller's responsibility.

# Infinite sequences

Sources may be unbounded ([Generate]). Lazy operations and short-circuiting
eager operations ([Sequence.Some], [Sequence.Find], [Sequence.ItemAt], a bounded
[Sequence.Slice]) remain usable; an eager operation that needs the full length
([Sequence.Len], [Sequence.Sort], [Sequence.Reverse]) never returns on an
infinite source.

# Errors

Construction rejects unusable sources with [ErrInvalidSource] immediately, never
at iteration time. [Sequence.Reduce] and [Sequence.ReduceRight] fail with
[ErrEmptySequence] when the sequence is empty and no initial value was supplied.
Panics raised by caller-supplied callbacks propagate unmodified.
*/
package sequences
