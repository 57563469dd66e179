package sequences

// Equality searches live as package functions, not methods: they need T to be
// comparable, which a method cannot require of an existing type parameter.
// Equality is Go's ==.
//
// A negative fromIndex is an offset from the end of the sequence. The length
// is not known until exhaustion, so negative-offset searches make one full
// pass, buffering candidate match indices, and resolve the effective start
// once the length is known — the source is still pulled only once.

// IndexOf returns the first index at or beyond the effective start whose
// value equals v, or -1 if there is none. fromIndex defaults to 0; a negative
// fromIndex counts from the end and is clamped to 0 if still negative, so the
// whole sequence is searched.
func IndexOf[T comparable](s *Sequence[T], v T, fromIndex ...int) int {
	start := 0
	if len(fromIndex) > 0 {
		start = fromIndex[0]
	}
	if start >= 0 {
		index := 0
		for item := range s.produce {
			if index >= start && item == v {
				return index
			}
			index++
		}
		return -1
	}

	matches, length := matchIndices(s, v)
	start = max(length+start, 0)
	for _, i := range matches {
		if i >= start {
			return i
		}
	}
	return -1
}

// Contains reports whether the sequence holds a value equal to v at or beyond
// the effective start. Same fromIndex resolution as [IndexOf].
func Contains[T comparable](s *Sequence[T], v T, fromIndex ...int) bool {
	return IndexOf(s, v, fromIndex...) >= 0
}

// LastIndexOf returns the index of the last value equal to v at or before the
// effective end, or -1 if there is none. fromIndex defaults to length-1 and
// is clamped down to it; a negative fromIndex counts from the end, and if the
// offset reaches before the start nothing matches.
func LastIndexOf[T comparable](s *Sequence[T], v T, fromIndex ...int) int {
	matches, length := matchIndices(s, v)
	end := length - 1
	if len(fromIndex) > 0 {
		end = fromIndex[0]
		if end < 0 {
			end += length
		}
		if end > length-1 {
			end = length - 1
		}
	}
	if end < 0 {
		return -1
	}
	// nearest-to-end first
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i] <= end {
			return matches[i]
		}
	}
	return -1
}

// matchIndices records every index holding v during one forward pass and
// returns them in ascending order along with the total length.
func matchIndices[T comparable](s *Sequence[T], v T) ([]int, int) {
	var matches []int
	length := 0
	for item := range s.produce {
		if item == v {
			matches = append(matches, length)
		}
		length++
	}
	return matches, length
}
