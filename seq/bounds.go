package seq

import "slices"

// resolveIndex maps a possibly negative index onto [0, n]. Negative values
// count back from the end.
func resolveIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}

		return i
	}
	if i > n {
		return n
	}

	return i
}

// sliceBounds returns the clamped [start, end) window of a slice of length n.
func sliceBounds(start, end, n int) (int, int) {
	lo := resolveIndex(start, n)
	hi := resolveIndex(end, n)
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// spliceElems removes count elements at start, inserts items in their place
// and returns the updated slice plus an independent copy of what was removed.
func spliceElems[T any](elems []T, start, count int, items ...T) ([]T, []T) {
	n := len(elems)
	lo := resolveIndex(start, n)
	if count < 0 {
		count = 0
	}
	hi := lo + count
	if hi > n {
		hi = n
	}

	removed := slices.Clone(elems[lo:hi])
	if removed == nil {
		removed = []T{}
	}

	return slices.Replace(elems, lo, hi, items...), removed
}

// setElem writes v at index i, growing elems with zero values when i is past
// the end. A negative index panics like a native slice access.
func setElem[T any](elems []T, i int, v T) []T {
	if i >= len(elems) {
		elems = append(elems, make([]T, i-len(elems)+1)...)
	}
	elems[i] = v

	return elems
}
