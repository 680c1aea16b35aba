package seq

import (
	"slices"
	"strconv"
	"strings"
)

// Numbers is an ordered, mutable sequence of float64 values.
//
// The zero value is an empty sequence ready to use.
type Numbers struct {
	values []float64
}

// NewNumbers creates a sequence from an ordered list. The list is copied, so
// later changes to values do not affect the sequence.
func NewNumbers(values []float64) *Numbers {
	return &Numbers{values: slices.Clone(values)}
}

// Of creates a sequence from its arguments.
func Of(values ...float64) *Numbers {
	return NewNumbers(values)
}

// Size returns the number of elements.
func (s *Numbers) Size() int {
	return len(s.values)
}

// Values returns a copy of the elements in order.
func (s *Numbers) Values() []float64 {
	out := slices.Clone(s.values)
	if out == nil {
		out = []float64{}
	}

	return out
}

// Get returns the element at index i. It panics when i is out of range.
func (s *Numbers) Get(i int) float64 {
	return s.values[i]
}

// Set writes v at index i and returns the receiver. Writing past the end
// grows the sequence, filling any gap with zeros.
func (s *Numbers) Set(i int, v float64) *Numbers {
	s.values = setElem(s.values, i, v)
	return s
}

// Each calls fn for every element in order and returns the receiver.
func (s *Numbers) Each(fn func(v float64, i int, s *Numbers)) *Numbers {
	for i := 0; i < len(s.values); i++ {
		fn(s.values[i], i, s)
	}

	return s
}

// Map replaces every element with fn's result, in place, and returns the
// receiver.
func (s *Numbers) Map(fn func(v float64, i int, s *Numbers) float64) *Numbers {
	for i := 0; i < len(s.values); i++ {
		s.values[i] = fn(s.values[i], i, s)
	}

	return s
}

// Clone returns an independent copy.
func (s *Numbers) Clone() *Numbers {
	return NewNumbers(s.values)
}

// Sort orders the elements ascending, in place.
func (s *Numbers) Sort() *Numbers {
	slices.Sort(s.values)
	return s
}

// SortFunc orders the elements in place using cmp, which follows the
// slices.SortFunc contract.
func (s *Numbers) SortFunc(cmp func(a, b float64) int) *Numbers {
	slices.SortFunc(s.values, cmp)
	return s
}

// Reverse reverses the elements in place.
func (s *Numbers) Reverse() *Numbers {
	slices.Reverse(s.values)
	return s
}

// Slice returns a new sequence holding the elements in [start, end).
// Negative indexes count back from the end and out-of-range indexes are
// clamped.
func (s *Numbers) Slice(start, end int) *Numbers {
	lo, hi := sliceBounds(start, end, len(s.values))
	return NewNumbers(s.values[lo:hi])
}

// SliceFrom returns a new sequence holding the elements from start to the end.
func (s *Numbers) SliceFrom(start int) *Numbers {
	return s.Slice(start, len(s.values))
}

// Splice removes count elements at start, inserts items in their place and
// returns the removed elements as a new sequence.
func (s *Numbers) Splice(start, count int, items ...float64) *Numbers {
	var removed []float64
	s.values, removed = spliceElems(s.values, start, count, items...)

	return &Numbers{values: removed}
}

// Push appends values and returns the new size.
func (s *Numbers) Push(values ...float64) int {
	s.values = append(s.values, values...)
	return len(s.values)
}

// Pop removes and returns the last element. ok is false on an empty sequence.
func (s *Numbers) Pop() (v float64, ok bool) {
	n := len(s.values)
	if n == 0 {
		return 0, false
	}
	v = s.values[n-1]
	s.values = s.values[:n-1]

	return v, true
}

// Shift removes and returns the first element. ok is false on an empty
// sequence.
func (s *Numbers) Shift() (v float64, ok bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	v = s.values[0]
	s.values = slices.Delete(s.values, 0, 1)

	return v, true
}

// Unshift prepends values, keeping their order, and returns the new size.
func (s *Numbers) Unshift(values ...float64) int {
	s.values = slices.Insert(s.values, 0, values...)
	return len(s.values)
}

// Concat returns a new sequence with the receiver's elements followed by
// those of others.
func (s *Numbers) Concat(others ...*Numbers) *Numbers {
	size := len(s.values)
	for _, o := range others {
		size += o.Size()
	}

	out := make([]float64, 0, size)
	out = append(out, s.values...)
	for _, o := range others {
		out = append(out, o.values...)
	}

	return &Numbers{values: out}
}

// Join formats every element with the shortest exact decimal representation
// and joins them with sep.
func (s *Numbers) Join(sep string) string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strings.Join(parts, sep)
}

// String joins the elements with commas.
func (s *Numbers) String() string {
	return s.Join(",")
}
