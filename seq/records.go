package seq

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/chainstat/errs"
)

// Records is an ordered, mutable sequence of Record values.
//
// Get returns the stored record itself; clone it before modifying fields if
// the sequence must stay unchanged. Every derived sequence holds its own
// record copies.
type Records struct {
	items []Record
}

// NewRecords creates a sequence from an ordered list of records. Both the
// list and each record are copied.
func NewRecords(items []Record) *Records {
	return &Records{items: cloneRecords(items)}
}

// RecordsOf creates a sequence from its arguments.
func RecordsOf(items ...Record) *Records {
	return NewRecords(items)
}

// Points recombines two columns into coordinate records, pairing xs[i] with
// ys[i].
func Points(xs, ys *Numbers) (*Records, error) {
	if xs.Size() != ys.Size() {
		return nil, fmt.Errorf("points from %d x and %d y values: %w", xs.Size(), ys.Size(), errs.ErrMismatchedLengths)
	}

	items := make([]Record, xs.Size())
	for i := range items {
		items[i] = Point(xs.values[i], ys.values[i])
	}

	return &Records{items: items}, nil
}

// Size returns the number of records.
func (s *Records) Size() int {
	return len(s.items)
}

// Records returns copies of the records in order.
func (s *Records) Records() []Record {
	out := cloneRecords(s.items)
	if out == nil {
		out = []Record{}
	}

	return out
}

// Get returns the record at index i. It panics when i is out of range.
func (s *Records) Get(i int) Record {
	return s.items[i]
}

// Set stores r at index i and returns the receiver. Writing past the end
// grows the sequence with nil records.
func (s *Records) Set(i int, r Record) *Records {
	s.items = setElem(s.items, i, r)
	return s
}

// Each calls fn for every record in order and returns the receiver.
func (s *Records) Each(fn func(r Record, i int, s *Records)) *Records {
	for i := 0; i < len(s.items); i++ {
		fn(s.items[i], i, s)
	}

	return s
}

// Map replaces every record with fn's result, in place, and returns the
// receiver.
func (s *Records) Map(fn func(r Record, i int, s *Records) Record) *Records {
	for i := 0; i < len(s.items); i++ {
		s.items[i] = fn(s.items[i], i, s)
	}

	return s
}

// Clone returns an independent copy, records included.
func (s *Records) Clone() *Records {
	return NewRecords(s.items)
}

// Pluck returns a new sequence with the named field of every record.
func (s *Records) Pluck(field string) (*Numbers, error) {
	out := make([]float64, len(s.items))
	for i, r := range s.items {
		v, ok := r[field]
		if !ok {
			return nil, fmt.Errorf("pluck %q from record %d: %w", field, i, errs.ErrMissingField)
		}
		out[i] = v
	}

	return &Numbers{values: out}, nil
}

// Columns plucks the "x" and "y" fields.
func (s *Records) Columns() (xs, ys *Numbers, err error) {
	if xs, err = s.Pluck(FieldX); err != nil {
		return nil, nil, err
	}
	if ys, err = s.Pluck(FieldY); err != nil {
		return nil, nil, err
	}

	return xs, ys, nil
}

// SortBy orders the records ascending by the named field, in place. A record
// missing the field is reported before anything is moved.
func (s *Records) SortBy(field string) (*Records, error) {
	if err := s.requireField(field); err != nil {
		return s, fmt.Errorf("sort by %q: %w", field, err)
	}

	slices.SortFunc(s.items, func(a, b Record) int {
		return cmp.Compare(a[field], b[field])
	})

	return s, nil
}

// SortFunc orders the records in place using compare.
func (s *Records) SortFunc(compare func(a, b Record) int) *Records {
	slices.SortFunc(s.items, compare)
	return s
}

// Reverse reverses the records in place.
func (s *Records) Reverse() *Records {
	slices.Reverse(s.items)
	return s
}

// MinBy returns a copy of the first record with the smallest value of field.
func (s *Records) MinBy(field string) (Record, error) {
	return s.extremeBy(field, -1)
}

// MaxBy returns a copy of the first record with the largest value of field.
func (s *Records) MaxBy(field string) (Record, error) {
	return s.extremeBy(field, 1)
}

func (s *Records) extremeBy(field string, sign int) (Record, error) {
	if len(s.items) == 0 {
		return nil, errs.ErrEmptySequence
	}
	if err := s.requireField(field); err != nil {
		return nil, err
	}

	best := s.items[0]
	for _, r := range s.items[1:] {
		if cmp.Compare(r[field], best[field]) == sign {
			best = r
		}
	}

	return best.Clone(), nil
}

func (s *Records) requireField(field string) error {
	for i, r := range s.items {
		if _, ok := r[field]; !ok {
			return fmt.Errorf("record %d has no %q: %w", i, field, errs.ErrMissingField)
		}
	}

	return nil
}

// Slice returns a new sequence holding copies of the records in
// [start, end). Indexes follow the same rules as Numbers.Slice.
func (s *Records) Slice(start, end int) *Records {
	lo, hi := sliceBounds(start, end, len(s.items))
	return NewRecords(s.items[lo:hi])
}

// SliceFrom returns a new sequence holding copies of the records from start
// to the end.
func (s *Records) SliceFrom(start int) *Records {
	return s.Slice(start, len(s.items))
}

// Splice removes count records at start, inserts items in their place and
// returns the removed records as a new sequence.
func (s *Records) Splice(start, count int, items ...Record) *Records {
	var removed []Record
	s.items, removed = spliceElems(s.items, start, count, items...)

	return &Records{items: removed}
}

// Push appends records and returns the new size.
func (s *Records) Push(items ...Record) int {
	s.items = append(s.items, items...)
	return len(s.items)
}

// Pop removes and returns the last record.
func (s *Records) Pop() (Record, bool) {
	n := len(s.items)
	if n == 0 {
		return nil, false
	}
	r := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]

	return r, true
}

// Shift removes and returns the first record.
func (s *Records) Shift() (Record, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	r := s.items[0]
	s.items = slices.Delete(s.items, 0, 1)

	return r, true
}

// Unshift prepends records and returns the new size.
func (s *Records) Unshift(items ...Record) int {
	s.items = slices.Insert(s.items, 0, items...)
	return len(s.items)
}

// Concat returns a new sequence with copies of the receiver's records
// followed by copies of those in others.
func (s *Records) Concat(others ...*Records) *Records {
	out := cloneRecords(s.items)
	for _, o := range others {
		out = append(out, cloneRecords(o.items)...)
	}

	return &Records{items: out}
}

// FieldSet returns the sorted field names shared by every record. It reports
// errs.ErrHeterogeneousFields when records disagree.
func (s *Records) FieldSet() ([]string, error) {
	if len(s.items) == 0 {
		return []string{}, nil
	}

	fields := s.items[0].Fields()
	for i, r := range s.items[1:] {
		if !slices.Equal(fields, r.Fields()) {
			return nil, fmt.Errorf("record %d fields %v differ from %v: %w", i+1, r.Fields(), fields, errs.ErrHeterogeneousFields)
		}
	}

	return fields, nil
}
