package seq

import (
	"maps"
	"slices"
)

// Field names used by coordinate data.
const (
	FieldX = "x"
	FieldY = "y"
)

// Record is an element with named numeric fields.
type Record map[string]float64

// Point creates a coordinate record.
func Point(x, y float64) Record {
	return Record{FieldX: x, FieldY: y}
}

// X returns the "x" field, or 0 when absent.
func (r Record) X() float64 {
	return r[FieldX]
}

// Y returns the "y" field, or 0 when absent.
func (r Record) Y() float64 {
	return r[FieldY]
}

// Field returns the named field and whether it is present.
func (r Record) Field(name string) (float64, bool) {
	v, ok := r[name]
	return v, ok
}

// Fields returns the field names in sorted order.
func (r Record) Fields() []string {
	return slices.Sorted(maps.Keys(r))
}

// Clone returns an independent copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	return maps.Clone(r)
}

func cloneRecords(src []Record) []Record {
	if src == nil {
		return nil
	}

	out := make([]Record, len(src))
	for i, r := range src {
		out[i] = r.Clone()
	}

	return out
}
