// Package chainstat is a statistics toolkit built around chainable numeric
// sequences.
//
// The seq package holds the two containers: Numbers, an ordered list of
// float64 values, and Records, an ordered list of named-field records such
// as {x, y} points. Mutating methods work in place and return the receiver so
// calls chain; derived sequences (Clone, Slice, Pluck) never share storage
// with their source.
//
//	s := chainstat.Of(12, 19, 4, 1, 2, 5, 8)
//	median, _ := s.Median()
//	outliers, _ := s.FindOutliers()
//
// The remaining packages build on the containers:
//
//   - regression: correlation and linear, exponential and power fits
//   - combin: integer ranges, factorials, permutations, combinations
//   - dist: binomial, geometric and normal distributions
//   - infer: z tests and z intervals
//   - snapshot: compact checksummed binary encoding
//
// This package re-exports the constructors and offers one-call helpers for
// the most common tasks. Every error wraps one of the classes in the errs
// package.
package chainstat

import (
	"fmt"

	"github.com/arloliu/chainstat/combin"
	"github.com/arloliu/chainstat/regression"
	"github.com/arloliu/chainstat/seq"
)

// Of creates a numeric sequence from its arguments.
func Of(values ...float64) *seq.Numbers {
	return seq.Of(values...)
}

// NewNumbers creates a numeric sequence from a copy of values.
func NewNumbers(values []float64) *seq.Numbers {
	return seq.NewNumbers(values)
}

// RecordsOf creates a record sequence from its arguments.
func RecordsOf(records ...seq.Record) *seq.Records {
	return seq.RecordsOf(records...)
}

// NewRecords creates a record sequence from copies of records.
func NewRecords(records []seq.Record) *seq.Records {
	return seq.NewRecords(records)
}

// Points pairs xs[i] with ys[i] into coordinate records.
func Points(xs, ys *seq.Numbers) (*seq.Records, error) {
	return seq.Points(xs, ys)
}

// Range returns the integers lower..upper inclusive.
func Range(lower, upper int) *seq.Numbers {
	return combin.List(lower, upper)
}

// Summary is the five-number summary of a sequence plus its moments.
type Summary struct {
	Count  int
	Sum    float64
	Mean   float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	IQR    float64
	// StdDev is the sample standard deviation.
	StdDev float64
}

func (s *Summary) String() string {
	return fmt.Sprintf("n=%d mean=%g sd=%g min=%g q1=%g median=%g q3=%g max=%g",
		s.Count, s.Mean, s.StdDev, s.Min, s.Q1, s.Median, s.Q3, s.Max)
}

// Describe computes a Summary of s. It needs at least two values, because
// quartiles and the sample standard deviation are undefined below that.
func Describe(s *seq.Numbers) (*Summary, error) {
	var (
		out = Summary{Count: s.Size(), Sum: s.Sum()}
		err error
	)

	steps := []struct {
		name string
		dst  *float64
		fn   func() (float64, error)
	}{
		{"mean", &out.Mean, s.Mean},
		{"min", &out.Min, s.Min},
		{"q1", &out.Q1, s.Q1},
		{"median", &out.Median, s.Median},
		{"q3", &out.Q3, s.Q3},
		{"max", &out.Max, s.Max},
		{"iqr", &out.IQR, s.IQR},
		{"stddev", &out.StdDev, s.StdDev},
	}
	for _, step := range steps {
		if *step.dst, err = step.fn(); err != nil {
			return nil, fmt.Errorf("describe %s: %w", step.name, err)
		}
	}

	return &out, nil
}

// BestFit fits the linear, exponential and power models to points and
// returns the one with the highest R².
func BestFit(points *seq.Records) (*regression.Model, error) {
	result, err := regression.Fit(points)
	if err != nil {
		return nil, err
	}

	return result.BestFit, nil
}
