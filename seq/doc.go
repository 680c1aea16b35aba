// Package seq provides the ordered containers every chainstat computation
// runs on, together with the statistics defined directly over them.
//
// Two container variants exist, chosen by the constructor the caller uses:
//
//   - Numbers holds bare float64 values. Descriptive statistics, outlier
//     analysis and number theory (GCD/LCM) are methods on Numbers.
//   - Records holds Record values, maps of named numeric fields. Coordinate
//     data uses the "x" and "y" fields and feeds the regression package.
//
// # Ownership
//
// Every container owns its backing storage. Constructors copy their input,
// and every derived container (Clone, Slice, Concat, Pluck, Splice's removed
// elements, FindOutliers, ...) is allocated fresh, so mutating one container
// never changes another. Records clones copy each record map as well.
//
// # Chaining
//
// Mutators that have nothing else to report (Each, Map, Set, Sort, SortFunc,
// Reverse) act in place and return the receiver:
//
//	s := seq.Of(1, 4, 2, 5, 3).Sort().Map(func(v float64, _ int, _ *seq.Numbers) float64 {
//	    return v * v
//	})
//	fmt.Println(s) // 1,4,9,16,25
//
// # Errors
//
// Statistics that are undefined for the given input return an error from
// the errs package instead of a silent NaN: errs.ErrEmptySequence for empty
// input, errs.ErrInsufficientData when a sample statistic needs at least two
// values, and errs.ErrMissingField when a record lacks a requested field.
// Arithmetic edge cases inside well-formed input (for example the logarithm
// of a non-positive value in a regression) propagate as IEEE 754 results.
//
// # Concurrency
//
// Containers are not safe for concurrent mutation. Callers sharing one
// container between goroutines must serialize access.
package seq
