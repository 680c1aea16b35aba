package seq

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/internal/pool"
)

// Sum returns the total of all elements. The sum of an empty sequence is 0.
func (s *Numbers) Sum() float64 {
	total := 0.0
	for _, v := range s.values {
		total += v
	}

	return total
}

// Mean returns Sum() / Size().
func (s *Numbers) Mean() (float64, error) {
	if len(s.values) == 0 {
		return 0, fmt.Errorf("mean: %w", errs.ErrEmptySequence)
	}

	return s.Sum() / float64(len(s.values)), nil
}

// Min returns the smallest element.
func (s *Numbers) Min() (float64, error) {
	if len(s.values) == 0 {
		return 0, fmt.Errorf("min: %w", errs.ErrEmptySequence)
	}

	minimum := s.values[0]
	for _, v := range s.values[1:] {
		if v < minimum {
			minimum = v
		}
	}

	return minimum, nil
}

// Max returns the largest element.
func (s *Numbers) Max() (float64, error) {
	if len(s.values) == 0 {
		return 0, fmt.Errorf("max: %w", errs.ErrEmptySequence)
	}

	maximum := s.values[0]
	for _, v := range s.values[1:] {
		if v > maximum {
			maximum = v
		}
	}

	return maximum, nil
}

// Median returns the middle element of the ascending order, or the average
// of the two middle elements when the size is even. The receiver keeps its
// order.
func (s *Numbers) Median() (float64, error) {
	if len(s.values) == 0 {
		return 0, fmt.Errorf("median: %w", errs.ErrEmptySequence)
	}

	sorted, release := s.sortedScratch()
	defer release()

	return medianOfSorted(sorted), nil
}

// Q1 returns the first quartile: the median of the lowest floor(n/2)
// elements.
func (s *Numbers) Q1() (float64, error) {
	sorted, release := s.sortedScratch()
	defer release()

	return lowerQuartile(sorted)
}

// Q3 returns the third quartile: the median of the elements from index
// ceil(n/2) of the ascending order to the end.
func (s *Numbers) Q3() (float64, error) {
	sorted, release := s.sortedScratch()
	defer release()

	return upperQuartile(sorted)
}

// IQR returns Q3() - Q1().
func (s *Numbers) IQR() (float64, error) {
	sorted, release := s.sortedScratch()
	defer release()

	return interquartileRange(sorted)
}

// Variance returns the sample variance, Σ(x - mean)² / (n - 1).
func (s *Numbers) Variance() (float64, error) {
	n := len(s.values)
	switch {
	case n == 0:
		return 0, fmt.Errorf("variance: %w", errs.ErrEmptySequence)
	case n == 1:
		return 0, fmt.Errorf("variance of a single value: %w", errs.ErrInsufficientData)
	}

	mean := s.Sum() / float64(n)
	sumSq := 0.0
	for _, v := range s.values {
		d := v - mean
		sumSq += d * d
	}

	return sumSq / float64(n-1), nil
}

// StdDev returns the sample standard deviation, the square root of Variance.
func (s *Numbers) StdDev() (float64, error) {
	variance, err := s.Variance()
	if err != nil {
		return 0, err
	}

	return math.Sqrt(variance), nil
}

// sortedScratch returns a pooled, ascending copy of the elements.
func (s *Numbers) sortedScratch() ([]float64, func()) {
	sorted, release := pool.CopyFloat64s(s.values)
	slices.Sort(sorted)

	return sorted, release
}

func medianOfSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return sorted[n/2]
}

func lowerQuartile(sorted []float64) (float64, error) {
	half := sorted[:len(sorted)/2]
	if len(half) == 0 {
		return 0, fmt.Errorf("q1 of %d values: %w", len(sorted), errs.ErrEmptySequence)
	}

	return medianOfSorted(half), nil
}

func upperQuartile(sorted []float64) (float64, error) {
	half := sorted[(len(sorted)+1)/2:]
	if len(half) == 0 {
		return 0, fmt.Errorf("q3 of %d values: %w", len(sorted), errs.ErrEmptySequence)
	}

	return medianOfSorted(half), nil
}

func interquartileRange(sorted []float64) (float64, error) {
	q1, err := lowerQuartile(sorted)
	if err != nil {
		return 0, err
	}
	q3, err := upperQuartile(sorted)
	if err != nil {
		return 0, err
	}

	return q3 - q1, nil
}
