package infer

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/dist"
	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/seq"
)

// Interval is a two-sided confidence interval around a sample mean.
type Interval struct {
	Low           float64
	High          float64
	MarginOfError float64
}

// String renders the interval as "(low, high)".
func (iv *Interval) String() string {
	return fmt.Sprintf("(%g, %g)", iv.Low, iv.High)
}

// Contains reports whether v lies inside the closed interval.
func (iv *Interval) Contains(v float64) bool {
	return v >= iv.Low && v <= iv.High
}

// ZInterval returns the confidence interval for a population mean with known
// standard deviation. The margin of error is
// InvNorm(1 - (1-confidence)/2) * stdDev/sqrt(n).
func ZInterval(stdDev, sampleMean float64, n int, confidence float64) (*Interval, error) {
	se, err := standardError(stdDev, n)
	if err != nil {
		return nil, fmt.Errorf("z interval: %w", err)
	}
	if math.IsNaN(confidence) || confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("z interval: confidence %v not in (0, 1): %w", confidence, errs.ErrInvalidProbability)
	}

	z, err := dist.InvNorm(1 - (1-confidence)/2)
	if err != nil {
		return nil, fmt.Errorf("z interval: %w", err)
	}

	moe := z * se

	return &Interval{
		Low:           sampleMean - moe,
		High:          sampleMean + moe,
		MarginOfError: moe,
	}, nil
}

// ZIntervalFromSample runs ZInterval with the mean and size of sample.
func ZIntervalFromSample(sample *seq.Numbers, stdDev, confidence float64) (*Interval, error) {
	mean, err := sample.Mean()
	if err != nil {
		return nil, fmt.Errorf("z interval: %w", err)
	}

	return ZInterval(stdDev, mean, sample.Size(), confidence)
}
