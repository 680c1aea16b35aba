package infer

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/dist"
	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/seq"
)

// ZTestResult holds the statistic and p-value of a z test.
type ZTestResult struct {
	Z float64
	P float64
}

// ZTest tests a sample mean against a hypothesized population mean, with
// z = (sampleMean - hypothesizedMean) / (stdDev / sqrt(n)). The p-value is
// the lower tail, upper tail or both tails of the standard normal according
// to tail.
func ZTest(sampleMean, stdDev, hypothesizedMean float64, n int, tail Tail) (*ZTestResult, error) {
	se, err := standardError(stdDev, n)
	if err != nil {
		return nil, fmt.Errorf("z test: %w", err)
	}

	z := (sampleMean - hypothesizedMean) / se

	// stdDev 1 is always valid
	lower, _ := dist.NormalCDF(z, 0, 1)

	var p float64
	switch tail {
	case LessThan:
		p = lower
	case GreaterThan:
		p = 1 - lower
	case NotEqual:
		p = 2 * math.Min(lower, 1-lower)
	default:
		return nil, fmt.Errorf("z test: tail %d: %w", int(tail), errs.ErrUnknownTail)
	}

	return &ZTestResult{Z: z, P: p}, nil
}

// ZTestFromSample runs ZTest with the mean and size of sample.
func ZTestFromSample(sample *seq.Numbers, stdDev, hypothesizedMean float64, tail Tail) (*ZTestResult, error) {
	mean, err := sample.Mean()
	if err != nil {
		return nil, fmt.Errorf("z test: %w", err)
	}

	return ZTest(mean, stdDev, hypothesizedMean, sample.Size(), tail)
}

func standardError(stdDev float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("n = %d: %w", n, errs.ErrInvalidSampleSize)
	}
	if math.IsNaN(stdDev) || stdDev <= 0 {
		return 0, fmt.Errorf("stdDev = %v: %w", stdDev, errs.ErrInvalidStdDev)
	}

	return stdDev / math.Sqrt(float64(n)), nil
}
