package dist

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/errs"
)

// Geompdf returns the probability that the first success happens on trial
// x: (1-p)^(x-1) * p. Trials are counted from 1.
func Geompdf(p float64, x int) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, fmt.Errorf("geompdf: %w", err)
	}
	if x < 1 {
		return 0, fmt.Errorf("geompdf: trial %d: %w", x, errs.ErrOutOfRange)
	}

	return math.Pow(1-p, float64(x-1)) * p, nil
}

// Geomcdf returns the probability that the first success happens on or
// before trial x: 1 - (1-p)^x. It is 0 for x = 0.
func Geomcdf(p float64, x int) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, fmt.Errorf("geomcdf: %w", err)
	}
	if x < 0 {
		return 0, fmt.Errorf("geomcdf: trial %d: %w", x, errs.ErrOutOfRange)
	}

	return 1 - math.Pow(1-p, float64(x)), nil
}
