package dist

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/errs"
)

func checkProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("p = %v: %w", p, errs.ErrInvalidProbability)
	}

	return nil
}

func checkTrials(trials int) error {
	if trials < 0 {
		return fmt.Errorf("trials = %d: %w", trials, errs.ErrInvalidTrials)
	}

	return nil
}

func checkStdDev(stdDev float64) error {
	if math.IsNaN(stdDev) || stdDev <= 0 {
		return fmt.Errorf("stdDev = %v: %w", stdDev, errs.ErrInvalidStdDev)
	}

	return nil
}
