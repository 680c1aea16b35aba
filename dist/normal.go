package dist

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/internal/options"
)

// NormalPDF returns the density of N(mean, stdDev²) at x.
func NormalPDF(x, mean, stdDev float64) (float64, error) {
	if err := checkStdDev(stdDev); err != nil {
		return 0, fmt.Errorf("normalpdf: %w", err)
	}

	z := (x - mean) / stdDev

	return math.Exp(-z*z/2) / (stdDev * math.Sqrt(2*math.Pi)), nil
}

// NormalCDF returns P(X <= x) for X ~ N(mean, stdDev²).
func NormalCDF(x, mean, stdDev float64) (float64, error) {
	if err := checkStdDev(stdDev); err != nil {
		return 0, fmt.Errorf("normalcdf: %w", err)
	}

	return normalCDF(x, mean, stdDev), nil
}

// NormalCDFBetween returns P(lower <= X <= upper), computed as
// NormalCDF(upper) - NormalCDF(lower). Swapped bounds give the negated
// mass.
func NormalCDFBetween(lower, upper, mean, stdDev float64) (float64, error) {
	if err := checkStdDev(stdDev); err != nil {
		return 0, fmt.Errorf("normalcdf: %w", err)
	}

	return normalCDF(upper, mean, stdDev) - normalCDF(lower, mean, stdDev), nil
}

func normalCDF(x, mean, stdDev float64) float64 {
	return 0.5 * (1 + math.Erf((x-mean)/(stdDev*math.Sqrt2)))
}

// Bisection bracket for InvNorm. NormalCDF is exactly 0 and 1 well inside it.
const (
	searchLow  = -40.0
	searchHigh = 40.0
)

// InvNorm returns the z-score whose standard normal CDF is p, for p in
// (0, 1). It bisects [-40, 40] until the bracket is narrower than the
// tolerance or the iteration cap is reached, and returns exactly 0 for
// p = 0.5.
func InvNorm(p float64, opts ...InvNormOption) (float64, error) {
	cfg, err := options.Build(defaultInvNormConfig(), opts...)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return 0, fmt.Errorf("invnorm: p = %v not in (0, 1): %w", p, errs.ErrInvalidProbability)
	}
	if p == 0.5 {
		return 0, nil
	}

	lo, hi := searchLow, searchHigh
	for range cfg.MaxIterations {
		mid := lo + (hi-lo)/2
		if hi-lo < cfg.Tolerance {
			return mid, nil
		}
		if normalCDF(mid, 0, 1) < p {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo + (hi-lo)/2, nil
}

// InvNormWith returns the quantile of N(mean, stdDev²) for p.
func InvNormWith(p, mean, stdDev float64, opts ...InvNormOption) (float64, error) {
	if err := checkStdDev(stdDev); err != nil {
		return 0, fmt.Errorf("invnorm: %w", err)
	}

	z, err := InvNorm(p, opts...)
	if err != nil {
		return 0, err
	}

	return mean + z*stdDev, nil
}
