package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/seq"
)

// Correlation returns Pearson's r for the x and y fields of points: both
// columns are z-normalized with their sample mean and standard deviation and
// the pointwise products are summed and divided by n-1.
//
// A constant column has zero standard deviation and yields NaN.
func Correlation(points *seq.Records) (float64, error) {
	xs, ys, err := columns(points)
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}

	return correlation(xs, ys)
}

// Linear fits y = intercept + slope*x by least squares, with
// slope = r * sy/sx and intercept = mean(y) - slope*mean(x).
func Linear(points *seq.Records) (*LinearFit, error) {
	xs, ys, err := columns(points)
	if err != nil {
		return nil, fmt.Errorf("linear regression: %w", err)
	}

	return linear(xs, ys)
}

// Exponential fits y = coefficient * base^x by running the linear fit on
// (x, ln y). Non-positive y values are not rejected; see the package
// documentation.
func Exponential(points *seq.Records) (*ExponentialFit, error) {
	xs, ys, err := columns(points)
	if err != nil {
		return nil, fmt.Errorf("exponential regression: %w", err)
	}

	line, err := linear(xs, ys.Map(ln))
	if err != nil {
		return nil, err
	}

	return &ExponentialFit{
		Coefficient: math.Exp(line.Intercept),
		Base:        math.Exp(line.Slope),
		R:           line.R,
	}, nil
}

// Power fits y = coefficient * x^exponent by running the linear fit on
// (ln x, ln y). Non-positive values are not rejected; see the package
// documentation.
func Power(points *seq.Records) (*PowerFit, error) {
	xs, ys, err := columns(points)
	if err != nil {
		return nil, fmt.Errorf("power regression: %w", err)
	}

	line, err := linear(xs.Map(ln), ys.Map(ln))
	if err != nil {
		return nil, err
	}

	return &PowerFit{
		Coefficient: math.Exp(line.Intercept),
		Exponent:    line.Slope,
		R:           line.R,
	}, nil
}

// columns plucks independent x and y sequences, so callers may transform
// them in place.
func columns(points *seq.Records) (xs, ys *seq.Numbers, err error) {
	if points.Size() < 2 {
		return nil, nil, fmt.Errorf("%d points: %w", points.Size(), errs.ErrInsufficientData)
	}

	return points.Columns()
}

func correlation(xs, ys *seq.Numbers) (float64, error) {
	zx, err := zScores(xs)
	if err != nil {
		return 0, err
	}
	zy, err := zScores(ys)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i, v := range zx {
		sum += v * zy[i]
	}

	return sum / float64(len(zx)-1), nil
}

func linear(xs, ys *seq.Numbers) (*LinearFit, error) {
	r, err := correlation(xs, ys)
	if err != nil {
		return nil, err
	}

	// correlation already validated both columns
	meanX, _ := xs.Mean()
	meanY, _ := ys.Mean()
	sdX, _ := xs.StdDev()
	sdY, _ := ys.StdDev()

	slope := r * (sdY / sdX)

	return &LinearFit{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		R:         r,
	}, nil
}

func zScores(s *seq.Numbers) ([]float64, error) {
	mean, err := s.Mean()
	if err != nil {
		return nil, err
	}
	sd, err := s.StdDev()
	if err != nil {
		return nil, err
	}

	return s.Clone().Map(func(v float64, _ int, _ *seq.Numbers) float64 {
		return (v - mean) / sd
	}).Values(), nil
}

func ln(v float64, _ int, _ *seq.Numbers) float64 {
	return math.Log(v)
}
