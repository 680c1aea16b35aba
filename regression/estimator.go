package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/chainstat/errs"
)

// Estimator evaluates a fitted curve.
type Estimator interface {
	// Estimate returns the predicted y for x.
	Estimate(x float64) float64
	// Type returns the model family.
	Type() ModelType
	// Coefficients returns the model parameters in a fixed order:
	// [intercept, slope] for linear, [coefficient, base] for exponential and
	// [coefficient, exponent] for power.
	Coefficients() []float64
	// String renders the fitted formula.
	String() string
}

var (
	_ Estimator = (*LinearFit)(nil)
	_ Estimator = (*ExponentialFit)(nil)
	_ Estimator = (*PowerFit)(nil)
)

// LinearFit is the least-squares line y = Intercept + Slope*x.
type LinearFit struct {
	Slope     float64
	Intercept float64
	// R is the correlation coefficient of the fitted points.
	R float64
}

func (f *LinearFit) Estimate(x float64) float64 {
	return f.Intercept + f.Slope*x
}

func (f *LinearFit) Type() ModelType { return ModelTypeLinear }

func (f *LinearFit) Coefficients() []float64 {
	return []float64{f.Intercept, f.Slope}
}

func (f *LinearFit) String() string {
	return fmt.Sprintf("y = %.6g + %.6g * x", f.Intercept, f.Slope)
}

// ExponentialFit is the curve y = Coefficient * Base^x.
type ExponentialFit struct {
	Coefficient float64
	Base        float64
	// R is the correlation of (x, ln y).
	R float64
}

func (f *ExponentialFit) Estimate(x float64) float64 {
	return f.Coefficient * math.Pow(f.Base, x)
}

func (f *ExponentialFit) Type() ModelType { return ModelTypeExponential }

func (f *ExponentialFit) Coefficients() []float64 {
	return []float64{f.Coefficient, f.Base}
}

func (f *ExponentialFit) String() string {
	return fmt.Sprintf("y = %.6g * %.6g^x", f.Coefficient, f.Base)
}

// PowerFit is the curve y = Coefficient * x^Exponent.
type PowerFit struct {
	Coefficient float64
	Exponent    float64
	// R is the correlation of (ln x, ln y).
	R float64
}

func (f *PowerFit) Estimate(x float64) float64 {
	return f.Coefficient * math.Pow(x, f.Exponent)
}

func (f *PowerFit) Type() ModelType { return ModelTypePower }

func (f *PowerFit) Coefficients() []float64 {
	return []float64{f.Coefficient, f.Exponent}
}

func (f *PowerFit) String() string {
	return fmt.Sprintf("y = %.6g * x^%.6g", f.Coefficient, f.Exponent)
}

// NewEstimator rebuilds an estimator from a model name and its
// coefficients, for example ones persisted from an earlier Fit. Every model
// takes exactly two coefficients in Estimator.Coefficients order. The
// returned estimator carries no correlation.
//
//	est, err := regression.NewEstimator("power", []float64{32.48, 0.293})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := est.Estimate(40)
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType := ModelTypeFromString(name)
	if !modelType.Valid() {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("%q (supported: %s): %w", name, strings.Join(supported, ", "), errs.ErrUnknownModel)
	}

	if len(coeffs) != 2 {
		return nil, fmt.Errorf("%s model expects exactly 2 coefficients, got %d: %w", modelType, len(coeffs), errs.ErrInvalidInput)
	}

	switch modelType {
	case ModelTypeExponential:
		return &ExponentialFit{Coefficient: coeffs[0], Base: coeffs[1]}, nil
	case ModelTypePower:
		return &PowerFit{Coefficient: coeffs[0], Exponent: coeffs[1]}, nil
	default:
		return &LinearFit{Intercept: coeffs[0], Slope: coeffs[1]}, nil
	}
}
