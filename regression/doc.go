// Package regression fits two-variable models to coordinate records.
//
// Every function takes a *seq.Records whose elements carry numeric "x" and
// "y" fields. Three models are supported:
//
//   - Linear:      y = intercept + slope*x
//   - Exponential: y = coefficient * base^x
//   - Power:       y = coefficient * x^exponent
//
// The exponential and power models are fitted by least squares on
// log-transformed data: Exponential regresses ln(y) on x, Power regresses
// ln(y) on ln(x). The reported R is the correlation of that linearized data,
// not of the nonlinear curve against the raw points.
//
// Logarithms are taken without validation. Non-positive y values (and, for
// Power, non-positive x values) yield NaN or infinite coefficients; callers
// that cannot guarantee positive data should check the result with
// math.IsNaN.
//
// # Model Selection
//
// Fit runs several models over the same points and ranks them by R²:
//
//	result, err := regression.Fit(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit.Formula)
//	y := result.BestFit.Estimator.Estimate(12)
//
// Restrict the candidates with WithModels:
//
//	result, err := regression.Fit(points, regression.WithModels(regression.ModelTypeLinear))
package regression
