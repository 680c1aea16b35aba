// Package dist implements the binomial, geometric and normal distributions.
//
// Every function validates its parameters and reports a domain violation
// with an error wrapping errs.ErrOutOfRange:
//
//   - probabilities must lie in [0, 1] (errs.ErrInvalidProbability)
//   - trial counts must be non-negative (errs.ErrInvalidTrials)
//   - standard deviations must be positive (errs.ErrInvalidStdDev)
//
// The normal CDF is 0.5 * (1 + erf((x-mean) / (stdDev*sqrt2))) and InvNorm
// inverts it by bisection, so the two agree to the search tolerance.
package dist
