// Package infer provides one-sample z procedures: hypothesis tests and
// confidence intervals for a mean when the population standard deviation is
// known.
package infer
