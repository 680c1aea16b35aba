package regression

import (
	"fmt"
	"strings"
)

// ModelType identifies a regression model.
type ModelType int

const (
	// ModelTypeLinear is y = intercept + slope*x.
	ModelTypeLinear ModelType = iota
	// ModelTypeExponential is y = coefficient * base^x.
	ModelTypeExponential
	// ModelTypePower is y = coefficient * x^exponent.
	ModelTypePower
)

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeExponential: "exponential",
	ModelTypePower:       "power",
}

var modelTypeFromString = map[string]ModelType{
	"linear":      ModelTypeLinear,
	"exponential": ModelTypeExponential,
	"power":       ModelTypePower,
}

// String returns the lower-case model name, or "unknown".
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// Valid reports whether mt names a supported model.
func (mt ModelType) Valid() bool {
	_, ok := modelTypeNames[mt]
	return ok
}

// ModelTypeFromString returns the ModelType for a case-insensitive name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(strings.TrimSpace(name))]; exists {
		return modelType
	}

	return ModelType(-1)
}

// Model is one fitted candidate produced by Fit.
type Model struct {
	// Type is the model family.
	Type ModelType
	// Coefficients holds the fitted parameters in Estimator.Coefficients order.
	Coefficients []float64
	// R is the correlation of the (possibly linearized) data.
	R float64
	// RSquared is R*R and is used for ranking.
	RSquared float64
	// RMSE is the root mean square error of Estimator against the raw points.
	RMSE float64
	// Formula is a human-readable rendering of the fitted curve.
	Formula string
	// Estimator evaluates the fitted curve.
	Estimator Estimator
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result is the outcome of Fit.
type Result struct {
	// BestFit is the candidate with the highest R².
	BestFit *Model
	// AllModels holds every candidate ranked by R², best first. Ties keep
	// the order in which the models were requested.
	AllModels []*Model
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}", r.BestFit, len(r.AllModels))
}
