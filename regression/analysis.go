package regression

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/chainstat/internal/options"
	"github.com/arloliu/chainstat/seq"
)

// Fit fits every candidate model to points and ranks them by R², best
// first. By default the linear, exponential and power models are tried.
//
// Candidates whose R² is NaN (for example a log model over non-positive
// data) sort last.
func Fit(points *seq.Records, opts ...FitOption) (*Result, error) {
	cfg, err := options.Build(defaultFitConfig(), opts...)
	if err != nil {
		return nil, err
	}

	xs, ys, err := columns(points)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	models := make([]*Model, 0, len(cfg.Models))
	for _, t := range cfg.Models {
		m, err := fitModel(t, points)
		if err != nil {
			return nil, fmt.Errorf("fit %s: %w", t, err)
		}
		m.RMSE = calculateRMSE(xs.Values(), ys.Values(), m.Estimator)
		models = append(models, m)
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		// cmp.Compare orders NaN below every number.
		return cmp.Compare(b.RSquared, a.RSquared)
	})

	return &Result{
		BestFit:   models[0],
		AllModels: models,
	}, nil
}

func fitModel(t ModelType, points *seq.Records) (*Model, error) {
	var (
		est Estimator
		r   float64
	)

	switch t {
	case ModelTypeExponential:
		f, err := Exponential(points)
		if err != nil {
			return nil, err
		}
		est, r = f, f.R
	case ModelTypePower:
		f, err := Power(points)
		if err != nil {
			return nil, err
		}
		est, r = f, f.R
	default:
		f, err := Linear(points)
		if err != nil {
			return nil, err
		}
		est, r = f, f.R
	}

	return &Model{
		Type:         t,
		Coefficients: est.Coefficients(),
		R:            r,
		RSquared:     r * r,
		Formula:      est.String(),
		Estimator:    est,
	}, nil
}

func calculateRMSE(xs, ys []float64, est Estimator) float64 {
	var sum float64
	for i, x := range xs {
		d := ys[i] - est.Estimate(x)
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(xs)))
}
