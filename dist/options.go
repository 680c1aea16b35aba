package dist

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/internal/options"
)

// InvNormConfig bounds the bisection performed by InvNorm.
type InvNormConfig struct {
	// Tolerance is the bracket width at which the search stops.
	Tolerance float64
	// MaxIterations caps the number of halvings.
	MaxIterations int
}

func defaultInvNormConfig() InvNormConfig {
	return InvNormConfig{
		Tolerance:     1e-12,
		MaxIterations: 200,
	}
}

// InvNormOption is a functional option for InvNormConfig.
type InvNormOption = options.Option[*InvNormConfig]

// WithTolerance sets the bracket width at which the search stops.
func WithTolerance(tol float64) InvNormOption {
	return options.New(func(cfg *InvNormConfig) error {
		if math.IsNaN(tol) || tol <= 0 {
			return fmt.Errorf("tolerance %v must be positive: %w", tol, errs.ErrInvalidOption)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// WithMaxIterations caps the number of halvings.
func WithMaxIterations(n int) InvNormOption {
	return options.New(func(cfg *InvNormConfig) error {
		if n <= 0 {
			return fmt.Errorf("max iterations %d must be positive: %w", n, errs.ErrInvalidOption)
		}
		cfg.MaxIterations = n

		return nil
	})
}
