package regression

import (
	"fmt"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/internal/options"
)

// FitConfig holds the candidate list used by Fit.
type FitConfig struct {
	Models []ModelType
}

func defaultFitConfig() FitConfig {
	return FitConfig{
		Models: []ModelType{ModelTypeLinear, ModelTypeExponential, ModelTypePower},
	}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithModels restricts Fit to the given model types, evaluated in the given
// order. Duplicates are ignored. An empty list or an unsupported type is
// rejected.
func WithModels(types ...ModelType) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if len(types) == 0 {
			return fmt.Errorf("with models: empty candidate list: %w", errs.ErrInvalidOption)
		}

		seen := make(map[ModelType]bool, len(types))
		models := make([]ModelType, 0, len(types))
		for _, t := range types {
			if !t.Valid() {
				return fmt.Errorf("with models: %d: %w", int(t), errs.ErrUnknownModel)
			}
			if seen[t] {
				continue
			}
			seen[t] = true
			models = append(models, t)
		}
		cfg.Models = models

		return nil
	})
}
