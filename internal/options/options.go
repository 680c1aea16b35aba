// Package options implements the generic functional-option pattern used by
// chainstat's configurable entry points (inverse-normal search, model
// fitting, snapshot encoding).
package options

// Option configures a target of type T. T is normally a pointer to a
// package-private config struct.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to the Option interface.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option whose function may reject its argument.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build copies defaults, applies opts to the copy and returns it. The
// defaults value is never modified, so package-level default configs can be
// shared safely.
func Build[C any](defaults C, opts ...Option[*C]) (C, error) {
	cfg := defaults
	if err := Apply(&cfg, opts...); err != nil {
		var zero C
		return zero, err
	}

	return cfg, nil
}
