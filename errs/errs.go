// Package errs defines the sentinel errors shared by every chainstat package.
//
// Errors are grouped in three classes. Each specific error wraps exactly one
// class so callers can match either the precise condition or the broad
// category with errors.Is:
//
//	if errors.Is(err, errs.ErrDegenerateData) {
//	    // empty or single-element input
//	}
package errs

import "errors"

// Error classes.
var (
	// ErrInvalidInput reports structurally invalid input: a missing field, a
	// fractional or negative argument where a whole number is required, or a
	// malformed option.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateData reports input that is well-formed but too small for
	// the requested statistic.
	ErrDegenerateData = errors.New("degenerate data")

	// ErrOutOfRange reports a distribution or inference parameter outside its
	// valid domain.
	ErrOutOfRange = errors.New("parameter out of range")
)

// Specific conditions.
var (
	ErrEmptySequence    = wrap(ErrDegenerateData, "empty sequence")
	ErrInsufficientData = wrap(ErrDegenerateData, "insufficient data points")

	ErrMissingField        = wrap(ErrInvalidInput, "missing record field")
	ErrNotInteger          = wrap(ErrInvalidInput, "value is not an integer")
	ErrNegativeArgument    = wrap(ErrInvalidInput, "negative argument")
	ErrMismatchedLengths   = wrap(ErrInvalidInput, "mismatched sequence lengths")
	ErrHeterogeneousFields = wrap(ErrInvalidInput, "records do not share one field set")
	ErrUnknownModel        = wrap(ErrInvalidInput, "unknown regression model")
	ErrInvalidOption       = wrap(ErrInvalidInput, "invalid option")

	ErrInvalidProbability = wrap(ErrOutOfRange, "probability outside valid range")
	ErrInvalidStdDev      = wrap(ErrOutOfRange, "standard deviation must be positive")
	ErrInvalidTrials      = wrap(ErrOutOfRange, "trial count outside valid range")
	ErrInvalidSampleSize  = wrap(ErrOutOfRange, "sample size must be positive")
	ErrUnknownTail        = wrap(ErrOutOfRange, "unknown hypothesis tail")
	ErrOverflow           = wrap(ErrOutOfRange, "result overflows int64")

	ErrInvalidSnapshot  = wrap(ErrInvalidInput, "invalid snapshot")
	ErrChecksumMismatch = wrap(ErrInvalidSnapshot, "snapshot checksum mismatch")
)

type classified struct {
	msg   string
	class error
}

func (e *classified) Error() string { return e.msg }

func (e *classified) Unwrap() error { return e.class }

func wrap(class error, msg string) error {
	return &classified{msg: msg, class: class}
}
