package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorClasses(t *testing.T) {
	cases := []struct {
		err   error
		class error
	}{
		{ErrEmptySequence, ErrDegenerateData},
		{ErrInsufficientData, ErrDegenerateData},
		{ErrMissingField, ErrInvalidInput},
		{ErrNotInteger, ErrInvalidInput},
		{ErrNegativeArgument, ErrInvalidInput},
		{ErrMismatchedLengths, ErrInvalidInput},
		{ErrHeterogeneousFields, ErrInvalidInput},
		{ErrUnknownModel, ErrInvalidInput},
		{ErrInvalidOption, ErrInvalidInput},
		{ErrInvalidProbability, ErrOutOfRange},
		{ErrInvalidStdDev, ErrOutOfRange},
		{ErrInvalidTrials, ErrOutOfRange},
		{ErrInvalidSampleSize, ErrOutOfRange},
		{ErrUnknownTail, ErrOutOfRange},
		{ErrOverflow, ErrOutOfRange},
		{ErrInvalidSnapshot, ErrInvalidInput},
		{ErrChecksumMismatch, ErrInvalidSnapshot},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.class)
		})
	}
}

func TestChecksumMismatchIsInvalidInput(t *testing.T) {
	require.ErrorIs(t, ErrChecksumMismatch, ErrInvalidInput)
	require.NotErrorIs(t, ErrChecksumMismatch, ErrOutOfRange)
}

func TestWrappedContextKeepsClass(t *testing.T) {
	err := fmt.Errorf("pluck %q: %w", "z", ErrMissingField)

	require.ErrorIs(t, err, ErrMissingField)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.False(t, errors.Is(err, ErrDegenerateData))
	require.Equal(t, `pluck "z": missing record field`, err.Error())
}
