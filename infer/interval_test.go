package infer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/seq"
)

func TestZInterval(t *testing.T) {
	iv, err := ZInterval(15, 100, 36, .95)
	require.NoError(t, err)

	require.InDelta(t, 4.899909, iv.MarginOfError, 1e-6)
	require.InDelta(t, 95.100091, iv.Low, 1e-6)
	require.InDelta(t, 104.899909, iv.High, 1e-6)
	require.True(t, iv.Contains(100))
	require.False(t, iv.Contains(105))
	require.InDelta(t, 100.0, (iv.Low+iv.High)/2, 1e-12)

	t.Run("wider with more confidence", func(t *testing.T) {
		narrow, err := ZInterval(15, 100, 36, .80)
		require.NoError(t, err)
		wide, err := ZInterval(15, 100, 36, .99)
		require.NoError(t, err)

		require.Less(t, narrow.MarginOfError, iv.MarginOfError)
		require.Less(t, iv.MarginOfError, wide.MarginOfError)
	})

	t.Run("narrower with more samples", func(t *testing.T) {
		big, err := ZInterval(15, 100, 144, .95)
		require.NoError(t, err)
		require.InDelta(t, iv.MarginOfError/2, big.MarginOfError, 1e-9)
	})
}

func TestZInterval_InvalidInput(t *testing.T) {
	_, err := ZInterval(15, 100, 36, 1)
	require.ErrorIs(t, err, errs.ErrInvalidProbability)

	_, err = ZInterval(15, 100, 36, math.NaN())
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = ZInterval(-1, 100, 36, .95)
	require.ErrorIs(t, err, errs.ErrInvalidStdDev)

	_, err = ZInterval(15, 100, 0, .95)
	require.ErrorIs(t, err, errs.ErrInvalidSampleSize)
}

func TestZIntervalFromSample(t *testing.T) {
	sample := seq.Of(10, 12, 11, 13, 9, 11)

	iv, err := ZIntervalFromSample(sample, 2, .90)
	require.NoError(t, err)
	require.InDelta(t, 11.0, (iv.Low+iv.High)/2, 1e-12)
	require.InDelta(t, 1.644854*2/math.Sqrt(6), iv.MarginOfError, 1e-5)

	_, err = ZIntervalFromSample(seq.Of(), 2, .9)
	require.ErrorIs(t, err, errs.ErrEmptySequence)
}
