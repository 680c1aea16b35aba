package chainstat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/regression"
	"github.com/arloliu/chainstat/seq"
)

func TestConstructors(t *testing.T) {
	require.Equal(t, []float64{1, 2, 3}, Of(1, 2, 3).Values())

	src := []float64{4, 5}
	s := NewNumbers(src)
	src[0] = 0
	require.Equal(t, []float64{4, 5}, s.Values())

	require.Equal(t, 2, RecordsOf(seq.Point(1, 2), seq.Point(3, 4)).Size())
	require.Equal(t, 1, NewRecords([]seq.Record{seq.Point(0, 0)}).Size())

	points, err := Points(Of(1, 2), Of(3, 4))
	require.NoError(t, err)
	require.Equal(t, seq.Point(2, 4), points.Get(1))

	require.Equal(t, []float64{3, 4, 5}, Range(3, 5).Values())
}

func TestDescribe(t *testing.T) {
	sum, err := Describe(Of(12, 19, 4, 1, 2, 5, 8))
	require.NoError(t, err)

	require.Equal(t, 7, sum.Count)
	require.Equal(t, 51.0, sum.Sum)
	require.InDelta(t, 51.0/7, sum.Mean, 1e-12)
	require.Equal(t, 1.0, sum.Min)
	require.Equal(t, 2.0, sum.Q1)
	require.Equal(t, 5.0, sum.Median)
	require.Equal(t, 12.0, sum.Q3)
	require.Equal(t, 19.0, sum.Max)
	require.Equal(t, 10.0, sum.IQR)
	require.Positive(t, sum.StdDev)
	require.Contains(t, sum.String(), "median=5")

	_, err = Describe(Of(1))
	require.ErrorIs(t, err, errs.ErrDegenerateData)

	_, err = Describe(Of())
	require.ErrorIs(t, err, errs.ErrEmptySequence)
}

func TestBestFit(t *testing.T) {
	points := RecordsOf(
		seq.Point(1, 30), seq.Point(2, 43), seq.Point(5, 53), seq.Point(10, 65),
		seq.Point(15, 74), seq.Point(20, 76), seq.Point(30, 85),
	)

	best, err := BestFit(points)
	require.NoError(t, err)
	require.Equal(t, regression.ModelTypePower, best.Type)

	_, err = BestFit(RecordsOf())
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}
