package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/seq"
)

func linearFixture() *seq.Records {
	return pointsOf(
		[]float64{2, 5, 8, 9, 12, 14, 15, 18, 22, 24, 25, 25, 30},
		[]float64{4.0, 1.5, 3.8, 3.0, 2.8, 2.5, 2.0, 1.8, 1.5, 1.0, 0.8, 3.1, 0.5},
	)
}

func exponentialFixture() *seq.Records {
	return pointsOf(
		[]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]float64{1.9, 2.8, 3.6, 4.5, 6.3, 8.3, 10.5, 13.8, 18.6, 26.8, 31.7},
	)
}

func powerFixture() *seq.Records {
	return pointsOf(
		[]float64{1, 2, 5, 10, 15, 20, 30},
		[]float64{30, 43, 53, 65, 74, 76, 85},
	)
}

func pointsOf(xs, ys []float64) *seq.Records {
	points, err := seq.Points(seq.NewNumbers(xs), seq.NewNumbers(ys))
	if err != nil {
		panic(err)
	}

	return points
}

func TestLinear(t *testing.T) {
	fit, err := Linear(linearFixture())
	require.NoError(t, err)

	require.InDelta(t, -0.089358, fit.Slope, 1e-6)
	require.InDelta(t, 3.61352, fit.Intercept, 1e-5)
	require.InDelta(t, -0.693356, fit.R, 1e-6)

	t.Run("matches gonum least squares", func(t *testing.T) {
		xs, ys, err := linearFixture().Columns()
		require.NoError(t, err)

		alpha, beta := stat.LinearRegression(xs.Values(), ys.Values(), nil, false)
		require.InDelta(t, alpha, fit.Intercept, 1e-9)
		require.InDelta(t, beta, fit.Slope, 1e-9)
	})
}

func TestExponential(t *testing.T) {
	fit, err := Exponential(exponentialFixture())
	require.NoError(t, err)

	require.InDelta(t, 1.32296, fit.Base, 1e-5)
	require.InDelta(t, 2.0072, fit.Coefficient, 1e-4)
	require.InDelta(t, 0.999013, fit.R, 1e-6)

	require.InDelta(t, fit.Coefficient*math.Pow(fit.Base, 3), fit.Estimate(3), 1e-12)
}

func TestPower(t *testing.T) {
	fit, err := Power(powerFixture())
	require.NoError(t, err)

	require.InDelta(t, 32.4824, fit.Coefficient, 1e-4)
	require.InDelta(t, 0.293188, fit.Exponent, 1e-6)
	require.InDelta(t, 0.990325, fit.R, 1e-6)
}

func TestCorrelation(t *testing.T) {
	r, err := Correlation(linearFixture())
	require.NoError(t, err)
	require.InDelta(t, -0.693356, r, 1e-6)

	t.Run("matches gonum", func(t *testing.T) {
		for _, points := range []*seq.Records{linearFixture(), exponentialFixture(), powerFixture()} {
			xs, ys, err := points.Columns()
			require.NoError(t, err)

			r, err := Correlation(points)
			require.NoError(t, err)
			require.InDelta(t, stat.Correlation(xs.Values(), ys.Values(), nil), r, 1e-12)
		}
	})

	t.Run("perfect line", func(t *testing.T) {
		r, err := Correlation(pointsOf([]float64{1, 2, 3}, []float64{2, 4, 6}))
		require.NoError(t, err)
		require.InDelta(t, 1.0, r, 1e-12)
	})

	t.Run("does not modify the points", func(t *testing.T) {
		points := powerFixture()
		before := points.Records()

		_, err := Correlation(points)
		require.NoError(t, err)
		_, err = Power(points)
		require.NoError(t, err)

		require.Equal(t, before, points.Records())
	})
}

func TestRegression_InvalidInput(t *testing.T) {
	t.Run("fewer than two points", func(t *testing.T) {
		one := seq.RecordsOf(seq.Point(1, 1))

		_, err := Correlation(one)
		require.ErrorIs(t, err, errs.ErrInsufficientData)
		_, err = Linear(seq.RecordsOf())
		require.ErrorIs(t, err, errs.ErrInsufficientData)
		_, err = Exponential(one)
		require.ErrorIs(t, err, errs.ErrDegenerateData)
		_, err = Power(one)
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})

	t.Run("missing coordinate", func(t *testing.T) {
		points := seq.RecordsOf(seq.Point(1, 1), seq.Record{"x": 2})

		_, err := Linear(points)
		require.ErrorIs(t, err, errs.ErrMissingField)
	})

	t.Run("non-positive log input is not validated", func(t *testing.T) {
		fit, err := Power(pointsOf([]float64{0, 1, 2}, []float64{1, 2, 3}))
		require.NoError(t, err)
		require.True(t, math.IsNaN(fit.Exponent) || math.IsInf(fit.Exponent, 0))
	})
}
