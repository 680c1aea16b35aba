package infer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/seq"
)

func TestZTest(t *testing.T) {
	tests := []struct {
		tail     Tail
		expected float64
	}{
		{LessThan, 0.977250},
		{GreaterThan, 0.022750},
		{NotEqual, 0.045500},
	}

	for _, tt := range tests {
		t.Run(tt.tail.String(), func(t *testing.T) {
			res, err := ZTest(105, 15, 100, 36, tt.tail)
			require.NoError(t, err)
			require.InDelta(t, 2.0, res.Z, 1e-12)
			require.InDelta(t, tt.expected, res.P, 1e-6)
		})
	}

	t.Run("two-sided is symmetric", func(t *testing.T) {
		above, err := ZTest(103, 8, 100, 20, NotEqual)
		require.NoError(t, err)
		below, err := ZTest(97, 8, 100, 20, NotEqual)
		require.NoError(t, err)

		require.InDelta(t, above.P, below.P, 1e-12)
		require.InDelta(t, -above.Z, below.Z, 1e-12)
	})

	t.Run("matches gonum tails", func(t *testing.T) {
		res, err := ZTest(4.2, 1.1, 4, 50, GreaterThan)
		require.NoError(t, err)
		require.InDelta(t, distuv.UnitNormal.Survival(res.Z), res.P, 1e-12)
	})
}

func TestZTest_InvalidInput(t *testing.T) {
	_, err := ZTest(1, 1, 0, 0, NotEqual)
	require.ErrorIs(t, err, errs.ErrInvalidSampleSize)

	_, err = ZTest(1, 0, 0, 10, NotEqual)
	require.ErrorIs(t, err, errs.ErrInvalidStdDev)

	_, err = ZTest(1, 1, 0, 10, Tail(9))
	require.ErrorIs(t, err, errs.ErrUnknownTail)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestZTestFromSample(t *testing.T) {
	sample := seq.Of(98, 102, 105, 110, 95, 101)

	res, err := ZTestFromSample(sample, 5, 100, GreaterThan)
	require.NoError(t, err)

	direct, err := ZTest(101.83333333333333, 5, 100, 6, GreaterThan)
	require.NoError(t, err)
	require.InDelta(t, direct.Z, res.Z, 1e-9)
	require.InDelta(t, direct.P, res.P, 1e-9)

	_, err = ZTestFromSample(seq.Of(), 5, 100, GreaterThan)
	require.ErrorIs(t, err, errs.ErrEmptySequence)
}

func TestParseTail(t *testing.T) {
	for _, tail := range []Tail{LessThan, GreaterThan, NotEqual} {
		got, err := ParseTail(tail.String())
		require.NoError(t, err)
		require.Equal(t, tail, got)
	}

	got, err := ParseTail(" NotEqual ")
	require.NoError(t, err)
	require.Equal(t, NotEqual, got)

	_, err = ParseTail("twosided")
	require.ErrorIs(t, err, errs.ErrUnknownTail)

	require.Equal(t, "unknown", Tail(-1).String())
}

func TestTail_Text(t *testing.T) {
	var cfg struct {
		Tail Tail `json:"tail"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tail":"greaterthan"}`), &cfg))
	require.Equal(t, GreaterThan, cfg.Tail)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.JSONEq(t, `{"tail":"greaterthan"}`, string(data))

	require.Error(t, json.Unmarshal([]byte(`{"tail":"sideways"}`), &cfg))
}
