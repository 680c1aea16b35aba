package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("returns slice with requested length", func(t *testing.T) {
		s, release := GetFloat64Slice(100)
		defer release()

		require.Len(t, s, 100)
		require.GreaterOrEqual(t, cap(s), 100)
	})

	t.Run("zero size is valid", func(t *testing.T) {
		s, release := GetFloat64Slice(0)
		defer release()

		require.Empty(t, s)
	})

	t.Run("grows when pooled capacity is too small", func(t *testing.T) {
		_, release := GetFloat64Slice(4)
		release()

		s, release2 := GetFloat64Slice(4096)
		defer release2()
		require.Len(t, s, 4096)
	})
}

func TestCopyFloat64s(t *testing.T) {
	src := []float64{3, 1, 2}
	dst, release := CopyFloat64s(src)
	defer release()

	require.Equal(t, src, dst)

	dst[0] = 99
	require.Equal(t, 3.0, src[0], "copy must not alias the source")
}
