package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chainstat/errs"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		c        CompressionType
		expected string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.c.String())
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	got, err := ParseCompression("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, got)

	_, err = ParseCompression("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestElementKind_String(t *testing.T) {
	require.Equal(t, "Numbers", KindNumbers.String())
	require.Equal(t, "Records", KindRecords.String())
	require.Equal(t, "Unknown", ElementKind(9).String())
}
