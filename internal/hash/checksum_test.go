package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	payload := []byte{1, 2, 3, 4}

	require.Equal(t, xxhash.Sum64(payload), Checksum(payload))
	require.Equal(t, Checksum(payload), Checksum([]byte{1, 2, 3, 4}))
	require.NotEqual(t, Checksum(payload), Checksum([]byte{1, 2, 3, 5}))
	require.Equal(t, uint64(0xef46db3751d8e999), Checksum(nil))
}

func TestFieldSetID(t *testing.T) {
	t.Run("order matters", func(t *testing.T) {
		require.NotEqual(t, FieldSetID([]string{"x", "y"}), FieldSetID([]string{"y", "x"}))
	})

	t.Run("names are delimited", func(t *testing.T) {
		require.NotEqual(t, FieldSetID([]string{"xy"}), FieldSetID([]string{"x", "y"}))
	})

	t.Run("stable", func(t *testing.T) {
		require.Equal(t, FieldSetID([]string{"x", "y"}), FieldSetID([]string{"x", "y"}))
	})
}
