package compress

import (
	"encoding/binary"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/format"
)

func allCodecs() []Codec {
	return []Codec{NewNoOpCodec(), NewZstdCodec(), NewS2Codec(), NewLZ4Codec()}
}

// floatPayload lays out n float64 values the way snapshots do.
func floatPayload(n int, smooth bool) []byte {
	rng := rand.New(rand.NewSource(int64(n)))
	buf := make([]byte, 0, n*8)
	v := 100.0
	for range n {
		if smooth {
			v += 0.25
		} else {
			v = rng.NormFloat64()
		}
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func TestGetCodec(t *testing.T) {
	for _, c := range allCodecs() {
		got, err := GetCodec(c.Type())
		require.NoError(t, err)
		require.Equal(t, c.Type(), got.Type())
	}

	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	_, err = GetCodec(format.CompressionType(0x7F))
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestCodecs_RoundTrip(t *testing.T) {
	sizes := []int{0, 1, 7, 128, 4096}

	for _, codec := range allCodecs() {
		for _, n := range sizes {
			for _, smooth := range []bool{true, false} {
				payload := floatPayload(n, smooth)

				packed, err := codec.Compress(payload)
				require.NoError(t, err, "%s compress %d", codec.Type(), n)

				restored, err := codec.Decompress(packed, len(payload))
				require.NoError(t, err, "%s decompress %d", codec.Type(), n)
				require.Len(t, restored, len(payload))
				if n > 0 {
					require.Equal(t, payload, restored)
				}
			}
		}
	}
}

func TestCodecs_CompressSmoothPayload(t *testing.T) {
	payload := floatPayload(4096, true)

	for _, codec := range allCodecs() {
		if codec.Type() == format.CompressionNone {
			continue
		}
		packed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, Ratio(len(payload), len(packed)), 1.0, "%s should shrink a smooth series", codec.Type())
	}
}

func TestCodecs_CompressDoesNotModifyInput(t *testing.T) {
	payload := floatPayload(512, false)
	orig := append([]byte(nil), payload...)

	for _, codec := range allCodecs() {
		_, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Equal(t, orig, payload)
	}
}

func TestCodecs_WrongRawSize(t *testing.T) {
	payload := floatPayload(64, true)

	for _, codec := range allCodecs() {
		packed, err := codec.Compress(payload)
		require.NoError(t, err)

		_, err = codec.Decompress(packed, len(payload)+8)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot, "%s", codec.Type())
	}
}

func TestCodecs_CorruptedData(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0x00, 0x13, 0x37, 0x42}

	for _, codec := range []Codec{NewZstdCodec(), NewS2Codec(), NewLZ4Codec()} {
		_, err := codec.Decompress(garbage, 1024)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot, "%s", codec.Type())
	}
}

func TestZstdCodec_OutputBoundedByRawSize(t *testing.T) {
	codec := NewZstdCodec()
	bomb, err := codec.Compress(make([]byte, 32<<20))
	require.NoError(t, err)
	small, err := codec.Compress(floatPayload(1, false))
	require.NoError(t, err)
	_, err = codec.Decompress(small, 8)
	require.NoError(t, err, "warms the decoder pool")

	tests := []struct {
		name string
		data []byte
	}{
		{"single oversized frame", bomb},
		{"oversized trailing frame", append(append([]byte{}, small...), bomb...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before, after runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&before)

			_, err := codec.Decompress(tt.data, 8)

			runtime.ReadMemStats(&after)
			require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
			require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(4<<20))
		})
	}
}

func TestCodecs_ConcurrentUse(t *testing.T) {
	payload := floatPayload(2048, true)

	for _, codec := range allCodecs() {
		var wg sync.WaitGroup
		errCh := make(chan error, 16)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				packed, err := codec.Compress(payload)
				if err != nil {
					errCh <- err
					return
				}
				if _, err := codec.Decompress(packed, len(payload)); err != nil {
					errCh <- err
				}
			}()
		}
		wg.Wait()
		close(errCh)

		for err := range errCh {
			require.NoError(t, err, "%s", codec.Type())
		}
	}
}

func TestRatio(t *testing.T) {
	require.Zero(t, Ratio(0, 10))
	require.Equal(t, 0.25, Ratio(400, 100))
}

func BenchmarkCodecs_RoundTrip(b *testing.B) {
	payload := floatPayload(8192, true)

	for _, codec := range allCodecs() {
		b.Run(codec.Type().String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for i := 0; i < b.N; i++ {
				packed, _ := codec.Compress(payload)
				_, _ = codec.Decompress(packed, len(payload))
			}
		})
	}
}
