package compress

import (
	"fmt"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/format"
)

// Codec compresses and decompresses whole snapshot payloads.
type Codec interface {
	// Type returns the header tag of the codec.
	Type() format.CompressionType

	// Compress returns a compressed copy of data. The input is not
	// modified. The no-op codec returns data itself.
	Compress(data []byte) ([]byte, error)

	// Decompress restores a payload of exactly rawSize bytes. Output of any
	// other length is reported as an error wrapping errs.ErrInvalidSnapshot.
	Decompress(data []byte, rawSize int) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compression %s (0x%02x): %w", compressionType, uint8(compressionType), errs.ErrInvalidOption)
}

// Ratio returns compressed/original, or 0 for an empty original.
func Ratio(originalSize, compressedSize int) float64 {
	if originalSize == 0 {
		return 0
	}

	return float64(compressedSize) / float64(originalSize)
}

func checkSize(name string, got []byte, rawSize int) ([]byte, error) {
	if len(got) != rawSize {
		return nil, fmt.Errorf("%s: decompressed %d bytes, want %d: %w", name, len(got), rawSize, errs.ErrInvalidSnapshot)
	}

	return got, nil
}
