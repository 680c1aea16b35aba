package compress

import "github.com/arloliu/chainstat/format"

// NoOpCodec stores payloads uncompressed.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that passes data through.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (NoOpCodec) Type() format.CompressionType { return format.CompressionNone }

// Compress returns data itself; the result shares its memory.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself after checking its length.
func (NoOpCodec) Decompress(data []byte, rawSize int) ([]byte, error) {
	return checkSize("none", data, rawSize)
}
