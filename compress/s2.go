package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/format"
)

// S2Codec compresses payloads with S2, the Snappy-compatible block format.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (S2Codec) Type() format.CompressionType { return format.CompressionS2 }

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize("s2", nil, rawSize)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2: %w: %w", errs.ErrInvalidSnapshot, err)
	}
	if n != rawSize {
		return nil, fmt.Errorf("s2: block holds %d bytes, want %d: %w", n, rawSize, errs.ErrInvalidSnapshot)
	}

	out, err := s2.Decode(make([]byte, rawSize), data)
	if err != nil {
		return nil, fmt.Errorf("s2: %w: %w", errs.ErrInvalidSnapshot, err)
	}

	return out, nil
}
