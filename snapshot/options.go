package snapshot

import (
	"github.com/arloliu/chainstat/compress"
	"github.com/arloliu/chainstat/endian"
	"github.com/arloliu/chainstat/format"
	"github.com/arloliu/chainstat/internal/options"
)

// EncodeConfig controls how a snapshot is written.
type EncodeConfig struct {
	// Compression is the payload codec. Defaults to format.CompressionNone.
	Compression format.CompressionType
	// Engine is the byte order for header integers and payload values.
	// Defaults to little-endian.
	Engine endian.EndianEngine
}

func defaultEncodeConfig() EncodeConfig {
	return EncodeConfig{
		Compression: format.CompressionNone,
		Engine:      endian.GetLittleEndianEngine(),
	}
}

// EncodeOption is a functional option for EncodeConfig.
type EncodeOption = options.Option[*EncodeConfig]

// WithCompression selects the payload codec. Unknown types are rejected.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		cfg.Compression = compression

		return nil
	})
}

// WithLittleEndian writes the snapshot in little-endian order.
func WithLittleEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes the snapshot in big-endian order.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes the snapshot in the host byte order.
func WithNativeEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.GetNativeEngine()
	})
}
