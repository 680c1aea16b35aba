// Package format defines the enumerations stored in snapshot headers.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/chainstat/errs"
)

type (
	// CompressionType identifies the codec applied to a snapshot payload.
	CompressionType uint8
	// ElementKind identifies the container a snapshot holds.
	ElementKind uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.

	KindNumbers ElementKind = 0x1 // KindNumbers is a seq.Numbers payload.
	KindRecords ElementKind = 0x2 // KindRecords is a seq.Records payload.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name ("none", "zstd", "s2",
// "lz4") to its CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("compression %q: %w", name, errs.ErrInvalidOption)
	}
}

func (k ElementKind) String() string {
	switch k {
	case KindNumbers:
		return "Numbers"
	case KindRecords:
		return "Records"
	default:
		return "Unknown"
	}
}
