package snapshot

import (
	"fmt"

	"github.com/arloliu/chainstat/compress"
	"github.com/arloliu/chainstat/endian"
	"github.com/arloliu/chainstat/format"
	"github.com/arloliu/chainstat/internal/hash"
)

// Info describes a snapshot without decoding its payload.
type Info struct {
	Version     uint8
	Kind        format.ElementKind
	Compression format.CompressionType
	BigEndian   bool
	// Count is the number of values (Numbers) or records (Records).
	Count int
	// Fields lists the record field names in payload order.
	Fields []string
	// FieldSetID is a digest of Fields; equal IDs mean equal field lists.
	FieldSetID uint64
	// RawSize and PayloadSize are the payload sizes before and after
	// compression.
	RawSize     int
	PayloadSize int
	Checksum    uint64
}

// Ratio returns PayloadSize/RawSize, or 0 for an empty payload.
func (i *Info) Ratio() float64 {
	return compress.Ratio(i.RawSize, i.PayloadSize)
}

func (i *Info) String() string {
	return fmt.Sprintf("Snapshot{Kind: %s, Count: %d, Fields: %v, Compression: %s, Size: %d/%d}",
		i.Kind, i.Count, i.Fields, i.Compression, i.PayloadSize, i.RawSize)
}

// Inspect parses the header of data. The payload is neither decompressed
// nor checksummed.
func Inspect(data []byte) (*Info, error) {
	h, _, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	return &Info{
		Version:     Version,
		Kind:        h.kind,
		Compression: h.compression,
		BigEndian:   endian.IsBigEndian(h.engine),
		Count:       int(h.count),
		Fields:      h.fields,
		FieldSetID:  hash.FieldSetID(h.fields),
		RawSize:     int(h.rawSize()),
		PayloadSize: int(h.payloadLen),
		Checksum:    h.checksum,
	}, nil
}
