package snapshot

import (
	"fmt"

	"github.com/arloliu/chainstat/compress"
	"github.com/arloliu/chainstat/endian"
	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/format"
	"github.com/arloliu/chainstat/internal/hash"
	"github.com/arloliu/chainstat/seq"
)

// DecodeNumbers reads a snapshot written by EncodeNumbers.
func DecodeNumbers(data []byte) (*seq.Numbers, error) {
	h, raw, err := open(data, format.KindNumbers)
	if err != nil {
		return nil, err
	}

	values := make([]float64, h.count)
	for i := range values {
		values[i] = endian.Float64(h.engine, raw[i*8:])
	}

	return seq.NewNumbers(values), nil
}

// DecodeRecords reads a snapshot written by EncodeRecords.
func DecodeRecords(data []byte) (*seq.Records, error) {
	h, raw, err := open(data, format.KindRecords)
	if err != nil {
		return nil, err
	}

	width := len(h.fields)
	items := make([]seq.Record, h.count)
	for i := range items {
		r := make(seq.Record, width)
		for j, f := range h.fields {
			r[f] = endian.Float64(h.engine, raw[(i*width+j)*8:])
		}
		items[i] = r
	}

	return seq.NewRecords(items), nil
}

// open validates data as a snapshot of the given kind and returns its
// header and the verified raw payload.
func open(data []byte, want format.ElementKind) (*header, []byte, error) {
	h, payload, err := parseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if h.kind != want {
		return nil, nil, invalid("holds %s, not %s", h.kind, want)
	}

	// parseHeader rejected unknown codecs
	codec, _ := compress.GetCodec(h.compression)
	raw, err := codec.Decompress(payload, int(h.rawSize()))
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot: %w", err)
	}

	if sum := hash.Checksum(raw); sum != h.checksum {
		return nil, nil, fmt.Errorf("snapshot: payload sum %016x, header %016x: %w", sum, h.checksum, errs.ErrChecksumMismatch)
	}

	return h, raw, nil
}
