package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/compress"
	"github.com/arloliu/chainstat/endian"
	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/format"
	"github.com/arloliu/chainstat/internal/hash"
	"github.com/arloliu/chainstat/internal/options"
	"github.com/arloliu/chainstat/internal/pool"
	"github.com/arloliu/chainstat/seq"
)

// EncodeNumbers writes s as a snapshot.
func EncodeNumbers(s *seq.Numbers, opts ...EncodeOption) ([]byte, error) {
	cfg, err := options.Build(defaultEncodeConfig(), opts...)
	if err != nil {
		return nil, fmt.Errorf("encode numbers: %w", err)
	}

	h := &header{kind: format.KindNumbers, compression: cfg.Compression, engine: cfg.Engine}
	if err := h.setCount(s.Size(), 1); err != nil {
		return nil, fmt.Errorf("encode numbers: %w", err)
	}

	raw := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(raw)

	raw.Grow(s.Size() * 8)
	s.Each(func(v float64, _ int, _ *seq.Numbers) {
		raw.B = endian.AppendFloat64(cfg.Engine, raw.B, v)
	})

	return seal(h, raw.Bytes())
}

// EncodeRecords writes s as a snapshot. Every record must carry the same
// field set; values are stored row by row in sorted field order.
func EncodeRecords(s *seq.Records, opts ...EncodeOption) ([]byte, error) {
	cfg, err := options.Build(defaultEncodeConfig(), opts...)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	fields, err := s.FieldSet()
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	if err := validateFieldNames(fields); err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	h := &header{kind: format.KindRecords, compression: cfg.Compression, engine: cfg.Engine, fields: fields}
	if err := h.setCount(s.Size(), len(fields)); err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	raw := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(raw)

	raw.Grow(s.Size() * len(fields) * 8)
	s.Each(func(r seq.Record, _ int, _ *seq.Records) {
		for _, f := range fields {
			raw.B = endian.AppendFloat64(cfg.Engine, raw.B, r[f])
		}
	})

	return seal(h, raw.Bytes())
}

func (h *header) setCount(count, width int) error {
	if uint64(count) > math.MaxUint32 {
		return fmt.Errorf("%d elements exceed the header limit: %w", count, errs.ErrInvalidInput)
	}
	h.count = uint32(count)
	if h.rawSize() > maxRawSize {
		return fmt.Errorf("payload of %d values is too large: %w", count*width, errs.ErrInvalidInput)
	}

	return nil
}

// seal compresses raw, fills in the payload fields of h and returns the
// complete snapshot. raw is not retained.
func seal(h *header, raw []byte) ([]byte, error) {
	codec, err := compress.GetCodec(h.compression)
	if err != nil {
		return nil, err
	}

	packed, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if uint64(len(packed)) > math.MaxUint32 {
		return nil, fmt.Errorf("compressed payload of %d bytes: %w", len(packed), errs.ErrInvalidInput)
	}

	h.payloadLen = uint32(len(packed))
	h.checksum = hash.Checksum(raw)

	out := make([]byte, 0, h.size()+len(packed))
	out = h.appendTo(out)
	out = append(out, packed...)

	return out, nil
}
