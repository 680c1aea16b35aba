package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/compress"
	"github.com/arloliu/chainstat/endian"
	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/format"
)

const (
	// Magic opens every snapshot.
	Magic = "CSTS"
	// Version is the layout version written by this package.
	Version uint8 = 1

	flagBigEndian uint8 = 1 << 0
	flagsKnown          = flagBigEndian

	// fixedPrefixSize covers magic through fieldCount.
	fixedPrefixSize = len(Magic) + 4 + 4 + 2
	// trailerSize covers payloadLen and checksum.
	trailerSize = 4 + 8

	// maxRawSize bounds the decoded payload a header may announce.
	maxRawSize = 1 << 28
)

// header is the decoded form of everything before the payload.
type header struct {
	kind        format.ElementKind
	compression format.CompressionType
	engine      endian.EndianEngine
	count       uint32
	fields      []string
	payloadLen  uint32
	checksum    uint64
}

func (h *header) flags() uint8 {
	if endian.IsBigEndian(h.engine) {
		return flagBigEndian
	}

	return 0
}

// rawSize is the size of the uncompressed payload in bytes.
func (h *header) rawSize() uint64 {
	width := uint64(1)
	if h.kind == format.KindRecords {
		width = uint64(len(h.fields))
	}

	return uint64(h.count) * width * 8
}

func (h *header) size() int {
	n := fixedPrefixSize + trailerSize
	for _, f := range h.fields {
		n += 2 + len(f)
	}

	return n
}

func (h *header) appendTo(buf []byte) []byte {
	buf = append(buf, Magic...)
	buf = append(buf, Version, byte(h.kind), byte(h.compression), h.flags())
	buf = h.engine.AppendUint32(buf, h.count)
	buf = h.engine.AppendUint16(buf, uint16(len(h.fields)))
	for _, f := range h.fields {
		buf = h.engine.AppendUint16(buf, uint16(len(f)))
		buf = append(buf, f...)
	}
	buf = h.engine.AppendUint32(buf, h.payloadLen)
	buf = h.engine.AppendUint64(buf, h.checksum)

	return buf
}

func validateFieldNames(fields []string) error {
	if len(fields) > math.MaxUint16 {
		return fmt.Errorf("%d fields exceed the header limit: %w", len(fields), errs.ErrInvalidInput)
	}
	for _, f := range fields {
		if len(f) > math.MaxUint16 {
			return fmt.Errorf("field name of %d bytes exceeds the header limit: %w", len(f), errs.ErrInvalidInput)
		}
	}

	return nil
}

// parseHeader decodes the header of data and returns it with the payload
// bytes that follow it.
func parseHeader(data []byte) (*header, []byte, error) {
	if len(data) < fixedPrefixSize+trailerSize {
		return nil, nil, invalid("%d bytes is shorter than the minimum header", len(data))
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, nil, invalid("bad magic %q", data[:len(Magic)])
	}

	version, kind, compression, flags := data[4], format.ElementKind(data[5]), format.CompressionType(data[6]), data[7]
	if version != Version {
		return nil, nil, invalid("unsupported version %d", version)
	}
	if kind != format.KindNumbers && kind != format.KindRecords {
		return nil, nil, invalid("unknown element kind 0x%02x", uint8(kind))
	}
	if _, err := compress.GetCodec(compression); err != nil {
		return nil, nil, invalid("unknown compression 0x%02x", uint8(compression))
	}
	if flags&^flagsKnown != 0 {
		return nil, nil, invalid("unknown flags 0x%02x", flags)
	}

	h := &header{
		kind:        kind,
		compression: compression,
		engine:      endian.FromBigEndianFlag(flags&flagBigEndian != 0),
	}

	r := reader{buf: data, off: 8, engine: h.engine}
	h.count = r.uint32()
	fieldCount := int(r.uint16())
	if kind == format.KindNumbers && fieldCount != 0 {
		return nil, nil, invalid("numbers snapshot declares %d fields", fieldCount)
	}

	h.fields = make([]string, 0, fieldCount)
	seen := make(map[string]struct{}, fieldCount)
	for range fieldCount {
		name := r.bytes(int(r.uint16()))
		if r.short {
			break
		}
		if _, dup := seen[string(name)]; dup {
			return nil, nil, invalid("duplicate field %q", name)
		}
		seen[string(name)] = struct{}{}
		h.fields = append(h.fields, string(name))
	}

	h.payloadLen = r.uint32()
	h.checksum = r.uint64()
	if r.short {
		return nil, nil, invalid("truncated header")
	}

	payload := data[r.off:]
	if uint64(len(payload)) != uint64(h.payloadLen) {
		return nil, nil, invalid("payload is %d bytes, header says %d", len(payload), h.payloadLen)
	}
	if h.rawSize() > maxRawSize {
		return nil, nil, invalid("declared payload of %d bytes is too large", h.rawSize())
	}
	if compression == format.CompressionNone && uint64(h.payloadLen) != h.rawSize() {
		return nil, nil, invalid("uncompressed payload is %d bytes, want %d", h.payloadLen, h.rawSize())
	}

	return h, payload, nil
}

// reader walks a byte slice and records, rather than panics on, a short
// read.
type reader struct {
	buf    []byte
	off    int
	engine endian.EndianEngine
	short  bool
}

func (r *reader) bytes(n int) []byte {
	if r.short || len(r.buf)-r.off < n {
		r.short = true
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n

	return b
}

func (r *reader) uint16() uint16 {
	if b := r.bytes(2); b != nil {
		return r.engine.Uint16(b)
	}

	return 0
}

func (r *reader) uint32() uint32 {
	if b := r.bytes(4); b != nil {
		return r.engine.Uint32(b)
	}

	return 0
}

func (r *reader) uint64() uint64 {
	if b := r.bytes(8); b != nil {
		return r.engine.Uint64(b)
	}

	return 0
}

func invalid(msg string, args ...any) error {
	return fmt.Errorf("snapshot: "+msg+": %w", append(args, errs.ErrInvalidSnapshot)...)
}
