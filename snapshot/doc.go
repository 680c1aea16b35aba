// Package snapshot encodes seq.Numbers and seq.Records into a compact,
// checksummed binary form and decodes them back.
//
// # Layout
//
//	magic "CSTS" | version u8 | kind u8 | compression u8 | flags u8
//	count u32 | fieldCount u16 | fieldCount x (nameLen u16 | name)
//	payloadLen u32 | checksum u64
//	payload
//
// Multi-byte integers and payload values use the byte order named by bit 0
// of flags (set for big-endian). The raw payload is count float64 values for
// Numbers, and count x fieldCount values, row by row in field order, for
// Records. It is compressed with the codec named in the header, and the
// checksum is the xxHash64 of the raw payload before compression.
//
// Records must share a single field set to be encoded; the field names are
// stored once in the header in sorted order.
//
// # Usage
//
//	data, err := snapshot.EncodeNumbers(s, snapshot.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	restored, err := snapshot.DecodeNumbers(data)
//
// Decoding rejects malformed input with errors wrapping
// errs.ErrInvalidSnapshot, and payloads whose checksum does not match with
// errs.ErrChecksumMismatch.
package snapshot
