// Package hash provides the xxHash64 digests used to verify snapshot payloads.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum returns the xxHash64 digest of payload.
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}

// FieldSetID returns a digest identifying an ordered list of record field
// names. Two record sets produce the same ID only when they carry the same
// fields in the same order.
func FieldSetID(fields []string) uint64 {
	d := xxhash.New()
	for _, f := range fields {
		_, _ = d.WriteString(f)
		_, _ = d.Write([]byte{0})
	}

	return d.Sum64()
}
