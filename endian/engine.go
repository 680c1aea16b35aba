// Package endian selects the byte order used for snapshot headers and
// payloads and encodes float64 values with it.
//
// Snapshots default to little-endian. The chosen order is recorded in the
// header flags so a decoder never has to guess:
//
//	engine := endian.GetBigEndianEngine()
//	buf = endian.AppendFloat64(engine, buf, 3.5)
//	v := endian.Float64(engine, buf)
//
// Engines are the stateless binary.LittleEndian and binary.BigEndian values
// and are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	// 0x0100 stores 0x01 first only on big-endian hosts.
	var i uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&i))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == EndianEngine(binary.BigEndian)
}

// FromBigEndianFlag returns the big-endian engine when big is set and the
// little-endian engine otherwise.
func FromBigEndianFlag(big bool) EndianEngine {
	if big {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// AppendFloat64 appends the IEEE 754 bits of v to buf.
func AppendFloat64(engine EndianEngine, buf []byte, v float64) []byte {
	return engine.AppendUint64(buf, math.Float64bits(v))
}

// Float64 decodes the first eight bytes of b. It panics if b is shorter.
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}
