// Package endian provides byte order utilities for packing short byte windows
// into integers.
//
// The n-gram counters pack 2- and 3-byte windows into dense integer indexes
// with the big-endian engine, so that the numeric order of an index equals
// the byte-wise order of the window it came from.
//
//	engine := endian.GetBigEndianEngine()
//	idx := engine.Uint16(data[off:])          // 2-byte window
//	key := endian.Uint24(engine, data[off:])  // 3-byte window
//
// All functions and methods in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
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

// Uint24 reads the first three bytes of b as an unsigned 24-bit integer in
// the engine's byte order. It panics if len(b) < 3.
func Uint24(engine EndianEngine, b []byte) uint32 {
	_ = b[2]
	if engine == GetBigEndianEngine() {
		return uint32(b[0])<<16 | uint32(engine.Uint16(b[1:]))
	}

	return uint32(engine.Uint16(b)) | uint32(b[2])<<16
}

// AppendUint24 appends the low 24 bits of v to b in the engine's byte order.
func AppendUint24(engine EndianEngine, b []byte, v uint32) []byte {
	if engine == GetBigEndianEngine() {
		b = append(b, byte(v>>16))
		return engine.AppendUint16(b, uint16(v))
	}

	b = engine.AppendUint16(b, uint16(v))

	return append(b, byte(v>>16))
}
