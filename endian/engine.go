// Package endian provides byte order utilities for the binary cell-key and
// fix-log codecs.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so encoders can both
// write into fixed offsets and append to growing buffers through one value.
// Cell keys are always big-endian (the canonical storage form sorts
// lexicographically in index order); fix logs default to little-endian but
// may be written big-endian for interoperability.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian; the returned
// engines are immutable and safe for concurrent use.
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
