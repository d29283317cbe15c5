// Package track implements a compact binary log for recorded fixes: the
// (cell index, position code) pairs captured at acquisition time that drift
// correction later consumes.
//
// Log layout: a fixed 16-byte header followed by the payload. Consecutive
// fixes in a track land in nearby cells, so indexes are stored as zig-zag
// varint deltas and compress very well; the payload may additionally be
// compressed with any codec from the compress package.
package track

import (
	"fmt"

	"github.com/WujiKey/F9Grid/cell"
	"github.com/WujiKey/F9Grid/drift"
	"github.com/WujiKey/F9Grid/errs"
)

// Fix is one recorded position fix.
type Fix struct {
	// Index is the cell index the fix was recorded in.
	Index int64

	// Code is the position code of the fix within its cell, kept for later
	// drift correction.
	Code drift.Code
}

// Validate checks the fix against the index and code domains.
func (f Fix) Validate() error {
	if f.Index < 0 || f.Index > cell.SouthPoleIndex {
		return fmt.Errorf("%w: %d", errs.ErrIndexOutOfRange, f.Index)
	}
	if !f.Code.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidPositionCode, f.Code)
	}

	return nil
}

// Header layout constants.
const (
	// HeaderSize is the fixed log header size in bytes.
	HeaderSize = 16

	magicByte = 0xF9 // header byte 0

	versionNibble = 0x10 // header byte 1, high nibble: format version 1
	versionMask   = 0xF0
	flagBigEndian = 0x01 // header byte 1, bit 0: multi-byte fields are big-endian

	compressionOffset = 2  // byte 2: compress.Type
	countOffset       = 4  // bytes 4-7: fix count
	payloadSizeOffset = 8  // bytes 8-11: uncompressed payload size
	checksumOffset    = 12 // bytes 12-15: CRC32 (IEEE) of the stored payload
)
