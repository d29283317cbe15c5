package track

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"iter"

	"github.com/WujiKey/F9Grid/compress"
	"github.com/WujiKey/F9Grid/drift"
	"github.com/WujiKey/F9Grid/endian"
	"github.com/WujiKey/F9Grid/errs"
)

// Decoder reads a fix log produced by Encoder. NewDecoder validates the
// header, verifies the payload checksum and decompresses eagerly; iteration
// afterwards cannot fail except on a truncated payload, which Fixes reports
// and All cuts short.
type Decoder struct {
	engine  endian.EndianEngine
	payload []byte
	count   int
}

// NewDecoder parses and validates the log header and prepares the payload
// for iteration.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if data[0] != magicByte || data[1]&versionMask != versionNibble {
		return nil, fmt.Errorf("%w: 0x%02X%02X", errs.ErrInvalidMagicNumber, data[0], data[1])
	}

	engine := endian.GetLittleEndianEngine()
	if data[1]&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	codec, err := compress.GetCodec(compress.Type(data[compressionOffset]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidMagicNumber, err)
	}

	stored := data[HeaderSize:]
	if crc32.ChecksumIEEE(stored) != engine.Uint32(data[checksumOffset:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", errs.ErrInvalidPayload)
	}

	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPayload, err)
	}
	if uint32(len(payload)) != engine.Uint32(data[payloadSizeOffset:]) {
		return nil, fmt.Errorf("%w: payload size mismatch", errs.ErrInvalidPayload)
	}

	return &Decoder{
		engine:  engine,
		payload: payload,
		count:   int(engine.Uint32(data[countOffset:])),
	}, nil
}

// Count returns the number of fixes recorded in the header.
func (d *Decoder) Count() int {
	return d.count
}

// Fixes decodes the complete log into a slice.
func (d *Decoder) Fixes() ([]Fix, error) {
	fixes := make([]Fix, 0, d.count)
	pos, prev := 0, int64(0)

	for i := 0; i < d.count; i++ {
		f, n, err := decodeFix(d.payload[pos:], prev)
		if err != nil {
			return nil, fmt.Errorf("%w: fix %d: %v", errs.ErrInvalidPayload, i, err)
		}
		fixes = append(fixes, f)
		pos += n
		prev = f.Index
	}

	return fixes, nil
}

// All returns an iterator over the fixes in recorded order. Iteration stops
// early if the payload is truncated; use Fixes to distinguish that case.
func (d *Decoder) All() iter.Seq[Fix] {
	return func(yield func(Fix) bool) {
		pos, prev := 0, int64(0)
		for i := 0; i < d.count; i++ {
			f, n, err := decodeFix(d.payload[pos:], prev)
			if err != nil {
				return
			}
			if !yield(f) {
				return
			}
			pos += n
			prev = f.Index
		}
	}
}

// decodeFix decodes one (delta, code) record and returns the fix and the
// number of payload bytes consumed.
func decodeFix(payload []byte, prev int64) (Fix, int, error) {
	delta, n := binary.Uvarint(payload)
	if n <= 0 || n >= len(payload) {
		return Fix{}, 0, fmt.Errorf("truncated index delta")
	}

	f := Fix{
		Index: prev + unzigzag(delta),
		Code:  drift.Code(payload[n]),
	}
	if err := f.Validate(); err != nil {
		return Fix{}, 0, err
	}

	return f, n + 1, nil
}
