package track

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/WujiKey/F9Grid/compress"
	"github.com/WujiKey/F9Grid/endian"
	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/internal/options"
	"github.com/WujiKey/F9Grid/internal/pool"
)

// Encoder builds a fix log incrementally. It is not safe for concurrent use;
// encode each log from a single goroutine.
type Encoder struct {
	engine      endian.EndianEngine
	compression compress.Type
	buf         *pool.ByteBuffer
	count       int
	prev        int64
	bigEndian   bool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the payload compression algorithm.
// The default is no compression.
func WithCompression(t compress.Type) EncoderOption {
	return options.New(func(e *Encoder) error {
		if _, err := compress.GetCodec(t); err != nil {
			return err
		}
		e.compression = t

		return nil
	})
}

// WithLittleEndian writes multi-byte header fields little-endian (default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.engine = endian.GetLittleEndianEngine()
		e.bigEndian = false
	})
}

// WithBigEndian writes multi-byte header fields big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.engine = endian.GetBigEndianEngine()
		e.bigEndian = true
	})
}

// NewEncoder creates a fix-log encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		engine:      endian.GetLittleEndianEngine(),
		compression: compress.TypeNone,
		buf:         pool.GetLogBuffer(),
	}
	if err := options.Apply(e, opts...); err != nil {
		pool.PutLogBuffer(e.buf)
		return nil, err
	}

	return e, nil
}

// AddFix appends one fix to the log. Indexes are stored as zig-zag varint
// deltas from the previous fix.
func (e *Encoder) AddFix(f Fix) error {
	if err := f.Validate(); err != nil {
		return err
	}

	delta := f.Index - e.prev
	e.buf.B = binary.AppendUvarint(e.buf.B, zigzag(delta))
	e.buf.B = append(e.buf.B, byte(f.Code))
	e.prev = f.Index
	e.count++

	return nil
}

// Finish compresses the payload, prepends the header and returns the
// complete log. The encoder is reset and may be reused for the next log.
func (e *Encoder) Finish() ([]byte, error) {
	if e.count == 0 {
		return nil, errs.ErrEmptyLog
	}
	if int64(e.buf.Len()) > math.MaxUint32 || int64(e.count) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: log too large", errs.ErrInvalidPayload)
	}

	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(e.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("fix log compression failed: %w", err)
	}

	out := make([]byte, HeaderSize, HeaderSize+len(payload))
	out[0] = magicByte
	out[1] = versionNibble
	if e.bigEndian {
		out[1] |= flagBigEndian
	}
	out[compressionOffset] = byte(e.compression)
	e.engine.PutUint32(out[countOffset:], uint32(e.count))
	e.engine.PutUint32(out[payloadSizeOffset:], uint32(e.buf.Len()))
	e.engine.PutUint32(out[checksumOffset:], crc32.ChecksumIEEE(payload))
	out = append(out, payload...)

	e.reset()

	return out, nil
}

// Count returns the number of fixes added since the last Finish.
func (e *Encoder) Count() int {
	return e.count
}

func (e *Encoder) reset() {
	pool.PutLogBuffer(e.buf)
	e.buf = pool.GetLogBuffer()
	e.count = 0
	e.prev = 0
}

func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func unzigzag(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
