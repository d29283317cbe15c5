// Package compress provides the payload compression codecs used by the
// fix-log format. Delta-encoded cell indexes are highly repetitive for
// tracks that linger in one area, so even the fast codecs compress well.
package compress

import "fmt"

// Type identifies a compression algorithm in fix-log headers.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores the payload uncompressed.
	TypeZstd Type = 0x2 // TypeZstd is Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 is S2 (Snappy-compatible) compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 is LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a complete, already-encoded payload.
//
// Memory management: the returned slice is newly allocated and owned by the
// caller (except TypeNone, which passes the input through); the input slice
// is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed with the matching Compressor.
// It returns an error if the data is corrupted or was compressed with an
// incompatible algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All implementations in this package are
// stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
