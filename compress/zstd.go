package compress

// ZstdCompressor compresses payloads with Zstandard, favoring ratio over
// speed. The right choice for archived fix logs that are read rarely.
//
// Two implementations exist behind build tags: a cgo binding to libzstd when
// cgo is available, and a pure-Go fallback otherwise.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
