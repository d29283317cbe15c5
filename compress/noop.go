package compress

// NoOpCompressor passes data through unchanged. It is the default for fix
// logs small enough that compression overhead outweighs the savings, and a
// useful baseline in benchmarks.
//
// Both directions return the input slice as-is, sharing its memory; callers
// must not modify the input afterwards if they keep the result.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is.
func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is.
func (NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
