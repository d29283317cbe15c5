package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses payloads with S2, trading some ratio for very fast
// encode and decode. A good fit for fix logs that are written continuously.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2. The destination is sized to
// the worst-case encoded length up front so encoding never reallocates.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, s2.MaxEncodedLen(len(data)))

	return s2.Encode(dst, data), nil
}

// Decompress decompresses S2-compressed data, validating the declared
// decoded length before allocating for it so corrupted input fails early.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}

	return s2.Decode(make([]byte, n), data)
}
