package cell

import (
	"fmt"

	"github.com/WujiKey/F9Grid/endian"
	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/grid"
)

// KeySize is the size of the canonical binary cell key in bytes.
const KeySize = 8

var keyEngine = endian.GetBigEndianEngine()

// Key returns the canonical 8-byte big-endian encoding of the cell's index.
// Big-endian keys sort lexicographically in index order, which keeps
// neighboring cells adjacent in ordered key-value stores.
func (c Cell) Key() [KeySize]byte {
	var key [KeySize]byte
	keyEngine.PutUint64(key[:], uint64(c.Index))

	return key
}

// AppendKey appends the canonical 8-byte big-endian encoding of index to dst.
func AppendKey(dst []byte, index int64) []byte {
	return keyEngine.AppendUint64(dst, uint64(index))
}

// ParseKey decodes a canonical 8-byte cell key back into its index and
// validates it against the index domain.
func ParseKey(key []byte) (int64, error) {
	if len(key) != KeySize {
		return 0, fmt.Errorf("%w: key length %d", errs.ErrIndexOutOfRange, len(key))
	}

	v := keyEngine.Uint64(key)
	if v > uint64(grid.MaxIndex()) {
		return 0, fmt.Errorf("%w: %d", errs.ErrIndexOutOfRange, v)
	}

	return int64(v), nil
}
