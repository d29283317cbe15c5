package track

import (
	"github.com/WujiKey/F9Grid/cell"
	"github.com/WujiKey/F9Grid/internal/hash"
)

// ShardOf maps a cell index to one of shards buckets for distributing fix
// storage. Nearby cells have densely clustered indexes, so the canonical key
// is hashed (xxHash64) first to spread them uniformly. Returns 0 when shards
// is 0 or 1.
func ShardOf(index int64, shards uint32) uint32 {
	if shards <= 1 {
		return 0
	}

	var key [cell.KeySize]byte
	_ = cell.AppendKey(key[:0], index)

	return uint32(hash.Key(key[:]) % uint64(shards))
}
