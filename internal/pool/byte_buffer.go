// Package pool provides pooled byte buffers for the fix-log codec, keeping
// repeated encode calls allocation-free after warmup.
package pool

import "sync"

// LogBufferDefaultSize is the initial capacity of pooled log buffers; a few
// thousand fixes fit without growth.
// LogBufferMaxThreshold caps what is returned to the pool so one oversized
// log does not pin memory for the rest of the process.
const (
	LogBufferDefaultSize  = 4 * 1024
	LogBufferMaxThreshold = 256 * 1024
)

// ByteBuffer is a minimal append-oriented byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var logBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, LogBufferDefaultSize)}
	},
}

// GetLogBuffer retrieves an empty ByteBuffer from the pool.
func GetLogBuffer() *ByteBuffer {
	bb, _ := logBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutLogBuffer returns a ByteBuffer to the pool. Buffers grown past
// LogBufferMaxThreshold are dropped instead of pooled.
func PutLogBuffer(bb *ByteBuffer) {
	if cap(bb.B) > LogBufferMaxThreshold {
		return
	}
	logBufferPool.Put(bb)
}
