package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	bb := &ByteBuffer{}

	bb.MustWrite([]byte("hello"))
	bb.MustWrite([]byte(" world"))
	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())

	bb.Reset()
	require.Zero(t, bb.Len())
	require.Empty(t, bb.Bytes())

	// Reset keeps the allocation.
	require.GreaterOrEqual(t, cap(bb.B), 11)
}

func TestGetLogBuffer(t *testing.T) {
	bb := GetLogBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), LogBufferDefaultSize)

	bb.MustWrite([]byte{1, 2, 3})
	PutLogBuffer(bb)

	// Pooled buffers always come back empty.
	again := GetLogBuffer()
	require.Zero(t, again.Len())
	PutLogBuffer(again)
}

func TestPutLogBuffer_DropsOversized(t *testing.T) {
	huge := &ByteBuffer{B: make([]byte, 0, LogBufferMaxThreshold+1)}

	// Must not panic; the buffer is simply not pooled.
	PutLogBuffer(huge)
}
