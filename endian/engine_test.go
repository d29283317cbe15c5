package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.LittleEndian
	require.Equal(t, binary.LittleEndian, engine)

	// Test actual endian behavior
	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Little endian should put LSB first
	require.Equal(t, byte(0x02), bytes[0], "Little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "Little endian should put MSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.BigEndian
	require.Equal(t, binary.BigEndian, engine)

	// Test actual endian behavior
	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Big endian should put MSB first
	require.Equal(t, byte(0x01), bytes[0], "Big endian should put MSB first")
	require.Equal(t, byte(0x02), bytes[1], "Big endian should put LSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestEndianEngines(t *testing.T) {
	// Test that both engines work correctly with different data types
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	// Test uint32
	var testUint32 uint32 = 0x01020304
	littleBytes := make([]byte, 4)
	bigBytes := make([]byte, 4)

	littleEngine.PutUint32(littleBytes, testUint32)
	bigEngine.PutUint32(bigBytes, testUint32)

	// Bytes should be different (unless on a weird architecture)
	require.NotEqual(t, littleBytes, bigBytes, "Little and big endian byte representations should differ")

	// But should read back to same value
	require.Equal(t, testUint32, littleEngine.Uint32(littleBytes))
	require.Equal(t, testUint32, bigEngine.Uint32(bigBytes))

	// Test uint64
	var testUint64 uint64 = 0x0102030405060708
	littleBytes64 := make([]byte, 8)
	bigBytes64 := make([]byte, 8)

	littleEngine.PutUint64(littleBytes64, testUint64)
	bigEngine.PutUint64(bigBytes64, testUint64)

	require.NotEqual(t, littleBytes64, bigBytes64)
	require.Equal(t, testUint64, littleEngine.Uint64(littleBytes64))
	require.Equal(t, testUint64, bigEngine.Uint64(bigBytes64))
}

func TestAppendByteOrder(t *testing.T) {
	little := GetLittleEndianEngine().AppendUint32(nil, 0xAABBCCDD)
	require.Equal(t, []byte{0xDD, 0xCC, 0xBB, 0xAA}, little)

	big := GetBigEndianEngine().AppendUint32(nil, 0xAABBCCDD)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, big)

	// Appending must preserve existing bytes.
	prefix := []byte{0x01}
	appended := GetBigEndianEngine().AppendUint16(prefix, 0x0203)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, appended)
}
