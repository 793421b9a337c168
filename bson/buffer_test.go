package bson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_SaveSpaceAndBackpatch(t *testing.T) {
	buf := NewBuffer()
	require.NoError(t, buf.WriteByte(0xAA))
	idx := buf.SaveSpace(4)
	require.NoError(t, buf.Write([]byte{0x01, 0x02, 0x03}))

	require.NoError(t, buf.BackpatchLength(idx))

	data := buf.Data()
	assert.Equal(t, byte(0xAA), data[0])
	length, ok := int32FromLE(data[idx:])
	require.True(t, ok)
	assert.Equal(t, int32(7), length) // 4 reserved bytes + 3 body bytes
}

func TestBuffer_BackpatchInt32OutOfRange(t *testing.T) {
	buf := NewBuffer()
	require.NoError(t, buf.Write([]byte{0x00, 0x00}))
	err := buf.BackpatchInt32(10, 42)
	assert.Error(t, err)
}

func TestBuffer_PositionTracksWrites(t *testing.T) {
	buf := NewBuffer()
	assert.Equal(t, 0, buf.Position())
	require.NoError(t, buf.Write([]byte{1, 2, 3}))
	assert.Equal(t, 3, buf.Position())
	buf.SaveSpace(5)
	assert.Equal(t, 8, buf.Position())
}
