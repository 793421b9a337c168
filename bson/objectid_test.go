package bson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectID_NewIsNonZero(t *testing.T) {
	id := NewObjectID()
	assert.False(t, id.IsZero())
}

func TestObjectID_HexRoundTrip(t *testing.T) {
	id := NewObjectID()
	hex := id.Hex()
	require.Len(t, hex, 24)

	got, err := ObjectIDFromHex(hex)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestObjectID_FromHexRejectsWrongLength(t *testing.T) {
	_, err := ObjectIDFromHex("deadbeef")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestObjectID_FromHexRejectsNonHex(t *testing.T) {
	_, err := ObjectIDFromHex("zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestObjectID_TimestampComponent(t *testing.T) {
	when := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)
	id := NewObjectIDFromTimestamp(when)
	assert.Equal(t, when.Unix(), id.Timestamp().Unix())
}

func TestObjectID_CounterAdvances(t *testing.T) {
	a := NewObjectID()
	b := NewObjectID()
	assert.NotEqual(t, a, b)
}

func TestObjectID_MarshalUnmarshalText(t *testing.T) {
	id := NewObjectID()
	text, err := id.MarshalText()
	require.NoError(t, err)

	var got ObjectID
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, id, got)
}

func TestObjectID_UnmarshalTextEmptyIsNil(t *testing.T) {
	var got ObjectID
	require.NoError(t, got.UnmarshalText(nil))
	assert.Equal(t, NilObjectID, got)
}
