package bson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_NewIsNonZero(t *testing.T) {
	id := NewUUID()
	assert.False(t, id.IsZero())
}

func TestUUID_StringParseRoundTrip(t *testing.T) {
	id := NewUUID()
	s := id.String()

	got, err := ParseUUID(s)
	require.NoError(t, err)
	assert.True(t, id.Equal(got))
}

func TestUUID_ParseRejectsGarbage(t *testing.T) {
	_, err := ParseUUID("not-a-uuid")
	assert.Error(t, err)
}

func TestUUID_NilIsZero(t *testing.T) {
	assert.True(t, NilUUID.IsZero())
}

func TestUUID_EqualDistinguishesDifferentValues(t *testing.T) {
	a := NewUUID()
	b := NewUUID()
	assert.False(t, a.Equal(b))
}
