package bson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_AppendPreservesOrderAndReplacesInPlace(t *testing.T) {
	doc := NewDocument(
		Element{Key: "a", Value: int32(1)},
		Element{Key: "b", Value: int32(2)},
	)
	doc.Append("a", int32(99))

	require.Equal(t, 2, doc.Len())
	assert.Equal(t, []string{"a", "b"}, doc.Keys())
	v, ok := doc.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, int32(99), v)
}

func TestDocument_LookupMissingKey(t *testing.T) {
	doc := NewDocument(Element{Key: "a", Value: int32(1)})
	_, ok := doc.Lookup("missing")
	assert.False(t, ok)
}

func TestDocument_Delete(t *testing.T) {
	doc := NewDocument(
		Element{Key: "a", Value: int32(1)},
		Element{Key: "b", Value: int32(2)},
		Element{Key: "c", Value: int32(3)},
	)
	doc.Delete("b")

	assert.Equal(t, []string{"a", "c"}, doc.Keys())
	_, ok := doc.Lookup("b")
	assert.False(t, ok)
	v, ok := doc.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, int32(3), v)
}

func TestDocument_EncodeOrderDoesNotMutate(t *testing.T) {
	doc := NewDocument(
		Element{Key: "z", Value: int32(1)},
		Element{Key: "_id", Value: int32(2)},
	)
	ordered := doc.encodeOrder()

	assert.Equal(t, "_id", ordered[0].Key)
	assert.Equal(t, "z", doc.Elements()[0].Key)
}

func TestDocument_EncodeOrderNoopWhenIDAlreadyFirst(t *testing.T) {
	doc := NewDocument(
		Element{Key: "_id", Value: int32(1)},
		Element{Key: "a", Value: int32(2)},
	)
	ordered := doc.encodeOrder()
	assert.Equal(t, doc.Elements(), ordered)
}
