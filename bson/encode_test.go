package bson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := decodeHex(s)
	require.NoError(t, err)
	return b
}

func TestEncodeDocument_EmptyDocument(t *testing.T) {
	got, err := EncodeDocument(NewDocument(), false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 0x00}, got)
}

func TestEncodeDocument_HelloWorld(t *testing.T) {
	doc := NewDocument(Element{Key: "hello", Value: "world"})
	got, err := EncodeDocument(doc, false)
	require.NoError(t, err)
	want := hexBytes(t, "1600000002 68656c6c6f00 06000000 776f726c6400 00")
	assert.Equal(t, want, got)
}

func TestEncodeDocument_Int32Promotion(t *testing.T) {
	doc := NewDocument(Element{Key: "x", Value: int64(1)})
	got, err := EncodeDocument(doc, false)
	require.NoError(t, err)
	want := hexBytes(t, "0C000000 10 7800 01000000 00")
	assert.Equal(t, want, got)
}

func TestEncodeDocument_ForcedInt64(t *testing.T) {
	doc := NewDocument(Element{Key: "x", Value: int64(2147483648)})
	got, err := EncodeDocument(doc, false)
	require.NoError(t, err)
	want := hexBytes(t, "10000000 12 7800 0000008000000000 00")
	assert.Equal(t, want, got)
}

func TestEncodeDocument_BoolAndNull(t *testing.T) {
	doc := NewDocument(
		Element{Key: "b", Value: true},
		Element{Key: "n", Value: nil},
	)
	got, err := EncodeDocument(doc, false)
	require.NoError(t, err)
	want := hexBytes(t, "0C000000 08 6200 01 0A 6e00 00")
	assert.Equal(t, want, got)
}

func TestEncodeDocument_IDFirst(t *testing.T) {
	doc := NewDocument(
		Element{Key: "a", Value: int32(1)},
		Element{Key: "_id", Value: int32(2)},
		Element{Key: "b", Value: int32(3)},
	)
	got, err := EncodeDocument(doc, false)
	require.NoError(t, err)

	// The first key on the wire must be "_id", even though it was
	// appended second.
	decoded, rest, err := DecodeOne(got, DecodeOptions{})
	require.NoError(t, err)
	assert.Empty(t, rest)
	require.True(t, decoded.Len() >= 1)
	assert.Equal(t, "_id", decoded.Elements()[0].Key)

	// The document itself must remain untouched.
	assert.Equal(t, "a", doc.Elements()[0].Key)
}

func TestEncodeDocument_KeyValidation(t *testing.T) {
	doc := NewDocument(Element{Key: "$bad", Value: int32(1)})
	_, err := EncodeDocument(doc, true)
	require.Error(t, err)
	var target *InvalidDocumentError
	assert.ErrorAs(t, err, &target)

	doc2 := NewDocument(Element{Key: "a.b", Value: int32(1)})
	_, err = EncodeDocument(doc2, true)
	require.Error(t, err)
	assert.ErrorAs(t, err, &target)
}

func TestEncodeDocument_KeyValidationAllowsDollarWhenDisabled(t *testing.T) {
	doc := NewDocument(Element{Key: "$bad", Value: int32(1)})
	_, err := EncodeDocument(doc, false)
	assert.NoError(t, err)
}

func TestEncodeDocument_IntegerWidths(t *testing.T) {
	cases := []struct {
		name string
		v    int64
		t    Type
	}{
		{"min int32", int64(-2147483648), TypeInt32},
		{"max int32", int64(2147483647), TypeInt32},
		{"just over", int64(2147483648), TypeInt64},
		{"just under", int64(-2147483649), TypeInt64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc := NewDocument(Element{Key: "x", Value: c.v})
			got, err := EncodeDocument(doc, false)
			require.NoError(t, err)
			assert.Equal(t, byte(c.t), got[4])
		})
	}
}

func TestEncodeDocument_NestedArray(t *testing.T) {
	doc := NewDocument(Element{Key: "a", Value: []interface{}{int32(1), "two", true}})
	got, err := EncodeDocument(doc, false)
	require.NoError(t, err)

	decoded, _, err := DecodeOne(got, DecodeOptions{})
	require.NoError(t, err)
	arr, ok := decoded.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []interface{}{int32(1), "two", true}, arr)
}

func TestEncodeDocument_BinarySubtypes(t *testing.T) {
	for _, subtype := range []byte{0x00, 0x02, 0x03, 0x05, 0x80} {
		t.Run(string(rune(subtype)), func(t *testing.T) {
			var payload []byte
			if subtype == 0x03 {
				payload = make([]byte, 16)
				for i := range payload {
					payload[i] = byte(i)
				}
			} else {
				payload = []byte{1, 2, 3, 4}
			}
			doc := NewDocument(Element{Key: "b", Value: Binary{Subtype: subtype, Data: payload}})
			got, err := EncodeDocument(doc, false)
			require.NoError(t, err)

			decoded, _, err := DecodeOne(got, DecodeOptions{})
			require.NoError(t, err)
			v, ok := decoded.Lookup("b")
			require.True(t, ok)

			if subtype == 0x03 {
				u, ok := v.(UUID)
				require.True(t, ok)
				assert.Equal(t, payload, u[:])
			} else {
				b, ok := v.(Binary)
				require.True(t, ok)
				assert.Equal(t, subtype, b.Subtype)
				assert.Equal(t, payload, b.Data)
			}
		})
	}
}

func TestEncodeDocument_Concatenation(t *testing.T) {
	d1 := NewDocument(Element{Key: "a", Value: int32(1)})
	d2 := NewDocument(Element{Key: "b", Value: int32(2)})
	d3 := NewDocument(Element{Key: "c", Value: int32(3)})

	var all []byte
	for _, d := range []*Document{d1, d2, d3} {
		b, err := EncodeDocument(d, false)
		require.NoError(t, err)
		all = append(all, b...)
	}

	docs, err := DecodeAll(all, DecodeOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	v1, _ := docs[0].Lookup("a")
	v2, _ := docs[1].Lookup("b")
	v3, _ := docs[2].Lookup("c")
	assert.Equal(t, int32(1), v1)
	assert.Equal(t, int32(2), v2)
	assert.Equal(t, int32(3), v3)
}

func TestEncodeDocument_LengthSelfConsistency(t *testing.T) {
	doc := NewDocument(Element{Key: "k", Value: "value"})
	got, err := EncodeDocument(doc, false)
	require.NoError(t, err)

	declared, ok := int32FromLE(got)
	require.True(t, ok)
	assert.Equal(t, int(declared), len(got))
	assert.Equal(t, byte(0x00), got[len(got)-1])
}
