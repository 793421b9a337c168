package bson

import (
	"fmt"
	"math"

	"github.com/blep/mongo-python-driver/bson/internal/llbson"
)

// EncodeDocument serializes doc to BSON bytes. When checkKeys is true,
// keys starting with "$" or containing "." are rejected. At the top
// level, if an "_id" key is present it is written first regardless of
// the document's own iteration order; the document itself is left
// unmodified.
func EncodeDocument(doc *Document, checkKeys bool) ([]byte, error) {
	buf := NewBuffer()
	if err := encodeTopLevelDocument(buf, doc, checkKeys, 0); err != nil {
		return nil, err
	}
	return buf.Data(), nil
}

func encodeTopLevelDocument(buf *Buffer, doc *Document, checkKeys bool, depth int) error {
	idx := buf.SaveSpace(4)
	if err := encodeElements(buf, doc.encodeOrder(), checkKeys, depth); err != nil {
		return err
	}
	if err := buf.WriteByte(0x00); err != nil {
		return err
	}
	return buf.BackpatchLength(idx)
}

// encodeDocument writes doc as an embedded document: reserved length,
// elements in the document's own iteration order (no _id promotion),
// trailing NUL, then back-patches the length.
func encodeDocument(buf *Buffer, doc *Document, checkKeys bool, depth int) error {
	if depth > MaxDocumentDepth {
		return &InvalidDocumentError{Reason: "document nesting too deep"}
	}
	idx := buf.SaveSpace(4)
	if err := encodeElements(buf, doc.Elements(), checkKeys, depth); err != nil {
		return err
	}
	if err := buf.WriteByte(0x00); err != nil {
		return err
	}
	return buf.BackpatchLength(idx)
}

func encodeElements(buf *Buffer, elems []Element, checkKeys bool, depth int) error {
	for _, e := range elems {
		if err := validateCString(e.Key); err != nil {
			return err
		}
		if err := validateUTF8(e.Key); err != nil {
			return err
		}
		if checkKeys && e.Key != "_id" {
			if err := validateKey(e.Key); err != nil {
				return err
			}
		}
		if err := encodeValue(buf, e.Key, e.Value, checkKeys, depth); err != nil {
			return err
		}
	}
	return nil
}

// encodeArray writes an array value (BSON type 0x04) using positional
// decimal-string keys, sharing the same document framing as
// encodeDocument.
func encodeArray(buf *Buffer, arr []interface{}, checkKeys bool, depth int) error {
	if depth > MaxDocumentDepth {
		return &InvalidDocumentError{Reason: "array nesting too deep"}
	}
	idx := buf.SaveSpace(4)
	for i, v := range arr {
		key := fmt.Sprintf("%d", i)
		if err := encodeValue(buf, key, v, checkKeys, depth); err != nil {
			return err
		}
	}
	if err := buf.WriteByte(0x00); err != nil {
		return err
	}
	return buf.BackpatchLength(idx)
}

func encodeValue(buf *Buffer, key string, v Value, checkKeys bool, depth int) error {
	switch val := v.(type) {
	case nil:
		return buf.Write(llbson.AppendNullElement(nil, key))
	case bool:
		return buf.Write(llbson.AppendBooleanElement(nil, key, val))
	case int32:
		// Already a 32-bit value by the caller's own typing; no width
		// check needed.
		return buf.Write(llbson.AppendInt32Element(nil, key, val))
	case int64:
		return encodeInt(buf, key, val)
	case int:
		return encodeInt(buf, key, int64(val))
	case float64:
		return buf.Write(llbson.AppendDoubleElement(nil, key, val))
	case string:
		if err := validateUTF8(val); err != nil {
			return err
		}
		return buf.Write(llbson.AppendStringElement(nil, key, val))
	case Symbol:
		if err := validateUTF8(string(val)); err != nil {
			return err
		}
		return buf.Write(llbson.AppendSymbolElement(nil, key, string(val)))
	case JavaScript:
		if err := validateUTF8(string(val)); err != nil {
			return err
		}
		return buf.Write(llbson.AppendJavaScriptElement(nil, key, string(val)))
	case *Document:
		if err := buf.Write(llbson.AppendHeader(nil, llbson.TypeEmbeddedDocument, key)); err != nil {
			return err
		}
		return encodeDocument(buf, val, checkKeys, depth+1)
	case DBRef:
		return encodeDBRef(buf, key, val, checkKeys, depth)
	case []interface{}:
		if err := buf.Write(llbson.AppendHeader(nil, llbson.TypeArray, key)); err != nil {
			return err
		}
		return encodeArray(buf, val, checkKeys, depth+1)
	case Binary:
		return buf.Write(llbson.AppendBinaryElement(nil, key, val.Subtype, val.Data))
	case UUID:
		b := val[:]
		return buf.Write(llbson.AppendBinaryElement(nil, key, 0x03, b))
	case Undefined:
		// Encoding Undefined always produces Null; decoding never
		// produces Undefined{} back.
		return buf.Write(llbson.AppendNullElement(nil, key))
	case ObjectID:
		return buf.Write(llbson.AppendObjectIDElement(nil, key, [12]byte(val)))
	case DateTime:
		return buf.Write(llbson.AppendDateTimeElement(nil, key, dateTimeToMillis(val)))
	case Regex:
		if err := validateCString(val.Pattern); err != nil {
			return err
		}
		if err := validateUTF8(val.Pattern); err != nil {
			return err
		}
		flags := regexFlagsToString(val.Flags)
		return buf.Write(llbson.AppendRegexElement(nil, key, val.Pattern, flags))
	case DBPointer:
		return buf.Write(llbson.AppendDBPointerElement(nil, key, val.Namespace, [12]byte(val.ID)))
	case CodeWithScope:
		scopeBytes, err := encodeScope(val.Scope, checkKeys, depth+1)
		if err != nil {
			return err
		}
		return buf.Write(llbson.AppendCodeWithScopeElement(nil, key, val.Code, scopeBytes))
	case Timestamp:
		return buf.Write(llbson.AppendTimestampElement(nil, key, val.Time, val.Increment))
	case MinKey:
		return buf.Write(llbson.AppendMinKeyElement(nil, key))
	case MaxKey:
		return buf.Write(llbson.AppendMaxKeyElement(nil, key))
	default:
		return &InvalidDocumentError{Reason: fmt.Sprintf("cannot encode value of type %T for key %q", v, key)}
	}
}

// encodeInt mirrors the C implementation's int dispatch: values that fit
// in a signed 32-bit range are written as Int32, all others as Int64.
// Its int64 input always fits one of the two, so it never overflows.
func encodeInt(buf *Buffer, key string, n int64) error {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return buf.Write(llbson.AppendInt32Element(nil, key, int32(n)))
	}
	return buf.Write(llbson.AppendInt64Element(nil, key, n))
}

func encodeScope(scope *Document, checkKeys bool, depth int) ([]byte, error) {
	buf := NewBuffer()
	if err := encodeDocument(buf, scope, checkKeys, depth); err != nil {
		return nil, err
	}
	return buf.Data(), nil
}

// encodeDBRef writes a DBRef as a sub-document with ordered keys $ref,
// $id, optional $db, followed by any extra carried-over fields.
func encodeDBRef(buf *Buffer, key string, ref DBRef, checkKeys bool, depth int) error {
	if err := buf.Write(llbson.AppendHeader(nil, llbson.TypeEmbeddedDocument, key)); err != nil {
		return err
	}
	if depth > MaxDocumentDepth {
		return &InvalidDocumentError{Reason: "document nesting too deep"}
	}
	idx := buf.SaveSpace(4)
	if err := encodeValue(buf, "$ref", ref.Collection, false, depth+1); err != nil {
		return err
	}
	if err := encodeValue(buf, "$id", ref.ID, false, depth+1); err != nil {
		return err
	}
	if ref.Database != "" {
		if err := encodeValue(buf, "$db", ref.Database, false, depth+1); err != nil {
			return err
		}
	}
	if ref.Extra != nil {
		if err := encodeElements(buf, ref.Extra.Elements(), checkKeys, depth+1); err != nil {
			return err
		}
	}
	if err := buf.WriteByte(0x00); err != nil {
		return err
	}
	return buf.BackpatchLength(idx)
}

// regexFlagsToString converts a RegexFlags bitmask to the letter string
// the encoder is allowed to emit. Flags are emitted in the fixed table
// order i, l, m, s, x; u has no emitter bit and is always dropped here
// even if present on the value (see the module's Open Questions).
func regexFlagsToString(flags RegexFlags) string {
	var out []byte
	if flags&RegexIgnoreCase != 0 {
		out = append(out, 'i')
	}
	if flags&RegexLocaleDep != 0 {
		out = append(out, 'l')
	}
	if flags&RegexMultiline != 0 {
		out = append(out, 'm')
	}
	if flags&RegexDotAll != 0 {
		out = append(out, 's')
	}
	if flags&RegexVerbose != 0 {
		out = append(out, 'x')
	}
	return string(out)
}
