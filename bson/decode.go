package bson

import (
	"fmt"

	"github.com/blep/mongo-python-driver/bson/internal/llbson"
)

// DecodeOptions controls decoder behavior.
type DecodeOptions struct {
	// TZAware mirrors the original decode option of the same name.
	// Decoded DateTime values are always normalized to UTC regardless of
	// this flag: BSON carries no zone information, only an absolute
	// instant, and Go's time.Time has no naive/aware distinction for it
	// to select between. Kept for API compatibility with callers
	// porting option structs from the original implementation.
	TZAware bool

	// NewDocument constructs the container for each decoded document.
	// Defaults to NewDocument when nil.
	NewDocument func() *Document
}

func (o DecodeOptions) newDocument() *Document {
	if o.NewDocument != nil {
		return o.NewDocument()
	}
	return NewDocument()
}

// DecodeOne parses exactly one top-level BSON document from data and
// returns it along with any unconsumed trailing bytes.
func DecodeOne(data []byte, opts DecodeOptions) (*Document, []byte, error) {
	size, err := validateOuterFraming(data)
	if err != nil {
		return nil, nil, err
	}
	doc, err := decodeDocumentBody(data[4:size-1], opts, 0)
	if err != nil {
		return nil, nil, err
	}
	return doc, data[size:], nil
}

// DecodeAll parses a concatenation of BSON documents, consuming data
// entirely.
func DecodeAll(data []byte, opts DecodeOptions) ([]*Document, error) {
	var docs []*Document
	rest := data
	for len(rest) > 0 {
		doc, tail, err := DecodeOne(rest, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		rest = tail
	}
	return docs, nil
}

// validateOuterFraming checks the preconditions common to every
// top-level document: enough bytes for a length prefix and terminator,
// the declared size fitting within the input, and a trailing NUL at the
// declared end. It returns the declared size.
func validateOuterFraming(data []byte) (int32, error) {
	if len(data) < 5 {
		return 0, &InvalidBSONError{Reason: "not enough data for a BSON document"}
	}
	size, ok := llbson.ReadInt32(data)
	if !ok {
		return 0, &InvalidBSONError{Reason: "not enough data for a BSON document"}
	}
	if size < 5 || int(size) > len(data) {
		return 0, &InvalidBSONError{Reason: "objsize too large"}
	}
	if data[size-1] != 0x00 {
		return 0, &InvalidBSONError{Reason: "bad eoo"}
	}
	return size, nil
}

// decodeDocumentBody decodes the element sequence between a document's
// length prefix and its trailing NUL (both already stripped by the
// caller).
func decodeDocumentBody(body []byte, opts DecodeOptions, depth int) (*Document, error) {
	if depth > MaxDocumentDepth {
		return nil, &InvalidBSONError{Reason: "document nesting too deep"}
	}
	doc := opts.newDocument()
	rest := body
	for len(rest) > 0 {
		t, key, ok := llbson.ReadHeader(rest)
		if !ok {
			return nil, &InvalidBSONError{Reason: "truncated element header"}
		}
		rest = rest[1+len(key)+1:]
		val, n, err := decodeValue(llbson.Type(t), rest, opts, depth)
		if err != nil {
			return nil, err
		}
		doc.Append(key, val)
		rest = rest[n:]
	}
	return doc, nil
}

// decodeValue decodes the payload for a single element of type t at the
// front of src, returning the value and the number of bytes consumed.
func decodeValue(t llbson.Type, src []byte, opts DecodeOptions, depth int) (Value, int, error) {
	switch t {
	case llbson.TypeDouble:
		v, ok := llbson.ReadDouble(src)
		if !ok {
			return nil, 0, shortRead("double")
		}
		return v, 8, nil
	case llbson.TypeString:
		v, ok := llbson.ReadString(src)
		if !ok {
			return nil, 0, shortRead("string")
		}
		if err := validateUTF8(v); err != nil {
			return nil, 0, err
		}
		return v, 4 + len(v) + 1, nil
	case llbson.TypeEmbeddedDocument:
		raw, ok := llbson.ReadDocument(src)
		if !ok {
			return nil, 0, shortRead("document")
		}
		body, err := documentBody(raw)
		if err != nil {
			return nil, 0, err
		}
		doc, err := decodeDocumentBody(body, opts, depth+1)
		if err != nil {
			return nil, 0, err
		}
		if ref, ok := asDBRef(doc); ok {
			return ref, len(raw), nil
		}
		return doc, len(raw), nil
	case llbson.TypeArray:
		raw, ok := llbson.ReadArray(src)
		if !ok {
			return nil, 0, shortRead("array")
		}
		body, err := documentBody(raw)
		if err != nil {
			return nil, 0, err
		}
		arr, err := decodeArrayBody(body, opts, depth+1)
		if err != nil {
			return nil, 0, err
		}
		return arr, len(raw), nil
	case llbson.TypeBinary:
		subtype, bin, ok := llbson.ReadBinary(src)
		if !ok {
			return nil, 0, shortRead("binary")
		}
		n := binaryConsumed(src)
		if subtype == 0x03 {
			if len(bin) != 16 {
				return nil, 0, &InvalidBSONError{Reason: "UUID binary value must be 16 bytes"}
			}
			var u UUID
			copy(u[:], bin)
			return u, n, nil
		}
		return Binary{Subtype: subtype, Data: append([]byte(nil), bin...)}, n, nil
	case llbson.TypeUndefined:
		return nil, 0, nil
	case llbson.TypeObjectID:
		oid, ok := llbson.ReadObjectID(src)
		if !ok {
			return nil, 0, shortRead("objectID")
		}
		return ObjectID(oid), 12, nil
	case llbson.TypeBoolean:
		b, ok := llbson.ReadBoolean(src)
		if !ok {
			return nil, 0, shortRead("boolean")
		}
		return b, 1, nil
	case llbson.TypeDateTime:
		ms, ok := llbson.ReadDateTime(src)
		if !ok {
			return nil, 0, shortRead("datetime")
		}
		return millisToDateTime(ms), 8, nil
	case llbson.TypeNull:
		return nil, 0, nil
	case llbson.TypeRegex:
		pattern, options, ok := llbson.ReadRegex(src)
		if !ok {
			return nil, 0, shortRead("regex")
		}
		return Regex{Pattern: pattern, Flags: parseRegexFlags(options)},
			len(pattern) + 1 + len(options) + 1, nil
	case llbson.TypeDBPointer:
		ns, oid, ok := llbson.ReadDBPointer(src)
		if !ok {
			return nil, 0, shortRead("dbpointer")
		}
		return DBRef{Collection: ns, ID: ObjectID(oid)}, 4 + len(ns) + 1 + 12, nil
	case llbson.TypeJavaScript:
		js, ok := llbson.ReadJavaScript(src)
		if !ok {
			return nil, 0, shortRead("javascript")
		}
		return JavaScript(js), 4 + len(js) + 1, nil
	case llbson.TypeSymbol:
		sym, ok := llbson.ReadSymbol(src)
		if !ok {
			return nil, 0, shortRead("symbol")
		}
		return string(sym), 4 + len(sym) + 1, nil
	case llbson.TypeCodeWithScope:
		code, scope, ok := llbson.ReadCodeWithScope(src)
		if !ok {
			return nil, 0, shortRead("code with scope")
		}
		total, _ := llbson.ReadInt32(src)
		scopeBody, err := documentBody(scope)
		if err != nil {
			return nil, 0, err
		}
		scopeDoc, err := decodeDocumentBody(scopeBody, opts, depth+1)
		if err != nil {
			return nil, 0, err
		}
		return CodeWithScope{Code: code, Scope: scopeDoc}, int(total), nil
	case llbson.TypeInt32:
		v, ok := llbson.ReadInt32(src)
		if !ok {
			return nil, 0, shortRead("int32")
		}
		return v, 4, nil
	case llbson.TypeTimestamp:
		t, i, ok := llbson.ReadTimestamp(src)
		if !ok {
			return nil, 0, shortRead("timestamp")
		}
		return Timestamp{Time: t, Increment: i}, 8, nil
	case llbson.TypeInt64:
		v, ok := llbson.ReadInt64(src)
		if !ok {
			return nil, 0, shortRead("int64")
		}
		return v, 8, nil
	case llbson.TypeMinKey:
		return MinKey{}, 0, nil
	case llbson.TypeMaxKey:
		return MaxKey{}, 0, nil
	default:
		return nil, 0, &InvalidBSONError{Reason: fmt.Sprintf("unknown BSON type byte 0x%02x", byte(t))}
	}
}

func shortRead(what string) error {
	return &InvalidBSONError{Reason: fmt.Sprintf("not enough bytes to read %s value", what)}
}

// documentBody strips the length prefix and trailing NUL off a raw
// document/array/scope buffer as returned by llbson.ReadDocument,
// ReadArray, or the scope half of ReadCodeWithScope. Those readers only
// check that the declared length is at least 4, so a declared length of
// exactly 4 would otherwise slice out of bounds here; reject it as
// malformed BSON instead of panicking.
func documentBody(raw []byte) ([]byte, error) {
	if len(raw) < 5 {
		return nil, &InvalidBSONError{Reason: "document too short"}
	}
	return raw[4 : len(raw)-1], nil
}

// binaryConsumed recomputes how many bytes ReadBinary consumed, since
// that function reports the payload but not its own framing length. The
// declared length field means "outer payload length" either way (for
// subtype 2 it already includes the inner length field), so the same
// 4 (length) + 1 (subtype) + length formula applies regardless of subtype.
func binaryConsumed(src []byte) int {
	length, ok := llbson.ReadInt32(src)
	if !ok {
		return 0
	}
	return 4 + 1 + int(length)
}

func decodeArrayBody(body []byte, opts DecodeOptions, depth int) ([]interface{}, error) {
	if depth > MaxDocumentDepth {
		return nil, &InvalidBSONError{Reason: "array nesting too deep"}
	}
	var arr []interface{}
	rest := body
	for len(rest) > 0 {
		t, key, ok := llbson.ReadHeader(rest)
		if !ok {
			return nil, &InvalidBSONError{Reason: "truncated element header"}
		}
		_ = key // array element keys are positional index strings, discarded
		rest = rest[1+len(key)+1:]
		val, n, err := decodeValue(llbson.Type(t), rest, opts, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
		rest = rest[n:]
	}
	return arr, nil
}

// parseRegexFlags folds a BSON regex option letter string into a flag
// mask. Unknown letters are ignored, matching the decoder's liberal
// acceptance policy.
func parseRegexFlags(options string) RegexFlags {
	var flags RegexFlags
	for _, c := range options {
		switch c {
		case 'i':
			flags |= RegexIgnoreCase
		case 'l':
			flags |= RegexLocaleDep
		case 'm':
			flags |= RegexMultiline
		case 's':
			flags |= RegexDotAll
		case 'u':
			flags |= RegexUnicode
		case 'x':
			flags |= RegexVerbose
		}
	}
	return flags
}

// asDBRef recognizes a decoded sub-document as a DBRef when its first
// key is literally "$ref", per the module's DBRef detection decision.
func asDBRef(doc *Document) (DBRef, bool) {
	elems := doc.Elements()
	if len(elems) == 0 || elems[0].Key != "$ref" {
		return DBRef{}, false
	}
	collection, ok := elems[0].Value.(string)
	if !ok {
		return DBRef{}, false
	}
	ref := DBRef{Collection: collection}
	extra := NewDocument()
	for _, e := range elems[1:] {
		switch e.Key {
		case "$id":
			ref.ID = e.Value
		case "$db":
			if db, ok := e.Value.(string); ok {
				ref.Database = db
			}
		default:
			extra.Append(e.Key, e.Value)
		}
	}
	if extra.Len() > 0 {
		ref.Extra = extra
	}
	return ref, true
}
