// Package bson implements a codec for BSON (Binary JSON), the binary
// document format used by MongoDB.
package bson

// Type identifies the wire-format tag byte of a BSON element.
type Type byte

// These constants uniquely identify each BSON element type. Values match
// the tag bytes defined by the BSON specification.
const (
	TypeDouble           Type = 0x01
	TypeString           Type = 0x02
	TypeEmbeddedDocument Type = 0x03
	TypeArray            Type = 0x04
	TypeBinary           Type = 0x05
	TypeUndefined        Type = 0x06
	TypeObjectID         Type = 0x07
	TypeBoolean          Type = 0x08
	TypeDateTime         Type = 0x09
	TypeNull             Type = 0x0A
	TypeRegex            Type = 0x0B
	TypeDBPointer        Type = 0x0C
	TypeJavaScript       Type = 0x0D
	TypeSymbol           Type = 0x0E
	TypeCodeWithScope    Type = 0x0F
	TypeInt32            Type = 0x10
	TypeTimestamp        Type = 0x11
	TypeInt64            Type = 0x12
	TypeMinKey           Type = 0xFF
	TypeMaxKey           Type = 0x7F
)

// String returns the human-readable name of the BSON type.
func (t Type) String() string {
	switch t {
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeEmbeddedDocument:
		return "embedded document"
	case TypeArray:
		return "array"
	case TypeBinary:
		return "binary"
	case TypeUndefined:
		return "undefined"
	case TypeObjectID:
		return "objectID"
	case TypeBoolean:
		return "boolean"
	case TypeDateTime:
		return "UTC datetime"
	case TypeNull:
		return "null"
	case TypeRegex:
		return "regex"
	case TypeDBPointer:
		return "dbPointer"
	case TypeJavaScript:
		return "javascript"
	case TypeSymbol:
		return "symbol"
	case TypeCodeWithScope:
		return "code with scope"
	case TypeInt32:
		return "32-bit integer"
	case TypeTimestamp:
		return "timestamp"
	case TypeInt64:
		return "64-bit integer"
	case TypeMinKey:
		return "min key"
	case TypeMaxKey:
		return "max key"
	default:
		return "invalid"
	}
}

// Value is any Go value that maps to one of the BSON types above. The
// concrete type held determines the encoding:
//
//	float64          -> TypeDouble
//	string           -> TypeString
//	*Document        -> TypeEmbeddedDocument
//	[]interface{}    -> TypeArray
//	Binary           -> TypeBinary (general subtype)
//	UUID             -> TypeBinary (subtype 3)
//	Undefined        -> TypeNull (written as null)
//	ObjectID         -> TypeObjectID
//	bool             -> TypeBoolean
//	DateTime         -> TypeDateTime
//	nil              -> TypeNull
//	Regex            -> TypeRegex
//	DBPointer        -> TypeDBPointer
//	DBRef            -> TypeEmbeddedDocument (with "$ref" written first)
//	JavaScript       -> TypeJavaScript
//	Symbol           -> TypeSymbol
//	CodeWithScope    -> TypeCodeWithScope
//	int32            -> TypeInt32
//	Timestamp        -> TypeTimestamp
//	int64            -> TypeInt64
//	MinKey           -> TypeMinKey
//	MaxKey           -> TypeMaxKey
//
// Any other concrete type passed to the encoder is a programming error and
// results in an InvalidDocumentError.
type Value = interface{}

// Undefined represents the BSON undefined type (tag 0x06). Decoding a
// 0x06 element yields Null (nil), not Undefined{}; this type exists so a
// caller can still explicitly construct a value destined for the wire as
// undefined, which the encoder also writes as Null.
type Undefined struct{}

// Binary holds raw bytes tagged with a BSON binary subtype. Subtype 2 has
// dedicated framing handled by the codec. Binary can be encoded with any
// subtype; decoding yields Binary for every subtype except 3, which
// decodes as a UUID.
type Binary struct {
	Subtype byte
	Data    []byte
}

// UUID is a 16-byte binary value encoded as BSON binary subtype 3. Its
// bytes are written to and read from the wire exactly in the order they
// are stored; the codec does not reorder them into or out of a
// little-endian field layout. See uuid.go for constructors and helpers.
type UUID [16]byte

// Regex holds a BSON regular expression: a pattern and a set of flag
// letters. Flags are stored as a bitmask; see RegexFlags* constants.
type Regex struct {
	Pattern string
	Flags   RegexFlags
}

// RegexFlags is a bitmask of regular expression flags. Bit values match
// the historical PyMongo/driver encoding so that decoded flags can be
// inspected directly.
type RegexFlags uint32

const (
	RegexIgnoreCase RegexFlags = 1 << 1 // i
	RegexLocaleDep  RegexFlags = 1 << 2 // l
	RegexMultiline  RegexFlags = 1 << 3 // m
	RegexDotAll     RegexFlags = 1 << 4 // s
	RegexUnicode    RegexFlags = 1 << 5 // u (decode-only, not re-emitted)
	RegexVerbose    RegexFlags = 1 << 6 // x
)

// DBPointer is the legacy BSON DBPointer type (tag 0x0C): a collection
// namespace and an ObjectID. It is encode-only: the encoder writes a
// DBPointer value as a raw tag-0x0C element, but decoding a tag-0x0C
// element always yields a DBRef, matching the original implementation's
// own decode-side behavior.
type DBPointer struct {
	Namespace string
	ID        ObjectID
}

// DBRef is a database reference. It is produced by decoding either a
// tag-0x0C DBPointer element or a sub-document whose first key is
// literally "$ref" (optionally followed by "$id" and other fields); the
// latter round-trips back to the same sub-document shape on encode.
type DBRef struct {
	Collection string
	ID         Value
	Database   string // optional, empty if absent
	Extra      *Document
}

// JavaScript holds BSON JavaScript code without an associated scope.
type JavaScript string

// Symbol holds a BSON symbol. The encoder writes a Symbol value as
// TypeSymbol and never produces TypeSymbol from a plain Go string;
// decoding a TypeSymbol element yields a plain Go string, not a Symbol.
type Symbol string

// CodeWithScope holds BSON JavaScript code together with the scope
// (variable bindings) it closed over.
type CodeWithScope struct {
	Code  string
	Scope *Document
}

// Timestamp is the BSON internal replication timestamp: an ordinal
// (Increment) paired with a Unix time in seconds (Time).
type Timestamp struct {
	Time      uint32
	Increment uint32
}

// MinKey and MaxKey are singleton sentinel types used for comparisons
// against all other BSON values.
type MinKey struct{}
type MaxKey struct{}
