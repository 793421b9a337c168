// Package llbson contains low-level functions for encoding and decoding
// the byte-level representation of BSON elements and values. They are
// deliberately unaware of the higher-level Document/Value model in the
// bson package and operate directly on byte slices.
//
// Read* functions return the decoded value together with a boolean
// indicating whether there were enough bytes to read it. A boolean is
// used instead of an error because the only possible failure mode at
// this level is "not enough bytes" — this package does no semantic
// validation. It is the caller's responsibility to validate the
// resulting values.
//
// Append* functions append the encoded value to dst and return the
// extended slice, in the append(dst, ...) style used throughout this
// package so callers can chain calls without intermediate allocations.
package llbson

import (
	"bytes"
	"math"
)

// Type mirrors the BSON type tag byte. It is redeclared here, rather than
// imported from the bson package, to keep this package free of a
// dependency on the higher-level Document/Value model it helps build.
type Type byte

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

// AppendType appends t to dst.
func AppendType(dst []byte, t Type) []byte { return append(dst, byte(t)) }

// AppendKey appends key as a cstring (NUL-terminated) to dst.
func AppendKey(dst []byte, key string) []byte { return append(dst, key+string(byte(0x00))...) }

// AppendHeader appends the type byte and key cstring to dst.
func AppendHeader(dst []byte, t Type, key string) []byte {
	dst = AppendType(dst, t)
	dst = append(dst, key...)
	return append(dst, 0x00)
}

// ReadType reads the first byte of src as a Type.
func ReadType(src []byte) (Type, bool) {
	if len(src) < 1 {
		return 0, false
	}
	return Type(src[0]), true
}

// ReadKey reads a cstring key from the front of src.
func ReadKey(src []byte) (string, bool) { return readcstring(src) }

// ReadHeader reads a type byte followed by a cstring key from src.
func ReadHeader(src []byte) (t Type, key string, ok bool) {
	t, ok = ReadType(src)
	if !ok {
		return 0, "", false
	}
	key, ok = ReadKey(src[1:])
	if !ok {
		return 0, "", false
	}
	return t, key, true
}

// AppendDouble appends f to dst.
func AppendDouble(dst []byte, f float64) []byte { return appendu64(dst, math.Float64bits(f)) }

// AppendDoubleElement appends a full BSON double element (header + value).
func AppendDoubleElement(dst []byte, key string, f float64) []byte {
	return AppendDouble(AppendHeader(dst, TypeDouble, key), f)
}

// ReadDouble reads a float64 from src.
func ReadDouble(src []byte) (float64, bool) {
	bits, ok := readu64(src)
	if !ok {
		return 0, false
	}
	return math.Float64frombits(bits), true
}

// AppendString appends the length-prefixed, NUL-terminated string s to dst.
func AppendString(dst []byte, s string) []byte { return appendstring(dst, s) }

// AppendStringElement appends a full BSON string element (header + value).
func AppendStringElement(dst []byte, key, val string) []byte {
	return AppendString(AppendHeader(dst, TypeString, key), val)
}

// ReadString reads a length-prefixed string from src.
func ReadString(src []byte) (string, bool) { return readstring(src) }

// AppendDocument appends the raw, already-encoded document bytes to dst.
func AppendDocument(dst []byte, doc []byte) []byte { return append(dst, doc...) }

// ReadDocument reads a length-prefixed document (including its own
// length prefix and terminating NUL) from src.
func ReadDocument(src []byte) ([]byte, bool) { return readLengthBytes(src) }

// AppendArray appends the raw, already-encoded array document bytes to dst.
func AppendArray(dst []byte, arr []byte) []byte { return append(dst, arr...) }

// ReadArray reads a length-prefixed array document from src.
func ReadArray(src []byte) ([]byte, bool) { return readLengthBytes(src) }

// AppendBinary appends a binary value of the given subtype to dst.
// Subtype 2 gets the legacy doubled-length framing.
func AppendBinary(dst []byte, subtype byte, b []byte) []byte {
	if subtype == 0x02 {
		return appendBinarySubtype2(dst, subtype, b)
	}
	dst = append(appendLength(dst, int32(len(b))), subtype)
	return append(dst, b...)
}

// AppendBinaryElement appends a full BSON binary element (header + value).
func AppendBinaryElement(dst []byte, key string, subtype byte, b []byte) []byte {
	return AppendBinary(AppendHeader(dst, TypeBinary, key), subtype, b)
}

// ReadBinary reads a binary subtype and payload from src, understanding
// the doubled-length framing of subtype 2.
func ReadBinary(src []byte) (subtype byte, bin []byte, ok bool) {
	length, ok := readLength(src)
	if !ok {
		return 0x00, nil, false
	}
	if len(src) < 5 {
		return 0x00, nil, false
	}
	subtype = src[4]

	if subtype == 0x02 {
		inner, ok := readLength(src[5:])
		if !ok || len(src) < 9 || len(src[9:]) < int(inner) {
			return 0x00, nil, false
		}
		return subtype, src[9 : inner+9], true
	}

	if len(src[5:]) < int(length) {
		return 0x00, nil, false
	}

	return subtype, src[5 : length+5], true
}

// AppendUndefinedElement appends a BSON undefined element header for key.
func AppendUndefinedElement(dst []byte, key string) []byte {
	return AppendHeader(dst, TypeUndefined, key)
}

// AppendObjectID appends the 12 raw ObjectID bytes to dst.
func AppendObjectID(dst []byte, oid [12]byte) []byte { return append(dst, oid[:]...) }

// AppendObjectIDElement appends a full BSON ObjectID element (header + value).
func AppendObjectIDElement(dst []byte, key string, oid [12]byte) []byte {
	return AppendObjectID(AppendHeader(dst, TypeObjectID, key), oid)
}

// ReadObjectID reads 12 ObjectID bytes from src.
func ReadObjectID(src []byte) ([12]byte, bool) {
	var oid [12]byte
	if len(src) < 12 {
		return oid, false
	}
	copy(oid[:], src[0:12])
	return oid, true
}

// AppendBoolean appends a single boolean byte to dst.
func AppendBoolean(dst []byte, b bool) []byte {
	if b {
		return append(dst, 0x01)
	}
	return append(dst, 0x00)
}

// AppendBooleanElement appends a full BSON boolean element (header + value).
func AppendBooleanElement(dst []byte, key string, b bool) []byte {
	return AppendBoolean(AppendHeader(dst, TypeBoolean, key), b)
}

// ReadBoolean reads a single boolean byte from src.
func ReadBoolean(src []byte) (bool, bool) {
	if len(src) < 1 {
		return false, false
	}
	return src[0] == 0x01, true
}

// AppendDateTime appends dt, milliseconds since the Unix epoch, to dst.
func AppendDateTime(dst []byte, dt int64) []byte { return appendi64(dst, dt) }

// AppendDateTimeElement appends a full BSON datetime element (header + value).
func AppendDateTimeElement(dst []byte, key string, dt int64) []byte {
	return AppendDateTime(AppendHeader(dst, TypeDateTime, key), dt)
}

// ReadDateTime reads milliseconds since the Unix epoch from src.
func ReadDateTime(src []byte) (int64, bool) { return readi64(src) }

// AppendNullElement appends a BSON null element header for key.
func AppendNullElement(dst []byte, key string) []byte { return AppendHeader(dst, TypeNull, key) }

// AppendRegex appends a pattern cstring followed by an options cstring to dst.
func AppendRegex(dst []byte, pattern, options string) []byte {
	return append(dst, pattern+string(byte(0x00))+options+string(byte(0x00))...)
}

// AppendRegexElement appends a full BSON regex element (header + value).
func AppendRegexElement(dst []byte, key, pattern, options string) []byte {
	return AppendRegex(AppendHeader(dst, TypeRegex, key), pattern, options)
}

// ReadRegex reads a pattern cstring followed by an options cstring from src.
func ReadRegex(src []byte) (pattern, options string, ok bool) {
	pattern, ok = readcstring(src)
	if !ok {
		return "", "", false
	}
	options, ok = readcstring(src[len(pattern)+1:])
	if !ok {
		return "", "", false
	}
	return pattern, options, true
}

// AppendDBPointer appends a namespace string followed by 12 ObjectID bytes to dst.
func AppendDBPointer(dst []byte, ns string, oid [12]byte) []byte {
	return append(appendstring(dst, ns), oid[:]...)
}

// AppendDBPointerElement appends a full BSON DBPointer element (header + value).
func AppendDBPointerElement(dst []byte, key, ns string, oid [12]byte) []byte {
	return AppendDBPointer(AppendHeader(dst, TypeDBPointer, key), ns, oid)
}

// ReadDBPointer reads a namespace string followed by 12 ObjectID bytes from src.
func ReadDBPointer(src []byte) (ns string, oid [12]byte, ok bool) {
	ns, ok = readstring(src)
	if !ok {
		return "", oid, false
	}
	oid, ok = ReadObjectID(src[4+len(ns)+1:])
	if !ok {
		return "", oid, false
	}
	return ns, oid, true
}

// AppendJavaScript appends a length-prefixed code string to dst.
func AppendJavaScript(dst []byte, js string) []byte { return appendstring(dst, js) }

// AppendJavaScriptElement appends a full BSON JavaScript element (header + value).
func AppendJavaScriptElement(dst []byte, key, js string) []byte {
	return AppendJavaScript(AppendHeader(dst, TypeJavaScript, key), js)
}

// ReadJavaScript reads a length-prefixed code string from src.
func ReadJavaScript(src []byte) (string, bool) { return readstring(src) }

// AppendSymbol appends a length-prefixed symbol string to dst.
func AppendSymbol(dst []byte, symbol string) []byte { return appendstring(dst, symbol) }

// AppendSymbolElement appends a full BSON symbol element (header + value).
func AppendSymbolElement(dst []byte, key, symbol string) []byte {
	return AppendSymbol(AppendHeader(dst, TypeSymbol, key), symbol)
}

// ReadSymbol reads a length-prefixed symbol string from src.
func ReadSymbol(src []byte) (string, bool) { return readstring(src) }

// AppendCodeWithScope appends the total length, the code string, and the
// already-encoded scope document to dst.
func AppendCodeWithScope(dst []byte, code string, scope []byte) []byte {
	length := int32(4 + 4 + len(code) + 1 + len(scope))
	dst = appendLength(dst, length)
	return append(appendstring(dst, code), scope...)
}

// AppendCodeWithScopeElement appends a full BSON code-with-scope element (header + value).
func AppendCodeWithScopeElement(dst []byte, key, code string, scope []byte) []byte {
	return AppendCodeWithScope(AppendHeader(dst, TypeCodeWithScope, key), code, scope)
}

// ReadCodeWithScope reads the code string and raw scope document bytes from src.
func ReadCodeWithScope(src []byte) (code string, scope []byte, ok bool) {
	length, ok := readLength(src)
	if !ok || len(src) < int(length) {
		return "", nil, false
	}
	code, ok = readstring(src[4:length])
	if !ok {
		return "", nil, false
	}
	scopeStart := 4 + 4 + len(code) + 1
	if scopeStart > len(src) {
		return "", nil, false
	}
	scope = src[scopeStart:length]
	return code, scope, true
}

// AppendInt32 appends i32 to dst.
func AppendInt32(dst []byte, i32 int32) []byte { return appendi32(dst, i32) }

// AppendInt32Element appends a full BSON int32 element (header + value).
func AppendInt32Element(dst []byte, key string, i32 int32) []byte {
	return AppendInt32(AppendHeader(dst, TypeInt32, key), i32)
}

// ReadInt32 reads an int32 from src.
func ReadInt32(src []byte) (int32, bool) { return readi32(src) }

// AppendTimestamp appends increment i followed by time t to dst.
func AppendTimestamp(dst []byte, t, i uint32) []byte {
	return appendu32(appendu32(dst, i), t)
}

// AppendTimestampElement appends a full BSON timestamp element (header + value).
func AppendTimestampElement(dst []byte, key string, t, i uint32) []byte {
	return AppendTimestamp(AppendHeader(dst, TypeTimestamp, key), t, i)
}

// ReadTimestamp reads increment i followed by time t from src.
func ReadTimestamp(src []byte) (t, i uint32, ok bool) {
	i, ok = readu32(src)
	if !ok {
		return 0, 0, false
	}
	t, ok = readu32(src[4:])
	if !ok {
		return 0, 0, false
	}
	return t, i, true
}

// AppendInt64 appends i64 to dst.
func AppendInt64(dst []byte, i64 int64) []byte { return appendi64(dst, i64) }

// AppendInt64Element appends a full BSON int64 element (header + value).
func AppendInt64Element(dst []byte, key string, i64 int64) []byte {
	return AppendInt64(AppendHeader(dst, TypeInt64, key), i64)
}

// ReadInt64 reads an int64 from src.
func ReadInt64(src []byte) (int64, bool) { return readi64(src) }

// AppendMaxKeyElement appends a BSON max-key element header for key.
func AppendMaxKeyElement(dst []byte, key string) []byte { return AppendHeader(dst, TypeMaxKey, key) }

// AppendMinKeyElement appends a BSON min-key element header for key.
func AppendMinKeyElement(dst []byte, key string) []byte { return AppendHeader(dst, TypeMinKey, key) }

func appendLength(dst []byte, l int32) []byte { return appendi32(dst, l) }

func appendi32(dst []byte, i32 int32) []byte {
	return append(dst, byte(i32), byte(i32>>8), byte(i32>>16), byte(i32>>24))
}

func readLength(src []byte) (int32, bool) { return readi32(src) }

func readi32(src []byte) (int32, bool) {
	if len(src) < 4 {
		return 0, false
	}
	return int32(src[0]) | int32(src[1])<<8 | int32(src[2])<<16 | int32(src[3])<<24, true
}

func appendi64(dst []byte, i64 int64) []byte {
	return append(dst,
		byte(i64), byte(i64>>8), byte(i64>>16), byte(i64>>24),
		byte(i64>>32), byte(i64>>40), byte(i64>>48), byte(i64>>56),
	)
}

func readi64(src []byte) (int64, bool) {
	if len(src) < 8 {
		return 0, false
	}
	i64 := int64(src[0]) | int64(src[1])<<8 | int64(src[2])<<16 | int64(src[3])<<24 |
		int64(src[4])<<32 | int64(src[5])<<40 | int64(src[6])<<48 | int64(src[7])<<56
	return i64, true
}

func appendu32(dst []byte, u32 uint32) []byte {
	return append(dst, byte(u32), byte(u32>>8), byte(u32>>16), byte(u32>>24))
}

func readu32(src []byte) (uint32, bool) {
	if len(src) < 4 {
		return 0, false
	}
	return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24, true
}

func appendu64(dst []byte, u64 uint64) []byte {
	return append(dst,
		byte(u64), byte(u64>>8), byte(u64>>16), byte(u64>>24),
		byte(u64>>32), byte(u64>>40), byte(u64>>48), byte(u64>>56),
	)
}

func readu64(src []byte) (uint64, bool) {
	if len(src) < 8 {
		return 0, false
	}
	u64 := uint64(src[0]) | uint64(src[1])<<8 | uint64(src[2])<<16 | uint64(src[3])<<24 |
		uint64(src[4])<<32 | uint64(src[5])<<40 | uint64(src[6])<<48 | uint64(src[7])<<56
	return u64, true
}

func readcstring(src []byte) (string, bool) {
	idx := bytes.IndexByte(src, 0x00)
	if idx < 0 {
		return "", false
	}
	return string(src[:idx]), true
}

func appendstring(dst []byte, s string) []byte {
	l := int32(len(s) + 1)
	dst = appendLength(dst, l)
	dst = append(dst, s...)
	return append(dst, 0x00)
}

func readstring(src []byte) (string, bool) {
	l, ok := readLength(src)
	if !ok || l < 1 {
		return "", false
	}
	if len(src[4:]) < int(l) {
		return "", false
	}
	return string(src[4 : l+4-1]), true
}

// readLengthBytes reads a length prefix (included in the count) and that
// many bytes, as used by documents and arrays.
func readLengthBytes(src []byte) ([]byte, bool) {
	l, ok := readLength(src)
	if !ok || l < 4 {
		return nil, false
	}
	if len(src) < int(l) {
		return nil, false
	}
	return src[:l], true
}

func appendBinarySubtype2(dst []byte, subtype byte, b []byte) []byte {
	dst = appendLength(dst, int32(len(b)+4))
	dst = append(dst, subtype)
	dst = appendLength(dst, int32(len(b)))
	return append(dst, b...)
}
