package bson

import (
	"errors"
	"fmt"
)

// ErrOverflow indicates an integer value does not fit in the BSON integer
// types available (int32 or int64).
var ErrOverflow = errors.New("bson: value overflows int64")

// ErrOutOfMemory indicates the encoder or decoder could not grow its
// working buffer.
var ErrOutOfMemory = errors.New("bson: out of memory")

// InvalidOperationError indicates a caller asked for something the codec
// cannot do given its inputs, such as encoding an empty batch of
// documents where at least one is required.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("bson: invalid operation: %s", e.Reason)
}

// InvalidDocumentError indicates a document could not be encoded as
// given: an unsupported Go value, a key that fails validation, or a
// document deeper than the recursion limit.
type InvalidDocumentError struct {
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("bson: invalid document: %s", e.Reason)
}

// InvalidBSONError indicates malformed or truncated BSON bytes were
// presented to the decoder.
type InvalidBSONError struct {
	Reason string
}

func (e *InvalidBSONError) Error() string {
	return fmt.Sprintf("bson: invalid BSON: %s", e.Reason)
}

// InvalidStringDataError indicates a string value is not valid UTF-8.
type InvalidStringDataError struct {
	Reason string
}

func (e *InvalidStringDataError) Error() string {
	return fmt.Sprintf("bson: invalid string data: %s", e.Reason)
}

// KeyError indicates a requested document key does not exist.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("bson: key not found: %q", e.Key)
}

// MaxDocumentDepth bounds recursive encode/decode to avoid exhausting
// the goroutine stack on adversarial or accidentally self-referential
// input. It matches the depth the reference implementation guards
// against.
const MaxDocumentDepth = 100
