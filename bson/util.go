package bson

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// validateKey enforces the key restrictions that apply when check_keys is
// requested: a key may not start with "$" and may not contain ".".
func validateKey(key string) error {
	if strings.HasPrefix(key, "$") {
		return &InvalidDocumentError{Reason: fmt.Sprintf("key %q must not start with '$'", key)}
	}
	if strings.Contains(key, ".") {
		return &InvalidDocumentError{Reason: fmt.Sprintf("key %q must not contain '.'", key)}
	}
	return nil
}

// validateUTF8 rejects strings that are not well-formed UTF-8.
func validateUTF8(s string) error {
	if !utf8.ValidString(s) {
		return &InvalidStringDataError{Reason: "strings must be valid UTF-8"}
	}
	return nil
}

// validateCString rejects strings that contain an embedded NUL, since
// they cannot be represented as a BSON cstring (used for keys, regex
// patterns and flags, JavaScript-with-scope is exempt since it uses
// length-prefixed framing instead). This is a document-shape problem, not
// a string-encoding one, so it is reported as InvalidDocument.
func validateCString(s string) error {
	if strings.IndexByte(s, 0x00) >= 0 {
		return &InvalidDocumentError{Reason: "value must not contain a NUL byte"}
	}
	return nil
}
