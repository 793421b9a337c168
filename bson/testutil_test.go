package bson

import (
	"encoding/hex"
	"strings"
)

// decodeHex parses a whitespace-separated hex dump, as used throughout the
// encode/decode test tables, into raw bytes.
func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.ReplaceAll(s, " ", ""))
}

// int32FromLE reads the little-endian int32 declared length at the front
// of a BSON document or wire message.
func int32FromLE(b []byte) (int32, bool) {
	if len(b) < 4 {
		return 0, false
	}
	return int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16 | int32(b[3])<<24, true
}
