// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package wire assembles the legacy MongoDB wire protocol messages that
// carry BSON payloads: OP_INSERT, OP_UPDATE, OP_QUERY, and OP_GET_MORE,
// including the optional getLastError "safe mode" piggyback message.
package wire

// OpCode identifies the kind of a wire protocol message.
type OpCode int32

// Opcodes for the legacy messages this package builds. The skipped
// values (2003, 2006, 2007, and everything above 2010) belong to
// OP_DELETE, OP_KILL_CURSORS, and the modern OP_COMMAND/OP_MSG family,
// none of which this package constructs.
const (
	OpUpdate  OpCode = 2001
	OpInsert  OpCode = 2002
	OpQuery   OpCode = 2004
	OpGetMore OpCode = 2005
)

func (oc OpCode) String() string {
	switch oc {
	case OpUpdate:
		return "OP_UPDATE"
	case OpInsert:
		return "OP_INSERT"
	case OpQuery:
		return "OP_QUERY"
	case OpGetMore:
		return "OP_GET_MORE"
	default:
		return "<invalid opcode>"
	}
}

// QueryFlag represents the flags on an OP_QUERY message.
type QueryFlag int32

const (
	_ QueryFlag = 1 << iota
	TailableCursor
	SecondaryOK
	OplogReplay
	NoCursorTimeout
	AwaitData
	Exhaust
	Partial
)

// UpdateFlag represents the flags on an OP_UPDATE message.
type UpdateFlag int32

const (
	Upsert UpdateFlag = 1 << iota
	MultiUpdate
)

// appendHeader writes the 16-byte wire message header shared by every opcode
// in this package: total message length (back-patched by the caller),
// requestID, responseTo (always 0 for a client request), and opcode.
func appendHeader(dst []byte, requestID int32, opcode OpCode) []byte {
	dst = appendi32(dst, 0) // messageLength placeholder, patched in by the caller
	dst = appendi32(dst, requestID)
	dst = appendi32(dst, 0) // responseTo
	dst = appendi32(dst, int32(opcode))
	return dst
}

// patchLength writes the final message length into the first 4 bytes of
// a message that starts at offset start within buf.
func patchLength(buf []byte, start int) {
	length := int32(len(buf) - start)
	buf[start] = byte(length)
	buf[start+1] = byte(length >> 8)
	buf[start+2] = byte(length >> 16)
	buf[start+3] = byte(length >> 24)
}

func appendi32(dst []byte, v int32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendu64(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

func appendCString(dst []byte, s string) []byte {
	return append(append(dst, s...), 0x00)
}

// ParseHeader decodes the 16-byte wire message header at the front of hdr.
func ParseHeader(hdr []byte) (length, requestID, responseTo int32, opcode OpCode, ok bool) {
	if len(hdr) < 16 {
		return 0, 0, 0, 0, false
	}
	length = int32(hdr[0]) | int32(hdr[1])<<8 | int32(hdr[2])<<16 | int32(hdr[3])<<24
	requestID = int32(hdr[4]) | int32(hdr[5])<<8 | int32(hdr[6])<<16 | int32(hdr[7])<<24
	responseTo = int32(hdr[8]) | int32(hdr[9])<<8 | int32(hdr[10])<<16 | int32(hdr[11])<<24
	opcode = OpCode(int32(hdr[12]) | int32(hdr[13])<<8 | int32(hdr[14])<<16 | int32(hdr[15])<<24)
	return length, requestID, responseTo, opcode, true
}
