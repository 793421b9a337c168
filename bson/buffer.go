// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import "fmt"

// Buffer is a growable byte buffer used by the encoder to assemble BSON
// documents. It supports reserving space for a length prefix before the
// length is known (SaveSpace) and patching it in afterward
// (BackpatchLength), mirroring the way a BSON document's own 4-byte
// length field is written after its contents.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends b to the buffer.
func (buf *Buffer) Write(b []byte) error {
	buf.data = append(buf.data, b...)
	return nil
}

// WriteByte appends a single byte to the buffer.
func (buf *Buffer) WriteByte(b byte) error {
	buf.data = append(buf.data, b)
	return nil
}

// SaveSpace reserves n zero bytes and returns the offset at which they
// start, to be patched in later with BackpatchLength or BackpatchInt32.
func (buf *Buffer) SaveSpace(n int) int {
	idx := len(buf.data)
	for i := 0; i < n; i++ {
		buf.data = append(buf.data, 0x00)
	}
	return idx
}

// Position returns the current length of the buffer's contents.
func (buf *Buffer) Position() int {
	return len(buf.data)
}

// Data returns the buffer's contents. The returned slice aliases the
// buffer's internal storage and must not be retained across further
// writes.
func (buf *Buffer) Data() []byte {
	return buf.data
}

// BackpatchInt32 writes v as a little-endian int32 at offset idx,
// previously reserved by SaveSpace(4). It is used to fill in a
// document's or array's total length once the body has been written.
func (buf *Buffer) BackpatchInt32(idx int, v int32) error {
	if idx < 0 || idx+4 > len(buf.data) {
		return fmt.Errorf("bson: backpatch offset %d out of range for buffer of length %d", idx, len(buf.data))
	}
	buf.data[idx] = byte(v)
	buf.data[idx+1] = byte(v >> 8)
	buf.data[idx+2] = byte(v >> 16)
	buf.data[idx+3] = byte(v >> 24)
	return nil
}

// BackpatchLength patches in the length of everything written to the
// buffer since idx, including the 4 reserved length bytes themselves. It
// is the common case: idx was reserved right before a document's or
// array's body was written.
func (buf *Buffer) BackpatchLength(idx int) error {
	return buf.BackpatchInt32(idx, int32(len(buf.data)-idx))
}
