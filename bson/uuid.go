// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"bytes"

	"github.com/google/uuid"
)

// NilUUID is the zero value for UUID.
var NilUUID UUID

// NewUUIDV4 returns a Version 4 (random) UUID.
func NewUUIDV4() UUID {
	return UUID(uuid.New())
}

// NewUUID returns a Version 4 UUID. In most cases this should be used.
func NewUUID() UUID {
	return NewUUIDV4()
}

// String returns the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
func (id UUID) String() string {
	return uuid.UUID(id).String()
}

// ParseUUID decodes any of the standard UUID string forms into a UUID.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	return UUID(u), err
}

// IsZero reports whether id is the empty UUID.
func (id UUID) IsZero() bool {
	return bytes.Equal(id[:], NilUUID[:])
}

// Equal reports whether two UUIDs hold the same bytes.
func (id UUID) Equal(b UUID) bool {
	return bytes.Equal(id[:], b[:])
}
