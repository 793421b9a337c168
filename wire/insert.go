// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package wire

import "github.com/blep/mongo-python-driver/bson"

// BuildInsert assembles an OP_INSERT message for one or more documents.
// docs must contain at least one document. checkKeys is forwarded to the
// BSON encoder for each document. When safe is true, a getLastError
// piggyback message sharing the same requestID is appended after the
// insert message; lastErrorArgs supplies its extra command options.
//
// It returns the generated requestID, the assembled bytes, and maxSize,
// the size in bytes of the largest single document written — useful for
// validating against a server's maximum BSON document size.
func BuildInsert(collection string, docs []*bson.Document, checkKeys, safe bool, lastErrorArgs *bson.Document) (requestID int32, out []byte, maxSize int, err error) {
	if len(docs) == 0 {
		return 0, nil, 0, &bson.InvalidOperationError{Reason: "cannot do an empty bulk insert"}
	}

	requestID = NextRequestID()
	buf := appendHeader(nil, requestID, OpInsert)
	buf = appendi32(buf, 0) // flags, reserved
	buf = appendCString(buf, collection)

	for _, doc := range docs {
		before := len(buf)
		encoded, err := bson.EncodeDocument(doc, checkKeys)
		if err != nil {
			return 0, nil, 0, err
		}
		buf = append(buf, encoded...)
		if n := len(buf) - before; n > maxSize {
			maxSize = n
		}
	}

	patchLength(buf, 0)

	if safe {
		buf, err = appendSafeMode(buf, requestID, lastErrorArgs)
		if err != nil {
			return 0, nil, 0, err
		}
	}

	return requestID, buf, maxSize, nil
}
