package wire

import "github.com/blep/mongo-python-driver/bson"

// BuildUpdate assembles an OP_UPDATE message. upsert and multi map to
// bits 0 and 1 of the options field, respectively.
func BuildUpdate(collection string, upsert, multi bool, selector, update *bson.Document, safe bool, lastErrorArgs *bson.Document) (requestID int32, out []byte, maxSize int, err error) {
	var options int32
	if upsert {
		options |= 1
	}
	if multi {
		options |= 2
	}

	requestID = NextRequestID()
	buf := appendHeader(nil, requestID, OpUpdate)
	buf = appendi32(buf, 0) // reserved
	buf = appendCString(buf, collection)
	buf = appendi32(buf, options)

	before := len(buf)
	selectorBytes, err := bson.EncodeDocument(selector, false)
	if err != nil {
		return 0, nil, 0, err
	}
	buf = append(buf, selectorBytes...)
	maxSize = len(buf) - before

	before = len(buf)
	updateBytes, err := bson.EncodeDocument(update, false)
	if err != nil {
		return 0, nil, 0, err
	}
	buf = append(buf, updateBytes...)
	if n := len(buf) - before; n > maxSize {
		maxSize = n
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
