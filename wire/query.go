package wire

import "github.com/blep/mongo-python-driver/bson"

// BuildQuery assembles an OP_QUERY message. flags is the caller-supplied
// QueryFlag bitmask; fieldSelector may be nil to omit the optional
// projection document.
func BuildQuery(flags QueryFlag, collection string, numToSkip, numToReturn int32, query *bson.Document, fieldSelector *bson.Document) (requestID int32, out []byte, maxSize int, err error) {
	requestID = NextRequestID()
	buf := appendHeader(nil, requestID, OpQuery)
	buf = appendi32(buf, int32(flags))
	buf = appendCString(buf, collection)
	buf = appendi32(buf, numToSkip)
	buf = appendi32(buf, numToReturn)

	before := len(buf)
	queryBytes, err := bson.EncodeDocument(query, false)
	if err != nil {
		return 0, nil, 0, err
	}
	buf = append(buf, queryBytes...)
	maxSize = len(buf) - before

	if fieldSelector != nil {
		before = len(buf)
		selBytes, err := bson.EncodeDocument(fieldSelector, false)
		if err != nil {
			return 0, nil, 0, err
		}
		buf = append(buf, selBytes...)
		if n := len(buf) - before; n > maxSize {
			maxSize = n
		}
	}

	patchLength(buf, 0)

	return requestID, buf, maxSize, nil
}
