package wire

// BuildGetMore assembles an OP_GET_MORE message. It carries no BSON
// payload, only a collection name, a result-batch limit, and a cursor
// id.
func BuildGetMore(collection string, numToReturn int32, cursorID int64) (requestID int32, out []byte) {
	requestID = NextRequestID()
	buf := appendHeader(nil, requestID, OpGetMore)
	buf = appendi32(buf, 0) // reserved
	buf = appendCString(buf, collection)
	buf = appendi32(buf, numToReturn)
	buf = appendu64(buf, uint64(cursorID))
	patchLength(buf, 0)
	return requestID, buf
}
