package wire

import "github.com/blep/mongo-python-driver/bson"

// appendSafeMode appends a getLastError "safe mode" piggyback message to
// buf, sharing requestID with the primary message that precedes it. The
// piggyback message is itself a complete OP_QUERY message against
// "admin.$cmd" whose body starts with {"getlasterror": 1} followed by
// the caller-supplied extra options.
func appendSafeMode(buf []byte, requestID int32, lastErrorArgs *bson.Document) ([]byte, error) {
	start := len(buf)

	buf = appendHeader(buf, requestID, OpQuery)
	buf = appendi32(buf, 0) // query flags
	buf = appendCString(buf, "admin.$cmd")
	buf = appendi32(buf, 0)  // numToSkip
	buf = appendi32(buf, -1) // numToReturn

	cmd := bson.NewDocument(bson.Element{Key: "getlasterror", Value: int32(1)})
	if lastErrorArgs != nil {
		for _, e := range lastErrorArgs.Elements() {
			cmd.Append(e.Key, e.Value)
		}
	}
	cmdBytes, err := bson.EncodeDocument(cmd, false)
	if err != nil {
		return nil, err
	}
	buf = append(buf, cmdBytes...)

	patchLength(buf, start)
	return buf, nil
}
