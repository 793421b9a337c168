package bson

import "time"

// DateTime wraps a time.Time to mark it for encoding as a BSON UTC
// datetime (milliseconds since the Unix epoch) rather than, say, an
// embedded document. Sub-millisecond precision is lost on encode, since
// the wire format itself only carries millisecond resolution.
type DateTime time.Time

// Now returns the current time as a DateTime.
func Now() DateTime {
	return DateTime(time.Now())
}

// Time returns dt as a time.Time in UTC.
func (dt DateTime) Time() time.Time {
	return time.Time(dt).UTC()
}

// dateTimeToMillis converts dt to the signed 64-bit millisecond-since-
// epoch representation used on the wire.
func dateTimeToMillis(dt DateTime) int64 {
	return time.Time(dt).UnixMilli()
}

// millisToDateTime converts the wire representation back into a
// DateTime, always normalized to UTC: BSON carries no zone information,
// only an absolute instant, and unlike Python, Go's time.Time has no
// naive/aware distinction for DecodeOptions.TZAware to select between.
func millisToDateTime(ms int64) DateTime {
	return DateTime(time.UnixMilli(ms).UTC())
}
