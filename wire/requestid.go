package wire

import "sync/atomic"

var globalRequestID int32

// CurrentRequestID returns the most recently issued request ID.
func CurrentRequestID() int32 { return atomic.LoadInt32(&globalRequestID) }

// NextRequestID returns a fresh, process-wide unique request ID. The
// legacy wire protocol only requires requestIDs to be distinguishable by
// the client that issued them, so a monotonic counter serves as well as
// the original random source.
func NextRequestID() int32 { return atomic.AddInt32(&globalRequestID, 1) }
