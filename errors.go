// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates a single-item operation cannot proceed
// immediately: the queue is full (Enqueue) or empty (Dequeue).
//
// ErrWouldBlock is a control flow signal, not a failure. Callers are
// expected to retry, typically with a yielded spin:
//
//	backoff := iox.Backoff{}
//	for {
//	    if err := q.Enqueue(&item); err == nil {
//	        break
//	    } else if ring.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    } else {
//	        return err
//	    }
//	}
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
// The batch Transaction protocol (Prepare/Execute/Commit) does not use
// this error: it reports capacity and commit-ordering outcomes through
// its literal int/bool returns, per the protocol's own contract.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates an operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than
// a failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition
// (nil or ErrWouldBlock). Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
