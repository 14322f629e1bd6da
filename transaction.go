// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Direction tags which side of the queue a Transaction reserves on.
type Direction int

const (
	// In is the producer-side direction: Prepare reserves writable
	// slots, Execute copies into them, Commit publishes them for OUT.
	In Direction = iota
	// Out is the consumer-side direction: Prepare reserves committed
	// (readable) slots, Execute copies out of them, Commit publishes
	// the slots back for IN to overwrite.
	Out
)

// String returns "IN" or "OUT".
func (d Direction) String() string {
	if d == In {
		return "IN"
	}
	return "OUT"
}

// Strictness tags how a Transaction's Prepare behaves when the full
// requested amount isn't available.
type Strictness int

const (
	// Hard Prepare succeeds only if the entire requested size is
	// available; otherwise it reserves nothing.
	Hard Strictness = iota
	// Soft Prepare reserves any positive partial amount when the full
	// requested size isn't available.
	Soft
)

// String returns "HARD" or "SOFT".
func (s Strictness) String() string {
	if s == Hard {
		return "HARD"
	}
	return "SOFT"
}

// txState is a Transaction's position in its Fresh → Prepared →
// Executed → Committed lifecycle (spec §3, §4.3.4).
type txState int

const (
	txFresh txState = iota
	txPrepared
	txExecuted
	txCommitted
)

// Transaction is a batch reservation against one [SyncQueue]. It is
// owned by a single goroutine and is not itself safe for concurrent
// use. A Transaction is created Fresh (unbound to any queue), moves to
// Prepared once Prepare claims m ≤ k slots, to Executed once Execute
// copies the payload, and to Committed once Commit publishes the
// reservation.
//
// A Transaction that is abandoned after a successful Prepare (without
// ever calling Commit) permanently stalls every later commit on the
// same side of the same queue: there is no in-library cancellation
// (spec §5, §7). Callers must commit every transaction whose Prepare
// returned m > 0.
type Transaction[T any] struct {
	dir        Direction
	strictness Strictness
	queue      *SyncQueue[T]
	start      uint64
	length     int
	state      txState
}

// NewTransaction creates a Fresh transaction for the given direction
// and strictness. It is not bound to a queue until Prepare succeeds.
func NewTransaction[T any](dir Direction, strictness Strictness) *Transaction[T] {
	return &Transaction[T]{dir: dir, strictness: strictness}
}

// NewIn is sugar for NewTransaction[T](In, strictness).
func NewIn[T any](strictness Strictness) *Transaction[T] {
	return NewTransaction[T](In, strictness)
}

// NewOut is sugar for NewTransaction[T](Out, strictness).
func NewOut[T any](strictness Strictness) *Transaction[T] {
	return NewTransaction[T](Out, strictness)
}

// Dir reports the transaction's direction.
func (tr *Transaction[T]) Dir() Direction { return tr.dir }

// Strictness reports the transaction's strictness.
func (tr *Transaction[T]) Strictness() Strictness { return tr.strictness }

// Reserved reports the number of slots successfully reserved by
// Prepare (0 before a successful Prepare).
func (tr *Transaction[T]) Reserved() int { return tr.length }

// Prepare reserves up to k contiguous slots on q and transitions the
// transaction to Prepared. Panics if k < 1 or if the transaction is
// not Fresh.
//
// The amount actually reserved, m, follows the strictness table of
// spec §4.3.1: HARD reserves k or nothing; SOFT reserves k, a smaller
// positive amount, or nothing. If m == 0 the transaction stays Fresh
// and Prepare returns 0 — callers retry Prepare themselves; unlike
// Enqueue/Dequeue, Prepare does not spin internally, since a caller
// may want to back off, change k, or give up.
func (tr *Transaction[T]) Prepare(q *SyncQueue[T], k int) int {
	if k < 1 {
		panic("ring: prepare requires k >= 1")
	}
	if tr.state != txFresh {
		panic("ring: prepare called on a transaction that is not Fresh")
	}

	var start uint64
	var m int
	soft := tr.strictness == Soft
	if tr.dir == In {
		start, m = q.reserveIn(k, soft)
	} else {
		start, m = q.reserveOut(k, soft)
	}
	if m == 0 {
		return 0
	}

	tr.queue = q
	tr.start = start
	tr.length = m
	tr.state = txPrepared
	return m
}

// Execute copies the payload for the reserved range: for an IN
// transaction it stores buf[0:m] into the queue, for an OUT
// transaction it loads the queue's m reserved slots into buf[0:m] and
// clears them. m is the length returned by Prepare. No atomic indices
// are touched; Execute only moves data already safely owned by this
// transaction's reservation.
//
// buf must have length >= the reserved amount. Execute transitions the
// transaction to Executed and returns the number of elements touched
// (equal to the reserved amount). Panics if the transaction is not
// Prepared or if buf is too short.
func (tr *Transaction[T]) Execute(buf []T) int {
	if tr.state != txPrepared {
		panic("ring: execute called without a successful prepare")
	}
	if len(buf) < tr.length {
		panic("ring: execute buffer shorter than reserved length")
	}

	q := tr.queue
	if tr.dir == In {
		for i := 0; i < tr.length; i++ {
			q.writeAt(tr.start, i, buf[i])
		}
	} else {
		for i := 0; i < tr.length; i++ {
			buf[i] = q.readAt(tr.start, i)
		}
	}
	tr.state = txExecuted
	return tr.length
}

// Commit publishes the transaction's reservation, making it visible to
// the opposite side. Commit retires reservations in issuance order: it
// only succeeds if every earlier same-side reservation on this queue
// has already committed. On failure it returns false immediately —
// Commit does not spin — the caller is expected to retry (optionally
// with a backoff):
//
//	for !tr.Commit() {
//	    backoff.Wait()
//	}
//
// Commit is also valid (and a no-op returning true) on a Fresh
// transaction whose Prepare returned 0, and is idempotent once
// Committed. Panics if called on a Prepared transaction that has not
// yet been Executed.
func (tr *Transaction[T]) Commit() bool {
	switch tr.state {
	case txFresh:
		return true
	case txCommitted:
		return true
	case txExecuted:
		q := tr.queue
		var ok bool
		if tr.dir == In {
			ok = q.commitIn(tr.start, tr.length)
		} else {
			ok = q.commitOut(tr.start, tr.length)
		}
		if ok {
			tr.state = txCommitted
		}
		return ok
	default:
		panic("ring: commit called before execute")
	}
}
