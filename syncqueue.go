// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SyncQueue is a multi-producer multi-consumer bounded queue built over
// the same N+1-slot ring model as [RingStorage].
//
// Unlike RingStorage, SyncQueue serializes access through four atomic
// indices rather than requiring single-writer/single-reader discipline:
//
//   - headCommitted: oldest committed (readable) element, advanced by
//     OUT commits.
//   - tailCommitted: one past the newest committed element, advanced
//     by IN commits.
//   - headReserved: leading edge of outstanding OUT reservations,
//     advanced by OUT prepares.
//   - tailReserved: leading edge of outstanding IN reservations,
//     advanced by IN prepares.
//
// SyncQueue serializes reservations, not data copies: the CAS that
// claims a range of slots is the only critical section. The payload
// copy (Transaction.Execute) runs outside it. Enqueue and Dequeue are
// sugar over a length-1 HARD transaction; the batch protocol is
// exposed via [Transaction].
type SyncQueue[T any] struct {
	_             pad
	headCommitted atomix.Uint64
	_             pad
	tailCommitted atomix.Uint64
	_             pad
	headReserved atomix.Uint64
	_            pad
	tailReserved atomix.Uint64
	_            pad
	buffer       []T
	size         uint64 // N+1 physical slots
	capacity     uint64 // N
}

// NewSyncQueue creates a SyncQueue with the given capacity N.
// Panics if capacity < 1.
func NewSyncQueue[T any](capacity int) *SyncQueue[T] {
	if capacity < 1 {
		panic("ring: capacity must be >= 1")
	}
	return &SyncQueue[T]{
		buffer:   make([]T, uint64(capacity)+1),
		size:     uint64(capacity) + 1,
		capacity: uint64(capacity),
	}
}

// Cap returns the declared capacity N.
func (q *SyncQueue[T]) Cap() int {
	return int(q.capacity)
}

// Size reports the number of committed, unread elements.
func (q *SyncQueue[T]) Size() int {
	tc := q.tailCommitted.LoadAcquire()
	hc := q.headCommitted.LoadAcquire()
	return int((tc + q.size - hc) % q.size)
}

// Enqueue adds a single element to the queue. It is sugar over a
// length-1 HARD IN transaction: it reserves a slot, writes elem, and
// spins internally on commit ordering until the slot is published.
// Returns ErrWouldBlock if the queue was full at the moment of
// reservation.
func (q *SyncQueue[T]) Enqueue(elem *T) error {
	tr := NewTransaction[T](In, Hard)
	if tr.Prepare(q, 1) == 0 {
		return ErrWouldBlock
	}
	one := [1]T{*elem}
	tr.Execute(one[:])
	sw := spin.Wait{}
	for !tr.Commit() {
		sw.Once()
	}
	return nil
}

// Dequeue removes and returns a single element. It is sugar over a
// length-1 HARD OUT transaction. Returns (zero-value, ErrWouldBlock)
// if the queue was empty at the moment of reservation.
func (q *SyncQueue[T]) Dequeue() (T, error) {
	tr := NewTransaction[T](Out, Hard)
	if tr.Prepare(q, 1) == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	var one [1]T
	tr.Execute(one[:])
	sw := spin.Wait{}
	for !tr.Commit() {
		sw.Once()
	}
	return one[0], nil
}

// reserveIn reserves up to k contiguous slots for an IN (producer-side)
// transaction: writable capacity is cap minus the slots from
// headCommitted up to tailReserved, so slots claimed by an OUT
// transaction stay unavailable to IN until that OUT commits. Retries
// the snapshot+CAS loop on contention.
func (q *SyncQueue[T]) reserveIn(k int, soft bool) (start uint64, m int) {
	sw := spin.Wait{}
	for {
		tr := q.tailReserved.LoadAcquire()
		hc := q.headCommitted.LoadAcquire()
		outstanding := (tr + q.size - hc) % q.size
		avail := int(q.capacity - outstanding)
		m = reserveAmount(avail, k, soft)
		if m == 0 {
			return tr, 0
		}
		newTr := (tr + uint64(m)) % q.size
		if q.tailReserved.CompareAndSwapAcqRel(tr, newTr) {
			return tr, m
		}
		sw.Once()
	}
}

// reserveOut reserves up to k contiguous slots for an OUT
// (consumer-side) transaction: readable capacity is the gap between
// already-published data and slots already claimed by other OUT
// transactions.
func (q *SyncQueue[T]) reserveOut(k int, soft bool) (start uint64, m int) {
	sw := spin.Wait{}
	for {
		hr := q.headReserved.LoadAcquire()
		tc := q.tailCommitted.LoadAcquire()
		avail := int((tc + q.size - hr) % q.size)
		m = reserveAmount(avail, k, soft)
		if m == 0 {
			return hr, 0
		}
		newHr := (hr + uint64(m)) % q.size
		if q.headReserved.CompareAndSwapAcqRel(hr, newHr) {
			return hr, m
		}
		sw.Once()
	}
}

// reserveAmount applies the HARD/SOFT decision table of spec §4.3.1 /
// §4.4 to an available count.
func reserveAmount(avail, k int, soft bool) int {
	switch {
	case avail <= 0:
		return 0
	case avail >= k:
		return k
	case soft:
		return avail
	default:
		return 0
	}
}

// commitIn retires an IN reservation in issuance order: it only
// succeeds if tailCommitted is still exactly start, i.e. every earlier
// IN reservation on this queue has already committed.
func (q *SyncQueue[T]) commitIn(start uint64, m int) bool {
	if m == 0 {
		return true
	}
	tc := q.tailCommitted.LoadAcquire()
	if tc != start {
		return false
	}
	return q.tailCommitted.CompareAndSwapAcqRel(tc, (start+uint64(m))%q.size)
}

// commitOut retires an OUT reservation in issuance order, symmetric to
// commitIn.
func (q *SyncQueue[T]) commitOut(start uint64, m int) bool {
	if m == 0 {
		return true
	}
	hc := q.headCommitted.LoadAcquire()
	if hc != start {
		return false
	}
	return q.headCommitted.CompareAndSwapAcqRel(hc, (start+uint64(m))%q.size)
}

// writeAt stores v at reservation-relative offset i.
func (q *SyncQueue[T]) writeAt(start uint64, i int, v T) {
	q.buffer[(start+uint64(i))%q.size] = v
}

// readAt loads the value at reservation-relative offset i and clears
// the slot so a retained reference does not pin memory past the read.
func (q *SyncQueue[T]) readAt(start uint64, i int) T {
	idx := (start + uint64(i)) % q.size
	v := q.buffer[idx]
	var zero T
	q.buffer[idx] = zero
	return v
}
