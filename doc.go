// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a fixed-capacity, bounded in-memory queue
// built on a single contiguous ring buffer, exposed as two layered
// abstractions:
//
//   - RingStorage: a single-producer/single-consumer ring with trivial
//     Enqueue/Dequeue. It defines the N+1-slot storage and index model
//     that SyncQueue extends.
//   - SyncQueue: a multi-producer/multi-consumer queue over the same
//     storage model, synchronized with four atomic indices and
//     extended with a batch Transaction protocol.
//
// # Quick Start
//
//	ring := NewRingStorage[Event](1024)   // SPSC, one goroutine each side
//	q := NewSyncQueue[*Request](4096)     // MPMC, any number of goroutines
//
// # Basic Usage
//
// SyncQueue's single-item operations are non-blocking and return
// [ErrWouldBlock] when they cannot proceed:
//
//	q := NewSyncQueue[int](1024)
//
//	value := 42
//	if err := q.Enqueue(&value); IsWouldBlock(err) {
//	    // queue is full — back off and retry
//	}
//
//	elem, err := q.Dequeue()
//	if IsWouldBlock(err) {
//	    // queue is empty — back off and retry
//	}
//
// # Batch Transactions
//
// The Transaction protocol reserves a contiguous range of slots, then
// copies payload into or out of it outside any critical section, then
// publishes the reservation:
//
//	tr := NewIn[int](Hard)           // direction In, strictness Hard
//	if m := tr.Prepare(q, 8); m > 0 {
//	    tr.Execute(batch[:m])
//	    for !tr.Commit() {
//	        backoff.Wait()          // retry: an earlier same-side reservation hasn't committed yet
//	    }
//	}
//
// Direction is [In] (producer-side) or [Out] (consumer-side).
// Strictness is [Hard] (Prepare succeeds only for the full requested
// size, or reserves nothing) or [Soft] (Prepare accepts any positive
// partial amount):
//
//	tr := NewOut[int](Soft)
//	total := 0
//	for total < want {
//	    m := tr.Prepare(q, want-total)
//	    for m == 0 {
//	        backoff.Wait()
//	        m = tr.Prepare(q, want-total)
//	    }
//	    tr.Execute(buf[total : total+m])
//	    total += m
//	    for !tr.Commit() {
//	        backoff.Wait()
//	    }
//	    tr = NewOut[int](Soft)
//	}
//
// Commit retires reservations in issuance order per side: it returns
// false (without spinning) whenever an earlier same-side reservation
// on the same queue hasn't committed yet. This is what keeps FIFO
// order intact under contention — callers retry Commit, typically with
// a yielded spin; any blocking wait is the caller's responsibility, not
// the library's.
//
// # Error Handling
//
// Only the single-item sugar speaks in terms of a Go error:
// [ErrWouldBlock], sourced from [code.hybscloud.com/iox] for ecosystem
// consistency:
//
//	IsWouldBlock(err)  // true if the queue was full/empty
//	IsSemantic(err)    // true if err is a control flow signal
//	IsNonFailure(err)  // true for nil or ErrWouldBlock
//
// The Transaction protocol never returns an error: capacity outcomes
// are the literal int returned by Prepare (0 means nothing was
// reserved), and commit-ordering outcomes are the bool returned by
// Commit.
//
// # Cancellation
//
// There is no in-library cancellation. A Transaction that successfully
// Prepares but is never Committed permanently stalls every later
// commit on that side of that queue. This is a programmer error the
// library does not protect against — see [Transaction].
//
// # Thread Safety
//
//   - RingStorage: exactly one producer goroutine calling Enqueue, and
//     exactly one consumer goroutine calling Dequeue. Violating this
//     causes data corruption.
//   - SyncQueue: any number of producer and consumer goroutines may
//     call Enqueue/Dequeue/Prepare/Execute/Commit concurrently, subject
//     to each Transaction being owned and driven by a single goroutine.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channel, WaitGroup) but cannot observe happens-before relationships
// established purely through acquire/release orderings on separate
// atomic variables. SyncQueue's reservation indices establish such an
// ordering to protect the non-atomic buffer slots during Execute, so
// some concurrent tests are excluded from race builds via
// [RaceEnabled] (see the package's //go:build !race test files).
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for the sugar layer's
// semantic errors, [code.hybscloud.com/atomix] for atomics with
// explicit memory ordering, and [code.hybscloud.com/spin] for CPU
// pause instructions in CAS retry loops.
package ring
