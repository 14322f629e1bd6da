// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// RingStorage is a single-producer single-consumer bounded ring buffer.
//
// It holds N+1 slots for a declared capacity N: the extra slot
// disambiguates full (next(tail) == head) from empty (head == tail)
// without a separate occupancy count. RingStorage has no concurrency
// guarantees of its own — Enqueue must only ever be called from the
// producer goroutine, Dequeue only from the consumer goroutine — it
// exists to define the storage and index model that [SyncQueue]
// extends with atomic, multi-goroutine-safe reservations.
type RingStorage[T any] struct {
	buffer []T
	head   uint64
	tail   uint64
	size   uint64 // N+1
}

// NewRingStorage creates a RingStorage with the given capacity N.
// Panics if capacity < 1.
func NewRingStorage[T any](capacity int) *RingStorage[T] {
	if capacity < 1 {
		panic("ring: capacity must be >= 1")
	}
	size := uint64(capacity) + 1
	return &RingStorage[T]{
		buffer: make([]T, size),
		size:   size,
	}
}

// Enqueue adds an element to the queue. Returns false if the queue is
// full, leaving the queue unchanged.
func (q *RingStorage[T]) Enqueue(x T) bool {
	nextTail := next(q.tail, q.size)
	if nextTail == q.head {
		return false
	}
	q.buffer[q.tail] = x
	q.tail = nextTail
	return true
}

// Dequeue removes the oldest element into *out. Returns false if the
// queue is empty, leaving *out untouched.
func (q *RingStorage[T]) Dequeue(out *T) bool {
	if q.head == q.tail {
		return false
	}
	*out = q.buffer[q.head]
	var zero T
	q.buffer[q.head] = zero
	q.head = next(q.head, q.size)
	return true
}

// Size reports the number of elements currently stored.
func (q *RingStorage[T]) Size() int {
	return int((q.tail + q.size - q.head) % q.size)
}

// Cap returns the declared capacity N (not the N+1 physical slot count).
func (q *RingStorage[T]) Cap() int {
	return int(q.size - 1)
}

// Front returns the oldest element. Callers must ensure the queue is
// non-empty first (via Size); behavior on an empty queue is undefined,
// matching the source this package is derived from.
func (q *RingStorage[T]) Front() T {
	return q.buffer[q.head]
}

// Back returns the newest element. Callers must ensure the queue is
// non-empty first; behavior on an empty queue is undefined.
func (q *RingStorage[T]) Back() T {
	return q.buffer[(q.tail+q.size-1)%q.size]
}

// next advances an index by one slot, wrapping modulo size.
func next(i, size uint64) uint64 {
	i++
	if i == size {
		return 0
	}
	return i
}
