// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"testing"

	"github.com/longlodw/ring"
)

// TestRingStorageBasics is scenario S1 from the spec: N=2, fill, block
// on overflow, drain in FIFO order, block on underflow.
func TestRingStorageBasics(t *testing.T) {
	q := ring.NewRingStorage[int](2)

	if q.Cap() != 2 {
		t.Fatalf("Cap: got %d, want 2", q.Cap())
	}
	if q.Size() != 0 {
		t.Fatalf("Size: got %d, want 0", q.Size())
	}

	if !q.Enqueue(1) {
		t.Fatal("Enqueue(1) should succeed")
	}
	if got := q.Front(); got != 1 {
		t.Fatalf("Front: got %d, want 1", got)
	}
	if got := q.Back(); got != 1 {
		t.Fatalf("Back: got %d, want 1", got)
	}
	if q.Size() != 1 {
		t.Fatalf("Size: got %d, want 1", q.Size())
	}

	if !q.Enqueue(2) {
		t.Fatal("Enqueue(2) should succeed")
	}
	if q.Size() != 2 {
		t.Fatalf("Size: got %d, want 2", q.Size())
	}
	if got := q.Back(); got != 2 {
		t.Fatalf("Back: got %d, want 2", got)
	}

	if q.Enqueue(3) {
		t.Fatal("Enqueue(3) on full queue should fail")
	}
	if q.Size() != 2 {
		t.Fatalf("Size after rejected enqueue: got %d, want 2", q.Size())
	}

	var out int
	if !q.Dequeue(&out) || out != 1 {
		t.Fatalf("Dequeue: got %d, want 1", out)
	}
	if !q.Dequeue(&out) || out != 2 {
		t.Fatalf("Dequeue: got %d, want 2", out)
	}
	if q.Dequeue(&out) {
		t.Fatal("Dequeue on empty queue should fail")
	}
}

// TestRingStorageWraparound is scenario S2: continues from S1's final
// state through a wraparound enqueue.
func TestRingStorageWraparound(t *testing.T) {
	q := ring.NewRingStorage[int](2)
	if !q.Enqueue(1) || !q.Enqueue(2) {
		t.Fatal("setup enqueues should succeed")
	}

	var out int
	if !q.Dequeue(&out) || out != 1 {
		t.Fatalf("Dequeue: got %d, want 1", out)
	}

	if !q.Enqueue(3) {
		t.Fatal("Enqueue(3) should succeed after dequeue")
	}
	if got := q.Front(); got != 2 {
		t.Fatalf("Front: got %d, want 2", got)
	}
	if got := q.Back(); got != 3 {
		t.Fatalf("Back: got %d, want 3", got)
	}
	if q.Enqueue(4) {
		t.Fatal("Enqueue(4) on full queue should fail")
	}
}

func TestRingStorageCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for capacity < 1")
		}
	}()
	ring.NewRingStorage[int](0)
}

// TestRingStorageSingleThreadIdentity checks invariant 4: IN then OUT
// of the same length is identity under single-threaded use.
func TestRingStorageSingleThreadIdentity(t *testing.T) {
	q := ring.NewRingStorage[string](5)
	want := []string{"a", "b", "c", "d", "e"}
	for _, v := range want {
		if !q.Enqueue(v) {
			t.Fatalf("Enqueue(%q) should succeed", v)
		}
	}
	for _, v := range want {
		var got string
		if !q.Dequeue(&got) || got != v {
			t.Fatalf("Dequeue: got %q, want %q", got, v)
		}
	}
}
