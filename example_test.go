// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"fmt"

	"github.com/longlodw/ring"
)

// ExampleRingStorage demonstrates the single-producer/single-consumer
// ring as a pipeline stage buffer.
func ExampleRingStorage() {
	q := ring.NewRingStorage[int](8)

	for i := 1; i <= 5; i++ {
		q.Enqueue(i * 10)
	}

	for q.Size() > 0 {
		var v int
		q.Dequeue(&v)
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleSyncQueue demonstrates the single-item sugar.
func ExampleSyncQueue() {
	q := ring.NewSyncQueue[string](4)

	greeting := "hello"
	if err := q.Enqueue(&greeting); err != nil {
		fmt.Println("enqueue failed:", err)
	}

	v, err := q.Dequeue()
	if err != nil {
		fmt.Println("dequeue failed:", err)
	}
	fmt.Println(v)

	// Output:
	// hello
}

// ExampleTransaction demonstrates a HARD batch transfer: reserve,
// copy, and publish a contiguous range in one shot.
func ExampleTransaction() {
	q := ring.NewSyncQueue[int](8)

	in := ring.NewIn[int](ring.Hard)
	if m := in.Prepare(q, 4); m == 4 {
		in.Execute([]int{1, 2, 3, 4})
		in.Commit()
	}

	out := ring.NewOut[int](ring.Hard)
	buf := make([]int, 4)
	if m := out.Prepare(q, 4); m == 4 {
		out.Execute(buf)
		out.Commit()
	}

	fmt.Println(buf)
	// Output:
	// [1 2 3 4]
}

// ExampleTransaction_soft demonstrates a SOFT batch transfer accepting
// a partial reservation when the full request isn't available.
func ExampleTransaction_soft() {
	q := ring.NewSyncQueue[int](3)

	in := ring.NewIn[int](ring.Hard)
	in.Prepare(q, 3)
	in.Execute([]int{1, 2, 3})
	in.Commit()

	soft := ring.NewOut[int](ring.Soft)
	m := soft.Prepare(q, 5) // only 3 available
	buf := make([]int, m)
	soft.Execute(buf)
	soft.Commit()

	fmt.Println(m, buf)
	// Output:
	// 3 [1 2 3]
}
