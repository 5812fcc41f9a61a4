package indicator

import "fmt"

// circularQueue is a fixed capacity buffer addressed by logical index.
// Logical index 0 is the oldest slot; shl drops it and appends an empty slot
// at the end.
type circularQueue[T any] struct {
	head int
	data []T
}

func newCircularQueue[T any](capacity int) *circularQueue[T] {
	return &circularQueue[T]{data: make([]T, capacity)}
}

func (q *circularQueue[T]) Len() int {
	return len(q.data)
}

func (q *circularQueue[T]) physical(i int) int {
	if i < 0 || i >= len(q.data) {
		panic(fmt.Errorf("circular queue index %d out of range [0, %d)", i, len(q.data)))
	}
	return (q.head + i) % len(q.data)
}

// At returns a pointer to the slot at logical index i.
func (q *circularQueue[T]) At(i int) *T {
	return &q.data[q.physical(i)]
}

// shl resets the oldest slot to the zero value and moves the head past it.
func (q *circularQueue[T]) shl() {
	var zero T
	q.data[q.head] = zero
	q.head = (q.head + 1) % len(q.data)
}

func (q *circularQueue[T]) reset() {
	clear(q.data)
	q.head = 0
}
