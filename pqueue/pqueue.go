package pqueue

import "container/heap"

// Min is a minimum-priority queue of payloads of type T, ordered by the
// float64 key extracted at Push time. Equal keys pop in insertion order.
type Min[T any] struct {
	key  func(T) float64
	heap entryHeap[T]
	seq  uint64
}

// New constructs an empty Min queue ordering payloads by key(payload) ascending.
// The key function must be pure: the key is extracted once, on Push.
func New[T any](key func(T) float64) *Min[T] {
	return &Min[T]{key: key}
}

// Len returns the number of entries currently stored, stale ones included.
// Complexity: O(1).
func (q *Min[T]) Len() int { return q.heap.Len() }

// Push inserts item with its extracted key.
// Complexity: O(log n).
func (q *Min[T]) Push(item T) {
	// seq orders equal keys first-in first-out.
	q.seq++
	heap.Push(&q.heap, entry[T]{key: q.key(item), seq: q.seq, item: item})
}

// Pop removes and returns the minimum-key payload.
// The boolean is false when the queue is empty.
// Complexity: O(log n).
func (q *Min[T]) Pop() (T, bool) {
	if q.heap.Len() == 0 {
		var zero T

		return zero, false
	}
	e := heap.Pop(&q.heap).(entry[T])

	return e.item, true
}

// Peek returns the minimum-key payload without removing it.
// The boolean is false when the queue is empty.
// Complexity: O(1).
func (q *Min[T]) Peek() (T, bool) {
	if q.heap.Len() == 0 {
		var zero T

		return zero, false
	}

	return q.heap[0].item, true
}

// entry pairs a payload with its extracted key and insertion sequence.
type entry[T any] struct {
	key  float64
	seq  uint64
	item T
}

// entryHeap implements heap.Interface for entries, ordered by key ascending,
// then by sequence number ascending (FIFO among equal keys).
type entryHeap[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by key, breaking ties by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

// Swap swaps elements at indices i and j.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new entry. Called by heap.Push.
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes and returns the last entry after heap adjustments.
// Called by heap.Pop.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
