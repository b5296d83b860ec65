// Package pqueue provides a generic min-priority queue of (key, payload)
// pairs, shared by the Prim, Dijkstra and Huffman engines.
//
// What & Why
//
//   - Each consumer orders a different payload — frontier edges for Prim,
//     (distance, vertex) pairs for Dijkstra, partial trees for Huffman —
//     by a single float64 key. Instead of each package implementing
//     heap.Interface over its own payload type, pqueue takes a
//     key-extraction function and does the ordering once:
//
//     pq := pqueue.New(func(e edge) float64 { return e.weight })
//
//   - Ties are stable: payloads with equal keys pop in insertion order,
//     tracked by a monotonic sequence number. Equal-weight choices are
//     therefore deterministic across runs, which keeps MST edge lists and
//     Huffman tree shapes reproducible.
//
// Lazy deletion
//
//	The queue has no decrease-key. Consumers that refine priorities (Prim,
//	Dijkstra) push a fresh entry and discard stale ones on Pop by checking
//	their own visited set. Len therefore counts live and stale entries
//	alike; no consumer in this module depends on Len reflecting live
//	entries exactly.
//
// Complexity: Push and Pop are O(log n); Peek and Len are O(1).
// The zero value is not usable; construct with New.
// Not safe for concurrent use — each algorithm invocation owns its queue.
package pqueue
