// Package core defines the central Graph and Edge types used by every
// algorithm in algolab, and provides thread-safe primitives for building
// and querying graphs.
//
// What & Why
//
//   - A core.Graph is an undirected, weighted, simple graph:
//     at most one edge per unordered vertex pair, no self-loops,
//     and non-negative real weights (float64).
//
//   - The restrictions are deliberate. Every engine in this module
//     (Prim, Kruskal, Dijkstra) operates over exactly this graph class:
//     Dijkstra's correctness depends on non-negative weights, and spanning
//     trees are only meaningful without parallel edges. Rather than letting
//     each algorithm re-validate, the graph refuses to represent invalid
//     structure in the first place.
//
// Determinism
//
//	Vertices() and Edges() return their elements in sorted ID order, and
//	Neighbors(id) sorts by the opposite endpoint. Algorithms that iterate
//	these snapshots therefore behave identically run to run, which makes
//	equal-weight tie-breaking reproducible.
//
// Concurrency
//
//	All accessors take an internal sync.RWMutex, so concurrent readers are
//	safe. The intended discipline is: build the graph once, then treat it
//	as immutable while algorithms run. Algorithms never mutate the graph.
//
// Errors (sentinel):
//
//	ErrEmptyVertexID   – vertex ID is the empty string.
//	ErrVertexNotFound  – requested vertex does not exist.
//	ErrSelfLoop        – edge endpoints are the same vertex.
//	ErrDuplicateEdge   – the unordered pair already has an edge.
//	ErrNegativeWeight  – edge weight is negative.
//
// Complexity: AddVertex/AddEdge/HasVertex/HasEdge/Weight are O(1) amortized;
// Vertices/Edges/Neighbors are O(n log n) in the size of their result.
package core
