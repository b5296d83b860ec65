// Package mst provides two classical algorithms for computing Minimum
// Spanning Trees (and, on disconnected inputs, Minimum Spanning Forests)
// of an undirected, weighted *core.Graph: Prim's algorithm and Kruskal's
// algorithm.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), an MST is a subset
//     T ⊆ E that connects every vertex of a connected graph with minimum
//     total weight and no cycles. For a graph of k connected components,
//     the analogous object is a spanning forest with |V|−k edges.
//
//   - MSTs matter for network design (cheapest backbone covering every
//     site), clustering (cut the heaviest forest edges), and as a
//     subroutine in approximation algorithms.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//
//   - Strategy: stable-sort all edges by weight ascending, then sweep from
//     lightest to heaviest, merging endpoint components through a
//     unionfind.UnionFind and accepting exactly the edges that joined two
//     distinct components. Stop once |V|−1 edges are accepted.
//
//   - Complexity: O(E log E + α(V)·E) time — the sort dominates —
//     and O(V + E) space.
//
//   - Determinism: core.Graph.Edges() returns edges in (From, To) order and
//     the sort is stable, so equal-weight edges are considered in a fixed,
//     reproducible order.
//
//   - Prim(g, opts...) ([]core.Edge, float64, error)
//
//   - Strategy: grow a single tree outward from a root vertex. A min-heap
//     frontier holds candidate hops (weight, vertex, predecessor); each
//     round pops the cheapest hop, discards it if the vertex already joined
//     the tree (lazy deletion), otherwise records the connecting edge and
//     pushes the new vertex's unvisited neighbors.
//
//   - Complexity: O(E log V) time, O(V + E) space.
//
//   - Root selection: WithRoot picks the start vertex; by default Prim
//     starts from the first vertex in sorted ID order.
//
// Disconnected and empty inputs
//
//	Neither algorithm treats disconnection as a failure. Kruskal exhausts
//	the edge list and returns a minimum spanning forest; Prim spans only
//	the root's component. Both signal the situation through edge count
//	alone: a connected graph yields exactly |V|−1 edges, k components
//	yield |V|−k (Kruskal) — fewer edges means the input was not connected.
//	An empty graph yields an empty edge list with total weight 0.
//
// Error Conditions
//
//   - ErrNilGraph            — the graph pointer is nil (both algorithms).
//   - core.ErrVertexNotFound — Prim's root does not exist in the graph.
//
// Both engines return edges in acceptance order together with the sum of
// accepted weights. For any connected input, Prim and Kruskal agree on the
// total weight; the edge sets themselves may differ only when equal-weight
// edges admit several valid MSTs.
package mst
