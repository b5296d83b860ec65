// Package unionfind provides a disjoint-set (union-find) structure over
// string elements, with path compression and union by rank.
//
// What & Why
//
//   - A UnionFind tracks a partition of elements into disjoint sets. Two
//     operations dominate: Find (which set does x belong to?) and Union
//     (merge the sets of x and y). With path compression on Find and
//     union by rank on Union, both run in amortized near-constant time —
//     O(α(n)), α being the inverse Ackermann function.
//
//   - Kruskal's MST construction is the canonical consumer: it unions edge
//     endpoints and accepts exactly the edges whose endpoints were still in
//     different sets. The structure is equally useful for connectivity
//     queries, clustering, and cycle detection.
//
// Usage
//
//	uf := unionfind.New("A", "B", "C")
//	united, _ := uf.Union("A", "B") // true: A and B were separate
//	united, _ = uf.Union("B", "A")  // false: already one set
//	ok, _ := uf.Connected("A", "B") // true
//
// Elements must be registered (via New or Add) before Find/Union/Connected;
// touching an unknown element yields ErrUnknownElement. A UnionFind is
// created per run, mutated freely, and discarded — it is not safe for
// concurrent use.
package unionfind
