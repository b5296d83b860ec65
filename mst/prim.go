// Package mst provides an implementation of Prim's Minimum Spanning Tree
// algorithm. It grows the tree from a root vertex using a lazy-deletion
// min-priority frontier.
package mst

import (
	"github.com/maldonov/algolab/core"
	"github.com/maldonov/algolab/pqueue"
)

// hop is a frontier candidate: reaching vertex "to" over an edge of the
// given weight from the tree vertex pointed to by "from". A nil "from"
// marks the seed entry for the root, which joins the tree without an edge.
type hop struct {
	weight float64
	to     string
	from   *string
}

// Prim computes a Minimum Spanning Tree of an undirected, weighted graph by
// growing outwards from a root vertex.
//
// Error Conditions:
//   - ErrNilGraph            : if graph is nil.
//   - core.ErrVertexNotFound : if an explicitly requested root does not exist.
//
// Steps:
//  1. Validate graph and resolve the root (WithRoot, else first sorted vertex).
//  2. Seed the frontier with (weight 0, root, no predecessor).
//  3. Repeatedly pop the cheapest frontier hop; discard it if its vertex is
//     already in the tree (stale entry — lazy deletion). Otherwise mark the
//     vertex visited, and if the hop has a predecessor, accept the edge
//     (predecessor, vertex, weight) and accumulate its weight.
//  4. Push (edge weight, neighbor, vertex) for every unvisited neighbor.
//  5. Stop when the frontier is empty or all vertices are visited.
//
// An empty graph yields an empty edge list with total weight 0. On a
// disconnected graph Prim spans only the root's component and returns fewer
// than |V|−1 edges; that is accepted behavior, not an error.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	// 1. Validate the graph pointer before reading anything from it.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}

	// 2. Build options from defaults plus caller overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Retrieve all vertex IDs in sorted order; an empty graph has a
	//    trivial empty spanning tree.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return []core.Edge{}, 0, nil
	}

	// 4. Resolve the root: explicit roots must exist, the default root is
	//    the first vertex in sorted order.
	root := cfg.Root
	if root == "" {
		root = vertices[0]
	} else if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 5. Initialize the visited set, result accumulators, and the frontier
	//    keyed by hop weight. Equal weights pop in insertion order, so the
	//    selection among equal-weight hops is deterministic.
	n := len(vertices)
	visited := make(map[string]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var totalWeight float64

	frontier := pqueue.New(func(h hop) float64 { return h.weight })
	frontier.Push(hop{weight: 0, to: root, from: nil})

	// 6. Main loop: absorb the cheapest reachable vertex until the frontier
	//    drains or every vertex has joined the tree.
	for frontier.Len() > 0 && len(visited) < n {
		h, _ := frontier.Pop()

		// 6a. Lazy deletion: a vertex may have been reached more cheaply
		//     since this entry was pushed.
		if visited[h.to] {
			continue
		}
		visited[h.to] = true

		// 6b. The seed hop carries no predecessor; every later hop records
		//     the tree edge that admitted its vertex.
		if h.from != nil {
			tree = append(tree, core.Edge{From: *h.from, To: h.to, Weight: h.weight})
			totalWeight += h.weight
		}

		// 6c. Offer every unvisited neighbor as a candidate hop.
		neighbors, err := graph.Neighbors(h.to)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range neighbors {
			if !visited[e.To] {
				from := e.From
				frontier.Push(hop{weight: e.Weight, to: e.To, from: &from})
			}
		}
	}

	// 7. Return the tree in acceptance order; fewer than n-1 edges means
	//    the graph was disconnected and only the root's component is spanned.
	return tree, totalWeight, nil
}
