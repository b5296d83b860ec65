// Package mst provides an implementation of Kruskal's Minimum Spanning Tree
// algorithm, built on the unionfind disjoint-set structure.
package mst

import (
	"sort"

	"github.com/maldonov/algolab/core"
	"github.com/maldonov/algolab/unionfind"
)

// Kruskal computes a Minimum Spanning Tree (or, for disconnected graphs, a
// Minimum Spanning Forest) of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrNilGraph : if graph is nil.
//
// Steps:
//  1. Validate the graph; an empty graph yields an empty result.
//  2. Collect all edges and stable-sort them by ascending weight. The input
//     order from graph.Edges() is (From, To)-sorted, so equal weights are
//     broken deterministically by endpoint IDs.
//  3. Initialize a union-find over all vertices.
//  4. Sweep the sorted edges; accept each edge whose endpoints union into
//     one component (Union returned true), accumulating its weight.
//  5. Stop early once |V|−1 edges are accepted. If the sweep exhausts all
//     edges first, the graph was disconnected and the accepted edges form a
//     minimum spanning forest — accepted behavior, not an error.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V) time, O(V + E) memory.
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate the graph pointer before reading anything from it.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}

	// 2. Retrieve all vertex IDs; an empty graph has a trivial empty forest.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return []core.Edge{}, 0, nil
	}

	// 3. Collect edges and stable-sort by weight. core.Graph is simple, so
	//    no self-loop or duplicate filtering is needed here.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize the disjoint-set over every vertex.
	uf := unionfind.New(vertices...)

	// 5. Sweep edges from lightest to heaviest, accepting component joins.
	n := len(vertices)
	forest := make([]core.Edge, 0, n-1)
	var totalWeight float64
	for _, e := range edges {
		united, err := uf.Union(e.From, e.To)
		if err != nil {
			// Unreachable for a well-formed graph: every endpoint was registered above.
			return nil, 0, err
		}
		if !united {
			// Endpoints already share a component; this edge would close a cycle.
			continue
		}
		forest = append(forest, e)
		totalWeight += e.Weight
		if len(forest) == n-1 {
			break
		}
	}

	// 6. Return edges in acceptance order; |V|−k edges for k components.
	return forest, totalWeight, nil
}
