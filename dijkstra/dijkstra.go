// Package dijkstra implements Dijkstra's shortest-path algorithm on
// undirected weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-priority
// frontier, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions from the frontier.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Each frontier operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case frontier occupancy under lazy deletion.
//
// Notes on implementation choices:
//
//   - Non-negative weights are a core.Graph invariant (AddEdge rejects
//     negatives), so no pre-scan is needed here.
//   - Unreachable vertices keep distance math.Inf(1) and never gain a
//     predecessor entry.
//   - We use lazy deletion: improving a distance pushes a duplicate frontier
//     entry, and stale entries are discarded on pop.
package dijkstra

import (
	"math"

	"github.com/maldonov/algolab/core"
	"github.com/maldonov/algolab/pqueue"
)

// frontierItem pairs a vertex with its tentative distance from the source.
type frontierItem struct {
	vertex string
	dist   float64
}

// Dijkstra computes shortest distances from the source vertex (set via the
// Source option) to all other vertices of the weighted graph g.
//
// Returns:
//
//   - dist: map from every vertex ID to its minimum distance from the
//     source; math.Inf(1) for unreachable vertices.
//   - prev: predecessor map for path reconstruction. A vertex has an entry
//     iff it has a predecessor on some shortest path — the source and all
//     unreachable vertices are absent, which is how "no predecessor" is
//     modeled (no sentinel IDs).
//   - err:  non-nil if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrSourceNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build options from defaults plus caller overrides.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrSourceNotFound
	}

	// 5) Initialize dist[v] = +∞ for every vertex; the source alone starts at 0.
	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	dist[cfg.Source] = 0

	// prev holds entries only for vertices that gained a predecessor.
	prev := make(map[string]string, len(vertices))

	// visited marks vertices whose distance is finalized.
	visited := make(map[string]bool, len(vertices))

	// 6) Seed the frontier with (0, source).
	frontier := pqueue.New(func(it frontierItem) float64 { return it.dist })
	frontier.Push(frontierItem{vertex: cfg.Source, dist: 0})

	// 7) Main loop: finalize the nearest unvisited vertex, then relax its edges.
	for frontier.Len() > 0 {
		item, _ := frontier.Pop()
		u := item.vertex

		// Lazy deletion: skip entries made stale by a later improvement.
		if visited[u] {
			continue
		}
		visited[u] = true

		// Relax every incident edge. Once u is finalized, dist[u] never
		// changes, so dist[u] + w is the true candidate for each neighbor.
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range neighbors {
			v := e.To
			if visited[v] {
				continue
			}
			// Strict improvement only: equal-distance alternatives keep the
			// first-found predecessor and push no duplicate entries.
			newDist := dist[u] + e.Weight
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			prev[v] = u
			frontier.Push(frontierItem{vertex: v, dist: newDist})
		}
	}

	// 8) dist now covers every vertex (∞ where unreachable); prev covers
	//    exactly the reachable non-source vertices.
	return dist, prev, nil
}
