// Package dijkstra computes single-source shortest paths on undirected
// weighted graphs with non-negative edge weights.
//
// What & Why
//
//   - Given a source vertex, Dijkstra produces two maps: the minimum
//     distance from the source to every vertex (math.Inf(1) where no path
//     exists), and the predecessor of every reachable non-source vertex on
//     some shortest path. Path turns those maps into an explicit
//     source-to-target vertex sequence.
//
//   - The algorithm underlies routing, network analysis, and any setting
//     where "cheapest way from here" is the question and costs never go
//     negative. Negative weights cannot occur here: core.Graph refuses them
//     at construction, which is exactly the precondition Dijkstra's greedy
//     finalization relies on.
//
// Strategy
//
//	Standard lazy-deletion Dijkstra. A min-priority frontier of
//	(distance, vertex) pairs starts at (0, source); each round pops the
//	nearest candidate, skips it if already finalized (a stale duplicate),
//	otherwise finalizes it and relaxes its incident edges, pushing an
//	improved entry per strictly shortened neighbor. Once a vertex is
//	finalized its distance never changes.
//
// Modeling "no predecessor"
//
//	The predecessor map simply has no entry for the source or for
//	unreachable vertices — absence is the "none" value. Reconstruction
//	never infers unreachability from a missing predecessor; Path checks
//	the distance map for infinity first and returns ErrNoPath, a normal
//	outcome on disconnected graphs rather than an input error.
//
// Error Conditions
//
//   - ErrEmptySource    — no Source option was provided.
//   - ErrNilGraph       — the graph pointer is nil.
//   - ErrSourceNotFound — the source vertex is absent from the graph.
//   - ErrTargetNotFound — Path was asked about a vertex Dijkstra never saw.
//   - ErrNoPath         — Path's target is unreachable (expected outcome).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, err := dijkstra.Path(dist, prev, "E")
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    fmt.Println("E is not reachable from A")
//	}
package dijkstra
