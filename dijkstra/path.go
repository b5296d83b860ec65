// Package dijkstra: shortest-path reconstruction from the dist/prev maps
// produced by Dijkstra.
package dijkstra

import "math"

// Path reconstructs the shortest path from the source to target by walking
// predecessor links in the maps returned by Dijkstra.
//
// The returned slice starts at the source and ends at target. A target equal
// to the source yields a single-element path [source].
//
// Unreachability is decided by the distance map alone: a target with
// infinite distance yields ErrNoPath before any predecessor walking. The
// predecessor chain is never consulted for unreachable vertices, since a
// chainless vertex is ambiguous — it may be the source or merely cut off.
//
// Errors:
//   - ErrTargetNotFound : target has no entry in dist (never part of the graph).
//   - ErrNoPath         : target is unreachable from the source.
//
// Complexity: O(V) worst case.
func Path(dist map[string]float64, prev map[string]string, target string) ([]string, error) {
	d, ok := dist[target]
	if !ok {
		return nil, ErrTargetNotFound
	}
	if math.IsInf(d, 1) {
		return nil, ErrNoPath
	}

	// Walk back from target to the source (the one reachable vertex with no
	// predecessor entry), then reverse in place.
	path := []string{target}
	cur := target
	for {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
