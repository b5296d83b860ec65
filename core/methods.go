package core

import "sort"

// AddVertex registers a vertex ID, creating it if absent.
// Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id into the vertex set and adjacency index.
// Caller must hold g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]float64)
}

// AddEdge connects from and to with the given weight, creating any missing
// endpoint vertices. The edge is undirected: it appears in both adjacency rows.
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint ID is "".
//   - ErrSelfLoop       if from == to.
//   - ErrNegativeWeight if weight < 0.
//   - ErrDuplicateEdge  if the unordered pair already has an edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// Validate structure before touching any state: no partial mutation on error.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if _, ok := g.adjacency[from][to]; ok {
		return ErrDuplicateEdge
	}

	// Mirror the weight in both rows so Neighbors is a plain row scan.
	g.adjacency[from][to] = weight
	g.adjacency[to][from] = weight
	g.edgeCount++

	return nil
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether an edge connects u and v (in either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of the edge u—v and whether such an edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[u][v]

	return w, ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex IDs in ascending order.
// The slice is a snapshot; mutating it does not affect the graph.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns one Edge per unordered pair, normalized so From < To,
// sorted by (From, To). The slice is a snapshot.
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for u, row := range g.adjacency {
		for v, w := range row {
			// Each pair appears twice in adjacency; emit it once, low ID first.
			if u < v {
				edges = append(edges, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// Neighbors returns the edges incident to id, re-oriented so From == id,
// sorted by the opposite endpoint.
//
// Errors:
//   - ErrVertexNotFound if id does not exist.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	edges := make([]Edge, 0, len(row))
	for v, w := range row {
		edges = append(edges, Edge{From: id, To: v, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// Clone returns a deep copy of the graph. The copy shares no state with the
// original, so one side can keep mutating while the other runs algorithms.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id := range g.vertices {
		clone.addVertexLocked(id)
	}
	for u, row := range g.adjacency {
		for v, w := range row {
			clone.adjacency[u][v] = w
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
