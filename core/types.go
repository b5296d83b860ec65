// Package core declares the Graph and Edge types, sentinel errors,
// and the NewGraph constructor. Query and mutation methods live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between an unordered vertex pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight not allowed")
)

// Edge represents an undirected weighted connection between two vertices.
//
// From/To carry no direction; they record the orientation of the snapshot
// that produced the Edge (Edges() normalizes From < To, Neighbors(id) sets
// From == id, algorithm results set From to the tree-side endpoint).
type Edge struct {
	// From is one endpoint's vertex ID.
	From string

	// To is the other endpoint's vertex ID.
	To string

	// Weight is the non-negative cost of the edge.
	Weight float64
}

// Graph is the core in-memory graph data structure: undirected, weighted,
// and simple (one edge per unordered pair, no self-loops).
//
// mu guards vertices and adjacency. Weights are stored once per unordered
// pair and mirrored in both adjacency rows.
type Graph struct {
	mu sync.RWMutex

	// vertices is the set of known vertex IDs.
	vertices map[string]struct{}

	// adjacency[u][v] = weight of edge u—v; symmetric by construction.
	adjacency map[string]map[string]float64

	// edgeCount tracks the number of unordered pairs with an edge.
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]float64),
	}
}
