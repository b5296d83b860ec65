// Package dijkstra defines configuration options and sentinel errors for
// single-source shortest-path computation. The algorithm lives in
// dijkstra.go; path reconstruction in path.go.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the requested source vertex does not
	// exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that Path was asked about a vertex absent
	// from the distance map.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in distance map")

	// ErrNoPath indicates that the target is unreachable from the source.
	// This is an expected outcome on disconnected graphs, distinct from the
	// invalid-input errors above.
	ErrNoPath = errors.New("dijkstra: no path exists to target")
)

// Options configures the Dijkstra algorithm.
//
// Source – starting vertex ID (must be non-empty and present in the graph).
type Options struct {
	// Source is the ID of the source vertex.
	Source string
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given vertex ID.
// Must be provided for every Dijkstra call.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// DefaultOptions returns an Options struct for the given source vertex ID.
// The source is validated inside Dijkstra, not here.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}
