// Package mst defines configuration options and sentinel errors for MST
// computation. The algorithms themselves live in prim.go and kruskal.go.
package mst

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed to Prim or Kruskal.
var ErrNilGraph = errors.New("mst: graph is nil")

// Options configures Prim's algorithm. Kruskal takes no options.
//
// Fields:
//
//	Root string — start vertex ID for Prim; "" selects the first vertex
//	              in sorted ID order.
type Options struct {
	// Root is the starting vertex for Prim's algorithm.
	Root string
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm. An empty root keeps the default (first vertex in sorted order).
func WithRoot(root string) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// DefaultOptions returns Options with no explicit root, so Prim starts from
// the first vertex in sorted ID order.
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{Root: ""}
}
