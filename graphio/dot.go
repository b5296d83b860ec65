// Package graphio: Graphviz DOT rendering.
package graphio

import (
	"fmt"
	"io"

	"github.com/maldonov/algolab/core"
)

// WriteDOT renders g as an undirected Graphviz graph. Edges listed in
// highlight (matched as unordered pairs) are drawn red and bold — pass an
// MST edge list or a shortest-path tree to make the result visible at a
// glance. A nil or empty highlight renders everything uniformly.
//
// Complexity: O(V + E).
func WriteDOT(w io.Writer, g *core.Graph, highlight []core.Edge) error {
	if g == nil {
		return fmt.Errorf("graphio: nil graph")
	}

	marked := make(map[[2]string]bool, len(highlight))
	for _, e := range highlight {
		marked[pairKey(e.From, e.To)] = true
	}

	if _, err := fmt.Fprintln(w, "graph {"); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "\t%q;\n", v); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		attrs := fmt.Sprintf("label=%q", formatWeight(e.Weight))
		if marked[pairKey(e.From, e.To)] {
			attrs += ", color=red, penwidth=2"
		}
		if _, err := fmt.Fprintf(w, "\t%q -- %q [%s];\n", e.From, e.To, attrs); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")

	return err
}

// pairKey normalizes an unordered endpoint pair for map lookup.
func pairKey(u, v string) [2]string {
	if u > v {
		u, v = v, u
	}

	return [2]string{u, v}
}

// formatWeight prints weights without a trailing ".0" for whole numbers.
func formatWeight(w float64) string {
	if w == float64(int64(w)) {
		return fmt.Sprintf("%d", int64(w))
	}

	return fmt.Sprintf("%g", w)
}
