// Package graphio: Graphviz DOT rendering of Huffman trees.
package graphio

import (
	"fmt"
	"io"

	"github.com/maldonov/algolab/huffman"
)

// treeItem pairs a node with the numeric DOT ID assigned to it.
type treeItem struct {
	node *huffman.Node
	id   int
}

// WriteHuffmanDOT renders a Huffman tree as a directed Graphviz graph:
// internal nodes carry their frequency sum, leaves carry symbol and
// frequency in a box, and every edge is labeled with its code bit
// ('0' left, '1' right).
//
// IDs are assigned in traversal order, so output is deterministic for a
// given tree.
//
// Complexity: O(k) nodes.
func WriteHuffmanDOT(w io.Writer, root *huffman.Node) error {
	if root == nil {
		return fmt.Errorf("graphio: nil tree")
	}

	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}

	next := 1
	stack := []treeItem{{node: root, id: 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.node.Leaf() {
			label := fmt.Sprintf("%q: %d", it.node.Symbol, it.node.Freq)
			if _, err := fmt.Fprintf(w, "\t%d [label=%q, shape=box];\n", it.id, label); err != nil {
				return err
			}

			continue
		}

		if _, err := fmt.Fprintf(w, "\t%d [label=%q];\n", it.id, fmt.Sprintf("%d", it.node.Freq)); err != nil {
			return err
		}
		leftID, rightID := next, next+1
		next += 2
		if _, err := fmt.Fprintf(w, "\t%d -> %d [label=\"0\"];\n", it.id, leftID); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\t%d -> %d [label=\"1\"];\n", it.id, rightID); err != nil {
			return err
		}
		// Right pushed first so the left subtree prints first.
		stack = append(stack, treeItem{node: it.node.Right, id: rightID})
		stack = append(stack, treeItem{node: it.node.Left, id: leftID})
	}
	_, err := fmt.Fprintln(w, "}")

	return err
}
