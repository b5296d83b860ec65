package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maldonov/algolab/huffman"
)

// TestDotPath_SuffixesUnderAll verifies that --algo all fans the DOT output
// out into one file per algorithm instead of overwriting a single path.
func TestDotPath_SuffixesUnderAll(t *testing.T) {
	*dotOut = "out.dot"

	*algo = "all"
	assert.Equal(t, "out-prim.dot", dotPath("prim"))
	assert.Equal(t, "out-kruskal.dot", dotPath("kruskal"))
	assert.Equal(t, "out-dijkstra.dot", dotPath("dijkstra"))
	assert.Equal(t, "out-huffman.dot", dotPath("huffman"))

	*algo = "prim"
	assert.Equal(t, "out.dot", dotPath("prim"))
}

func TestPrintHuffmanTree(t *testing.T) {
	root, err := huffman.Build("aaabb")
	require.NoError(t, err)

	var sb strings.Builder
	printHuffmanTree(&sb, root)

	want := "  (5)\n" +
		"  ├─0─ 'b' (2)\n" +
		"  └─1─ 'a' (3)\n"
	assert.Equal(t, want, sb.String())
}
