package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maldonov/algolab/core"
	"github.com/maldonov/algolab/graphio"
	"github.com/maldonov/algolab/huffman"
)

// ------------------------------------------------------------------------
// CSV loading.
// ------------------------------------------------------------------------

func TestReadCSV_HappyPath(t *testing.T) {
	input := "A,B,1\nB,C,2.5\nA,C,3\n"

	g, err := graphio.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	w, ok := g.Weight("B", "C")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
}

func TestReadCSV_TrimsWhitespace(t *testing.T) {
	// Fields padded with spaces still parse; IDs are trimmed.
	input := "A , B , 1\n"

	g, err := graphio.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
}

func TestReadCSV_Empty(t *testing.T) {
	// No records is a valid empty graph, not an error.
	g, err := graphio.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestReadCSV_BadRecords(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"wrong field count", "A,B,1\nA,B\n"},
		{"unterminated quote", "\"A,B,1"},
		{"non-numeric weight", "A,B,heavy\n"},
		{"negative weight", "A,B,-3\n"},
		{"self-loop", "A,A,1\n"},
		{"duplicate edge", "A,B,1\nB,A,2\n"},
		{"empty vertex id", ",B,1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ReadCSV(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, graphio.ErrBadRecord)
		})
	}
}

func TestReadCSV_ErrorNamesLine(t *testing.T) {
	// The first record is fine; the failure must point at line 2.
	_, err := graphio.ReadCSV(strings.NewReader("A,B,1\nB,C,oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

// ------------------------------------------------------------------------
// DOT rendering.
// ------------------------------------------------------------------------

func TestWriteDOT_NilGraph(t *testing.T) {
	var sb strings.Builder
	assert.Error(t, graphio.WriteDOT(&sb, nil, nil))
}

func TestWriteDOT_Plain(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2.5))

	var sb strings.Builder
	require.NoError(t, graphio.WriteDOT(&sb, g, nil))
	out := sb.String()

	want := "graph {\n" +
		"\t\"A\";\n" +
		"\t\"B\";\n" +
		"\t\"C\";\n" +
		"\t\"A\" -- \"B\" [label=\"1\"];\n" +
		"\t\"B\" -- \"C\" [label=\"2.5\"];\n" +
		"}\n"
	assert.Equal(t, want, out)
}

func TestWriteDOT_Highlight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))

	// Highlight matching is unordered: C→A must still mark the A—C edge.
	highlight := []core.Edge{{From: "C", To: "A", Weight: 3}}

	var sb strings.Builder
	require.NoError(t, graphio.WriteDOT(&sb, g, highlight))
	out := sb.String()

	assert.Contains(t, out, "\"A\" -- \"C\" [label=\"3\", color=red, penwidth=2];")
	assert.NotContains(t, out, "\"A\" -- \"B\" [label=\"1\", color")
}

func TestWriteHuffmanDOT_NilTree(t *testing.T) {
	var sb strings.Builder
	assert.Error(t, graphio.WriteHuffmanDOT(&sb, nil))
}

func TestWriteHuffmanDOT_Tree(t *testing.T) {
	// "aaabb": the lighter leaf 'b' joins on the left, 'a' on the right.
	root, err := huffman.Build("aaabb")
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, graphio.WriteHuffmanDOT(&sb, root))

	want := "digraph {\n" +
		"\t0 [label=\"5\"];\n" +
		"\t0 -> 1 [label=\"0\"];\n" +
		"\t0 -> 2 [label=\"1\"];\n" +
		"\t1 [label=\"'b': 2\", shape=box];\n" +
		"\t2 [label=\"'a': 3\", shape=box];\n" +
		"}\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteHuffmanDOT_SingleLeaf(t *testing.T) {
	root, err := huffman.Build("xx")
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, graphio.WriteHuffmanDOT(&sb, root))

	want := "digraph {\n" +
		"\t0 [label=\"'x': 2\", shape=box];\n" +
		"}\n"
	assert.Equal(t, want, sb.String())
}
