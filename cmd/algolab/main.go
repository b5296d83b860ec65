// Command algolab runs the library's algorithms over CSV edge lists and
// text files, printing console reports. It is the presentation layer the
// algorithmic core deliberately does not have: loading lives in graphio,
// computation in mst/dijkstra/huffman, and every format decision here.
//
// Usage:
//
//	algolab --algo prim     --graph graph.csv [--root A] [--dot out.dot]
//	algolab --algo kruskal  --graph graph.csv [--dot out.dot]
//	algolab --algo dijkstra --graph graph.csv --source A [--target E]
//	algolab --algo huffman  --text "aaabb" | --text-file input.txt [--dot tree.dot]
//	algolab --algo all      --graph graph.csv --source A --text-file input.txt
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/maldonov/algolab/core"
	"github.com/maldonov/algolab/dijkstra"
	"github.com/maldonov/algolab/graphio"
	"github.com/maldonov/algolab/huffman"
	"github.com/maldonov/algolab/mst"
)

var (
	algo     = flag.String("algo", "all", "algorithm to run: prim, kruskal, dijkstra, huffman, all")
	graphCSV = flag.String("graph", "", "CSV edge list (from,to,weight) for prim/kruskal/dijkstra")
	root     = flag.String("root", "", "start vertex for prim (default: first vertex)")
	source   = flag.String("source", "", "source vertex for dijkstra")
	target   = flag.String("target", "", "optional target vertex for dijkstra path reconstruction")
	text     = flag.String("text", "", "literal text for huffman")
	textFile = flag.String("text-file", "", "text file for huffman (overrides --text)")
	dotOut   = flag.String("dot", "", "write the graph with highlighted result edges as DOT to this file")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "algolab:", err)
		os.Exit(1)
	}
}

func run() error {
	switch *algo {
	case "prim":
		return runMST(mstPrim)
	case "kruskal":
		return runMST(mstKruskal)
	case "dijkstra":
		return runDijkstra()
	case "huffman":
		return runHuffman()
	case "all":
		for _, step := range []func() error{
			func() error { return runMST(mstPrim) },
			func() error { return runMST(mstKruskal) },
			runDijkstra,
			runHuffman,
		} {
			if err := step(); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("unknown --algo %q", *algo)
	}
}

const (
	mstPrim    = "Prim"
	mstKruskal = "Kruskal"
)

func loadGraph() (*core.Graph, error) {
	if *graphCSV == "" {
		return nil, errors.New("--graph is required")
	}

	return graphio.ReadCSVFile(*graphCSV)
}

func runMST(method string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	var edges []core.Edge
	var total float64
	if method == mstPrim {
		edges, total, err = mst.Prim(g, mst.WithRoot(*root))
	} else {
		edges, total, err = mst.Kruskal(g)
	}
	if err != nil {
		return err
	}

	fmt.Printf("=== Minimum Spanning Tree (%s) ===\n", method)
	fmt.Printf("Vertices: %d  Edges: %d  MST edges: %d  Total weight: %.2f\n",
		g.VertexCount(), g.EdgeCount(), len(edges), total)
	if len(edges) < g.VertexCount()-1 {
		fmt.Println("Note: graph is disconnected; result is a spanning forest/partial tree.")
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range edges {
		fmt.Fprintf(tw, "  %s\t--\t%s\t%.2f\n", e.From, e.To, e.Weight)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return writeDOT(g, edges, strings.ToLower(method))
}

func runDijkstra() error {
	g, err := loadGraph()
	if err != nil {
		return err
	}
	if *source == "" {
		return errors.New("--source is required for dijkstra")
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(*source))
	if err != nil {
		return err
	}

	fmt.Printf("=== Shortest Paths (Dijkstra) from %s ===\n", *source)
	vertices := make([]string, 0, len(dist))
	for v := range dist {
		vertices = append(vertices, v)
	}
	sort.Strings(vertices)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, v := range vertices {
		if math.IsInf(dist[v], 1) {
			fmt.Fprintf(tw, "  %s\t∞\tunreachable\n", v)

			continue
		}
		path, err := dijkstra.Path(dist, prev, v)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  %s\t%.2f\t%s\n", v, dist[v], strings.Join(path, " → "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if *target != "" {
		path, err := dijkstra.Path(dist, prev, *target)
		switch {
		case errors.Is(err, dijkstra.ErrNoPath):
			fmt.Printf("No path exists from %s to %s.\n", *source, *target)
		case err != nil:
			return err
		default:
			fmt.Printf("Path %s → %s: %s (distance %.2f)\n",
				*source, *target, strings.Join(path, " → "), dist[*target])
		}
	}

	// Highlight the shortest-path tree in the DOT output.
	treeEdges := make([]core.Edge, 0, len(prev))
	for v, p := range prev {
		w, _ := g.Weight(p, v)
		treeEdges = append(treeEdges, core.Edge{From: p, To: v, Weight: w})
	}

	return writeDOT(g, treeEdges, "dijkstra")
}

func runHuffman() error {
	input := *text
	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil {
			return err
		}
		input = string(data)
	}
	if input == "" {
		return errors.New("--text or --text-file is required for huffman")
	}

	freq := huffman.Frequencies(input)
	tree, err := huffman.BuildFromFrequencies(freq)
	if err != nil {
		return err
	}
	codes, err := huffman.Codes(tree)
	if err != nil {
		return err
	}

	fmt.Println("=== Huffman Coding ===")
	fmt.Printf("Text length: %d  Distinct symbols: %d\n", len([]rune(input)), len(freq))

	// Most frequent first, symbol order on ties — the classic code-table view.
	symbols := make([]rune, 0, len(freq))
	for r := range freq {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool {
		if freq[symbols[i]] != freq[symbols[j]] {
			return freq[symbols[i]] > freq[symbols[j]]
		}

		return symbols[i] < symbols[j]
	})

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Symbol\tFreq\tCode")
	for _, r := range symbols {
		fmt.Fprintf(tw, "  %s\t%d\t%s\n", printable(r), freq[r], codes[r])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	bits := huffman.EncodedBits(freq, codes)
	fmt.Printf("Fixed-width bits: %d  Huffman bits: %d  Saved: %.2f%%\n",
		len([]rune(input))*huffman.FixedWidthBits, bits,
		huffman.CompressionRatio(freq, codes)*100)

	fmt.Println("Tree:")
	printHuffmanTree(os.Stdout, tree)

	if *dotOut == "" {
		return nil
	}
	f, err := os.Create(dotPath("huffman"))
	if err != nil {
		return err
	}
	defer f.Close()

	return graphio.WriteHuffmanDOT(f, tree)
}

// printHuffmanTree renders the tree sideways with box-drawing branches, each
// edge carrying its code bit:
//
//	(5)
//	├─0─ 'b' (2)
//	└─1─ 'a' (3)
func printHuffmanTree(w io.Writer, root *huffman.Node) {
	var walk func(n *huffman.Node, branch, childPrefix string)
	walk = func(n *huffman.Node, branch, childPrefix string) {
		if n.Leaf() {
			fmt.Fprintf(w, "%s%s (%d)\n", branch, printable(n.Symbol), n.Freq)

			return
		}
		fmt.Fprintf(w, "%s(%d)\n", branch, n.Freq)
		walk(n.Left, childPrefix+"├─0─ ", childPrefix+"│    ")
		walk(n.Right, childPrefix+"└─1─ ", childPrefix+"     ")
	}
	walk(root, "  ", "  ")
}

// printable renders control characters and the space legibly in the table.
func printable(r rune) string {
	switch r {
	case ' ':
		return "'␣'"
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	default:
		return fmt.Sprintf("%q", r)
	}
}

// dotPath resolves the output filename for one algorithm's DOT file. Under
// --algo all every step would otherwise overwrite the same file, so the
// algorithm name is suffixed before the extension (out.dot → out-prim.dot).
func dotPath(kind string) string {
	if *algo != "all" {
		return *dotOut
	}
	ext := filepath.Ext(*dotOut)

	return strings.TrimSuffix(*dotOut, ext) + "-" + kind + ext
}

func writeDOT(g *core.Graph, highlight []core.Edge, kind string) error {
	if *dotOut == "" {
		return nil
	}
	f, err := os.Create(dotPath(kind))
	if err != nil {
		return err
	}
	defer f.Close()

	return graphio.WriteDOT(f, g, highlight)
}
