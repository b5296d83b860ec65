// Package graphio is the collaborator layer between external graph data and
// the algorithmic core: it loads core.Graph values from CSV edge lists and
// renders graphs (with optional highlighted edges) as Graphviz DOT text.
//
// The core packages never parse or format anything themselves; graphio is
// the narrow boundary where file formats live.
//
// CSV format
//
//	One edge per record, no header:
//
//	    from,to,weight
//	    A,B,4
//	    B,C,2.5
//
//	Endpoint IDs are trimmed of surrounding whitespace; weights are parsed
//	as float64. Structural rules (no self-loops, no duplicate pairs, no
//	negative weights) are enforced by core.AddEdge, and violations surface
//	wrapped with the offending line number.
//
// DOT output
//
//	WriteDOT emits an undirected `graph` with edges labeled by weight;
//	highlighted edges (say, an MST or a shortest-path tree) are drawn red
//	and bold. WriteHuffmanDOT emits a Huffman tree as a `digraph` with
//	code bits on the edges and boxed symbol leaves. Pipe either output
//	through Graphviz to get an image:
//
//	    dot -Tpng graph.dot -o graph.png
package graphio
