// Package algolab is an in-memory playground for four classical algorithms —
// minimum spanning trees, single-source shortest paths, and optimal prefix
// coding — built for studying how the textbook constructions behave on real
// inputs.
//
// 🚀 What is algolab?
//
//	A small, deterministic library that brings together:
//		• Core primitives: build undirected weighted graphs, query safely under locks
//		• Minimum spanning trees: Prim, Kruskal
//		• Shortest paths: Dijkstra with path reconstruction
//		• Prefix coding: Huffman trees, code tables, encode/decode, compression stats
//		• Support structures: a generic min-priority queue and a disjoint-set (union-find)
//
// ✨ Why choose algolab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted vertex order and FIFO tie-breaking make every run repeatable
//   - Pure algorithmic core – no I/O, no formatting, no hidden state between calls
//   - Honest errors – every failure mode is a named sentinel you can errors.Is against
//
// Everything is organized under focused subpackages:
//
//	core/      — fundamental Graph and Edge types & thread-safe primitives
//	pqueue/    — generic min-priority queue with key extraction and stable ties
//	unionfind/ — disjoint set with path compression and union by rank
//	mst/       — minimum spanning trees/forests (Prim, Kruskal)
//	dijkstra/  — single-source shortest paths & path reconstruction
//	huffman/   — optimal prefix codes, encoding, decoding, compression accounting
//	graphio/   — CSV edge-list loading and Graphviz DOT rendering
//	cmd/       — algolab, a console runner over the packages above
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges; both MST engines
//	drop the heaviest edge of any cycle, and Dijkstra walks the light side.
//
// Dive into the per-package doc.go files for contracts, complexity notes and
// worked examples.
//
//	go get github.com/maldonov/algolab
package algolab
