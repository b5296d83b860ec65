package mst_test

import (
	"fmt"

	"github.com/maldonov/algolab/core"
	"github.com/maldonov/algolab/mst"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	// 1. Construct the triangle: A—B(1), B—C(2), A—C(3).
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 3)

	// 2. Run Kruskal's algorithm.
	edges, total, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight and the edges in acceptance order.
	fmt.Printf("Total: %.0f, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim's algorithm on a 5-vertex pentagon graph.
// Vertices: A, B, C, D, E. Edges: A–B(1), B–C(2), C–D(3), D–E(5), A–E(12).
// The MST is {A–B, B–C, C–D, D–E} with total weight 11.
func ExamplePrim() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "E", 12)
	g.AddEdge("B", "C", 2)
	g.AddEdge("C", "D", 3)
	g.AddEdge("D", "E", 5)

	edges, total, err := mst.Prim(g, mst.WithRoot("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %.0f, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExampleKruskal_forest shows that a disconnected graph yields a spanning
// forest — fewer than |V|−1 edges — rather than an error.
func ExampleKruskal_forest() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)

	edges, total, _ := mst.Kruskal(g)
	fmt.Printf("%d vertices, %d forest edges, total %.0f\n",
		g.VertexCount(), len(edges), total)
	// Output: 4 vertices, 2 forest edges, total 2
}
