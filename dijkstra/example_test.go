package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/maldonov/algolab/core"
	"github.com/maldonov/algolab/dijkstra"
)

// ExampleDijkstra computes distances from "A" on the triangle
// A—B(1), B—C(2), A—C(4) and reconstructs the path to C, which goes
// through B (cost 3) rather than over the heavier direct edge.
func ExampleDijkstra() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 4)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("A:%.0f B:%.0f C:%.0f\n", dist["A"], dist["B"], dist["C"])

	path, _ := dijkstra.Path(dist, prev, "C")
	fmt.Println(path)
	// Output:
	// A:0 B:1 C:3
	// [A B C]
}

// ExamplePath_noPath shows the expected outcome for an unreachable target:
// ErrNoPath, decided by the infinite distance, not by predecessor walking.
func ExamplePath_noPath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)

	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))

	_, err := dijkstra.Path(dist, prev, "D")
	fmt.Println(errors.Is(err, dijkstra.ErrNoPath))
	// Output: true
}
