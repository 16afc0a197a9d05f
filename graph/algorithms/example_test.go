package algorithms_test

import (
	"fmt"

	"github.com/mkarasyov/synghs/graph/algorithms"
	"github.com/mkarasyov/synghs/graph/core"
)

// buildTriangle builds A–B(1), B–C(2), A–C(3).
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 3)
	return g
}

// ExampleBFS shows the breadth-first depth of each vertex, used to check
// radio-graph connectivity. The order among vertices of equal depth follows
// neighbor iteration order and is not fixed, so depths are printed by ID.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("A", "C", 0)
	g.AddEdge("B", "D", 0)

	res, _ := algorithms.BFS(g, "A", nil)
	for _, id := range []string{"A", "B", "C", "D"} {
		fmt.Printf("%s:%d ", id, res.Depth[id])
	}
	// Output: A:0 B:1 C:1 D:2
}

// ExampleKruskal demonstrates Kruskal's MST, used as the verification oracle.
func ExampleKruskal() {
	g := buildTriangle()
	edges, sum, _ := algorithms.Kruskal(g)
	fmt.Println("total weight:", sum)
	for _, e := range edges {
		fmt.Printf("%s-%s ", e.From.ID, e.To.ID)
	}
	// Output:
	// total weight: 3
	// A-B B-C
}
