package core

import (
	"reflect"
	"sort"
	"testing"
)

// TestAddVertexHasVertex covers AddVertex and HasVertex.
func TestAddVertexHasVertex(t *testing.T) {
	g := NewGraph()
	if g.HasVertex("A") {
		t.Error("empty graph should not have A")
	}
	g.AddVertex(&Vertex{ID: "A"})
	if !g.HasVertex("A") {
		t.Error("graph should have A after AddVertex")
	}
	// idempotence
	g.AddVertex(&Vertex{ID: "A"})
	if len(g.Vertices()) != 1 {
		t.Errorf("AddVertex duplicate should not increase count; got %d", len(g.Vertices()))
	}
}

// TestAddEdgeHasEdgeMultiedges verifies auto-add, HasEdge, and multiedges.
func TestAddEdgeHasEdgeMultiedges(t *testing.T) {
	g := NewGraph()
	// auto-add vertices
	g.AddEdge("A", "B", 5)
	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Fatal("AddEdge should auto-add vertices")
	}
	if !g.HasEdge("A", "B") {
		t.Error("expected edge A→B")
	}
	// undirected mirror
	if !g.HasEdge("B", "A") {
		t.Error("expected mirror edge B→A")
	}
	// multiedges
	g.AddEdge("A", "B", 7)
	edges := g.Edges()
	countAB := 0
	for _, e := range edges {
		if e.From.ID == "A" && e.To.ID == "B" {
			countAB++
		}
	}
	if countAB != 2 {
		t.Errorf("expected 2 distinct A→B edges, got %d", countAB)
	}
}

// TestNeighbors ensures unique neighbors, even with multiedges.
func TestNeighbors(t *testing.T) {
	g := NewGraph()
	g.AddEdge("1", "2", 0)
	g.AddEdge("1", "2", 0) // duplicate
	nb := g.Neighbors("1")
	if len(nb) != 1 || nb[0].ID != "2" {
		t.Errorf("neighbors should be [2], got %v", nb)
	}
	// Nonexistent
	if nn := g.Neighbors("X"); nn != nil {
		t.Errorf("Neighbors of missing vertex should be nil, got %v", nn)
	}
}

// TestVerticesEdges checks Vertices() and Edges() output sizes.
func TestVerticesEdges(t *testing.T) {
	g := NewGraph()
	g.AddVertex(&Vertex{ID: "A"})
	g.AddVertex(&Vertex{ID: "B"})
	g.AddEdge("A", "B", 1)
	vs := g.Vertices()
	if !reflect.DeepEqual(sortedIDs(vs), []string{"A", "B"}) {
		t.Errorf("Vertices = %v; want [A B]", sortedIDs(vs))
	}
	es := g.Edges()
	if len(es) != 2 {
		t.Errorf("Edges length = %d; want 2 (A→B & B→A)", len(es))
	}
}

// sortedIDs helper for comparison
func sortedIDs(vs []*Vertex) []string {
	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	sort.Strings(ids)
	return ids
}
