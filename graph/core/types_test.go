package core

import (
	"reflect"
	"testing"
)

func TestCloneEmpty(t *testing.T) {
	g := NewGraph()
	g.AddVertex(&Vertex{ID: "A"})
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 3)

	clone := g.CloneEmpty()
	origIDs := sortedIDs(g.Vertices())
	clonedIDs := sortedIDs(clone.Vertices())
	if !reflect.DeepEqual(origIDs, clonedIDs) {
		t.Errorf("CloneEmpty vertices = %v; want %v", clonedIDs, origIDs)
	}
	if len(clone.Edges()) != 0 {
		t.Errorf("CloneEmpty edges count = %d; want 0", len(clone.Edges()))
	}
}

func TestVerticesMapReadOnly(t *testing.T) {
	g := NewGraph()
	g.AddVertex(&Vertex{ID: "X"})
	vm := g.VerticesMap()
	vm["Y"] = &Vertex{ID: "Y"} // attempt mutation
	if g.HasVertex("Y") {
		t.Error("VerticesMap should expose read-only map; mutation leaked")
	}
}
