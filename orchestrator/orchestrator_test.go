package orchestrator

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/geo"
	"github.com/mkarasyov/synghs/message"
	"github.com/mkarasyov/synghs/node"
	"github.com/mkarasyov/synghs/quiescence"
)

func newTestNode(id int, x, y float64, fab *fabric.Fabric) *node.Node {
	return node.New(id, geo.Point{X: x, Y: y}, 1000, 0, fab)
}

func collectEdges(t *testing.T, nodes []*node.Node) []message.Edge {
	t.Helper()
	var edges []message.Edge
	for _, n := range nodes {
		edges = append(edges, n.MST()...)
	}
	return edges
}

// TestThreeCollinearNodes mirrors the three-collinear-nodes scenario: nodes
// at x=0,5,12 form a path graph once connected, and the GHS result must
// span all three with exactly two edges, the same ones Kruskal would pick.
func TestThreeCollinearNodes(t *testing.T) {
	fab := fabric.New()
	n1 := newTestNode(1, 0, 0, fab)
	n2 := newTestNode(2, 5, 0, fab)
	n3 := newTestNode(3, 12, 0, fab)
	nodes := []*node.Node{n1, n2, n3}
	opts := Options{Fabric: fab, Detector: quiescence.New(3)}

	RunDiscovery(nodes, fab, opts.ResolveDetector())
	require.Len(t, n2.Neighbors(), 2)

	var logged []message.Edge
	FindMST(nodes, opts, func(e message.Edge) { logged = append(logged, e) }, nil, nil)

	require.Len(t, logged, 2)
	all := collectEdges(t, nodes)
	assert.True(t, hasCanonicalEdge(all, 1, 2))
	assert.True(t, hasCanonicalEdge(all, 2, 3))
}

// TestDisconnectedPairStaysSeparate mirrors the disconnected-pair scenario:
// two nodes outside radio range of a third must never merge with it.
func TestDisconnectedPairStaysSeparate(t *testing.T) {
	fab := fabric.New()
	n1 := newTestNode(1, 0, 0, fab)
	n2 := newTestNode(2, 3, 0, fab)
	n3 := newTestNode(3, 1000, 1000, fab)
	nodes := []*node.Node{n1, n2, n3}
	opts := Options{Fabric: fab, Detector: quiescence.New(3)}

	RunDiscovery(nodes, fab, opts.ResolveDetector())
	assert.Empty(t, n3.Neighbors())

	FindMST(nodes, opts, nil, nil, nil)
	assert.True(t, n3.IsLeader())
	assert.Empty(t, n3.MST())
	all := collectEdges(t, nodes)
	assert.True(t, hasCanonicalEdge(all, 1, 2))
}

// TestSquareTopologyConverges mirrors the square scenario: four nodes at
// unit-square corners must converge to a spanning tree of exactly three
// edges, each of unit length (the diagonals are never cheaper).
func TestSquareTopologyConverges(t *testing.T) {
	fab := fabric.New()
	n1 := newTestNode(1, 0, 0, fab)
	n2 := newTestNode(2, 1, 0, fab)
	n3 := newTestNode(3, 1, 1, fab)
	n4 := newTestNode(4, 0, 1, fab)
	nodes := []*node.Node{n1, n2, n3, n4}
	opts := Options{Fabric: fab, Detector: quiescence.New(3)}

	RunDiscovery(nodes, fab, opts.ResolveDetector())

	var logged []message.Edge
	FindMST(nodes, opts, func(e message.Edge) { logged = append(logged, e) }, nil, nil)
	require.Len(t, logged, 3)

	// Each tree edge is stored self-first at both of its endpoints, so the
	// three edges count twice.
	total := 0
	for _, n := range nodes {
		total += n.InTreeDegree()
	}
	assert.Equal(t, 6, total)
}

func hasCanonicalEdge(edges []message.Edge, u, v int) bool {
	want := message.Edge{U: u, V: v}.Canonical()
	for _, e := range edges {
		if e.Canonical() == want {
			return true
		}
	}
	return false
}

func TestAlertAllRunsEveryNode(t *testing.T) {
	fab := fabric.New()
	nodes := []*node.Node{newTestNode(1, 0, 0, fab), newTestNode(2, 1, 0, fab)}
	var mu sync.Mutex
	var seen []int
	AlertAll(nodes, fab, quiescence.New(3), message.Envelope{Tag: message.Beacon}, func(n *node.Node) {
		mu.Lock()
		seen = append(seen, n.ID)
		mu.Unlock()
	})
	sort.Ints(seen)
	assert.Equal(t, []int{1, 2}, seen)
}
