package orchestrator

import (
	"github.com/mkarasyov/synghs/event"
	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/message"
	"github.com/mkarasyov/synghs/node"
	"github.com/mkarasyov/synghs/quiescence"
)

// FindMST drives the GHS level loop to convergence: each level runs a
// ChooseBestLink phase (gather + announce the fragment's cheapest outgoing
// edge) followed by a Merge phase (propagate the decision and settle
// fragment leadership), until a level adds no new edge. onEdge, if
// non-nil, is called once per edge in the order it was accepted; onLevelStart,
// if non-nil, is called with the current leader roster before each
// ChooseBestLink phase; onElected, if non-nil, is called once per node that
// ends a Merge phase elected. Callers use these to drive event logging
// without the orchestrator depending on a logging package directly.
// Disconnected input graphs terminate cleanly: once every remaining
// fragment has no outgoing edge left to offer, the level adds nothing and
// the loop stops with more than one fragment alive.
func FindMST(nodes []*node.Node, opts Options, onEdge func(message.Edge), onLevelStart func([]int), onElected func(int)) {
	det := opts.ResolveDetector()
	for level := 0; ; level++ {
		added := runLevel(level, aliveNodes(nodes), opts.Fabric, det, onEdge, onLevelStart, onElected)
		if added == 0 {
			return
		}
	}
}

func runLevel(level int, nodes []*node.Node, fab *fabric.Fabric, det *quiescence.Detector, onEdge func(message.Edge), onLevelStart func([]int), onElected func(int)) int {
	if onLevelStart != nil {
		onLevelStart(leaderIDs(nodes))
	}

	eq := event.NewQueue()
	AlertAll(nodes, fab, det, message.Envelope{Tag: message.Beacon}, func(n *node.Node) {
		n.ChooseBestLink(level, eq)
	})
	logs := eq.Drain()
	if len(logs) == 0 {
		return 0
	}

	AlertAll(nodes, fab, det, message.Envelope{Tag: message.Beacon}, func(n *node.Node) {
		n.Merge(level)
	})

	// Both fragments joined by an edge may report it; pass each edge on once.
	seen := make(map[message.Edge]bool, len(logs))
	for _, e := range logs {
		c := e.Edge.Canonical()
		if seen[c] {
			continue
		}
		seen[c] = true
		if onEdge != nil {
			onEdge(e.Edge)
		}
	}
	if onElected != nil {
		for _, n := range nodes {
			if n.IsElected() {
				onElected(n.ID)
			}
		}
	}
	return len(logs)
}

// leaderIDs returns the ids of every currently fragment-leading node, for
// the "bs" roster logged at the start of each level.
func leaderIDs(nodes []*node.Node) []int {
	ids := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if n.IsLeader() {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
