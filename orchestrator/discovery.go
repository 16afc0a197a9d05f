package orchestrator

import (
	"github.com/mkarasyov/synghs/event"
	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/geo"
	"github.com/mkarasyov/synghs/message"
	"github.com/mkarasyov/synghs/node"
	"github.com/mkarasyov/synghs/quiescence"
)

// RunDiscovery establishes the radio-neighbor relation among nodes: every
// node reports its position, the orchestrator pairs up every two nodes
// within RadioRadius and delivers a Discover envelope in both directions,
// then every node drains Discover/DiscoverResponse traffic until the
// Quiescence Detector injects the phase Beacon.
func RunDiscovery(nodes []*node.Node, fab *fabric.Fabric, det *quiescence.Detector) {
	eq := event.NewQueue()
	for _, n := range nodes {
		n.Discover(eq)
	}
	positions := eq.Drain()

	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			a, b := positions[i], positions[j]
			if geo.Distance(a.Pos, b.Pos) > RadioRadius {
				continue
			}
			fab.Send(b.NodeID, message.Envelope{Tag: message.Discover, SenderID: a.NodeID, SenderPos: a.Pos})
			fab.Send(a.NodeID, message.Envelope{Tag: message.Discover, SenderID: b.NodeID, SenderPos: b.Pos})
		}
	}

	AlertAll(nodes, fab, det, message.Envelope{Tag: message.Beacon}, func(n *node.Node) {
		n.DiscoverResponse()
	})
}
