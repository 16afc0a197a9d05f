package orchestrator

import (
	"github.com/mkarasyov/synghs/message"
	"github.com/mkarasyov/synghs/node"
)

// Broadcast runs one application-data broadcast down the current MST
// rooted (conceptually) at originID: the origin floods DataBroadcast to
// its tree neighbors, and every node relays and charges itself energy
// until the phase Beacon arrives. Callers should check each node's
// IsAlive afterward and hand any newly dead nodes to the lifecycle
// package for a tree rebuild.
func Broadcast(nodes []*node.Node, originID int, opts Options) {
	AlertAll(nodes, opts.Fabric, opts.ResolveDetector(), message.Envelope{Tag: message.Beacon}, func(n *node.Node) {
		n.StartBcst(originID)
	})
}
