package node

import "github.com/mkarasyov/synghs/message"

// floodTree relays payload to every tree neighbor this node has an
// outgoing (self-first) MST edge to, except those in skip. A LinkDecision
// whose edge is exactly the (self, neighbor) pair is a newly joined
// cross-fragment edge: instead of forwarding the bare decision across it,
// this node sends its full current MST so the other side of the edge can
// catch up on a subtree it has never seen. A DataBroadcast relay charges
// this node's energy budget for the hop and reports the transfer to
// Logger, if one is attached.
func (n *Node) floodTree(level int, payload message.Payload, skip map[int]bool) {
	for _, e := range n.mstFromMe() {
		other := e.V
		if skip[other] {
			continue
		}
		if payload.Kind == message.LinkDecision && payload.Edge.HasEndpoint(n.ID) && payload.Edge.HasEndpoint(other) {
			n.send(level, message.Payload{Kind: message.MyCurrentMST, Edges: n.MST()}, other)
			continue
		}
		if payload.Kind == message.DataBroadcast {
			cost := n.distanceTo(other) * BroadcastEnergyMultiplier
			n.decrementEnergy(cost)
			if n.Logger != nil {
				n.Logger.LogDataTransfer(n.ID, other, n.Energy())
			}
		}
		n.send(level, payload, other)
	}
}
