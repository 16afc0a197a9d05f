package node

import "github.com/mkarasyov/synghs/message"

// StartBcst runs the data-broadcast phase: if this node is the broadcast's
// origin, it floods a DataBroadcast down its tree; every node then drains
// the resulting relay traffic until the phase Beacon arrives. A surviving
// broadcast flood spends energy at every relaying node, so IsAlive may
// flip false over the course of this call.
func (n *Node) StartBcst(senderID int) {
	if n.ID == senderID {
		n.floodTree(0, message.Payload{Kind: message.DataBroadcast}, nil)
	}
	n.ReceiveNeighbor(0)
}
