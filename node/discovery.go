package node

import (
	"github.com/mkarasyov/synghs/event"
	"github.com/mkarasyov/synghs/message"
)

// Discover reports this node's position to the orchestrator's event queue
// so the discovery phase can route in-range Discover envelopes to it from
// every other surviving node.
func (n *Node) Discover(eq *event.Queue) {
	eq.Push(event.Event{Kind: event.Discover, NodeID: n.ID, Pos: n.Pos})
}

// DiscoverResponse drains Discover/DiscoverResponse traffic until the phase
// Beacon arrives, replying to every Discover and recording every
// DiscoverResponse as a confirmed neighbor.
func (n *Node) DiscoverResponse() {
	for {
		msg := n.mb.Recv()
		if msg.Tag == message.Beacon {
			return
		}
		n.mb.SetBusy(true)
		switch msg.Tag {
		case message.Discover:
			n.fab.Send(msg.SenderID, message.Envelope{
				Tag:       message.DiscoverResponse,
				SenderID:  n.ID,
				SenderPos: n.Pos,
			})
		case message.DiscoverResponse:
			n.addNeighbor(msg.SenderID, msg.SenderPos)
		}
		n.mb.SetBusy(false)
	}
}
