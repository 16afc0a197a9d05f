package node

import (
	"math"

	"github.com/mkarasyov/synghs/event"
	"github.com/mkarasyov/synghs/geo"
	"github.com/mkarasyov/synghs/message"
)

// ChooseBestLink runs one level's cheapest-link selection for this node. A
// fragment leader kicks off the FindCheapestLink flood, gathers the result,
// and (if a cross-fragment edge exists) announces and records the decision
// before every node in the fragment drains the resulting LinkDecision /
// MyCurrentMST traffic.
func (n *Node) ChooseBestLink(level int, eq *event.Queue) {
	if n.IsLeader() {
		n.floodTree(level, message.Payload{Kind: message.FindCheapestLink}, nil)
	}
	cheapest := n.ReceiveCheapestLink(level)
	if n.IsLeader() && !math.IsInf(cheapest.Cost, 1) {
		eq.Push(event.Event{Kind: event.Log, Edge: cheapest.Edge})
		n.AddLinkToMST(cheapest.Edge, level, -1)
		n.floodTree(level, message.Payload{Kind: message.LinkDecision, Edge: cheapest.Edge}, nil)
	}
	n.ReceiveNeighbor(level)
}

// findCheapestLink returns the locally-cheapest outgoing edge to a radio
// neighbor not already connected through this node's known MST, or a
// Candidate with Cost=+Inf if none exists.
func (n *Node) findCheapestLink() message.Candidate {
	best := message.Candidate{Cost: math.Inf(1)}
	for _, nb := range n.Neighbors() {
		if n.hasEdgeEndpoint(nb.ID) {
			continue
		}
		cand := message.Candidate{
			Cost: geo.Distance(n.Pos, nb.Pos),
			Edge: message.Edge{U: n.ID, V: nb.ID},
		}
		if cand.Less(best) {
			best = cand
		}
	}
	return best
}

func (n *Node) hasEdgeEndpoint(id int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, e := range n.mst {
		if e.HasEndpoint(id) {
			return true
		}
	}
	return false
}

// ReceiveCheapestLink gathers MyCheapestLink replies from every subtree
// reachable through this node's in-tree links, relaying FindCheapestLink
// floods onward and folding the best observed candidate against its own.
// LinkDecision / MyCurrentMST traffic arriving early is deferred to the
// tail of the mailbox, per the reordering rule: those belong to the next
// subphase and must not be consumed here.
func (n *Node) ReceiveCheapestLink(level int) message.Candidate {
	expected := n.InTreeDegree()
	best := n.findCheapestLink()
	replyTo := -1

	for expected > 0 {
		msg := n.mb.Recv()
		if msg.Tag != message.Neighbor {
			continue
		}
		n.mb.SetBusy(true)
		switch msg.Payload.Kind {
		case message.FindCheapestLink:
			n.floodTree(level, msg.Payload, exceptSet(msg.SenderID))
			replyTo = msg.SenderID
			expected--
		case message.MyCheapestLink:
			if msg.Payload.Candidate.Less(best) {
				best = msg.Payload.Candidate
			}
			expected--
		case message.LinkDecision, message.MyCurrentMST:
			n.mb.Requeue(msg)
		}
		n.mb.SetBusy(false)
	}

	if !n.IsLeader() && replyTo >= 0 {
		n.send(level, message.Payload{Kind: message.MyCheapestLink, Candidate: best}, replyTo)
	}
	return best
}

// AddLinkToMST records edge in this node's locally-known MST if it
// qualifies: either both endpoints are already radio neighbors of this node
// (an intra-fragment edge seen via flood, recorded as-is) or this node is
// one of the edge's endpoints (recorded self-first). senderID, when
// non-negative, is replied to with this node's current MST snapshot so the
// other side of a freshly joined edge learns what it connects to. Returns
// whether the edge was newly recorded.
func (n *Node) AddLinkToMST(e message.Edge, level int, senderID int) bool {
	if n.hasEdge(e) {
		return false
	}
	if n.isNeighbor(e.U) && n.isNeighbor(e.V) {
		n.appendMST(e)
		return true
	}
	var oriented message.Edge
	switch n.ID {
	case e.U:
		oriented = e
	case e.V:
		oriented = message.Edge{U: e.V, V: e.U}
	default:
		return false
	}
	if senderID >= 0 {
		n.send(level, message.Payload{Kind: message.MyCurrentMST, Edges: n.MST()}, senderID)
	}
	n.appendMST(oriented)
	return true
}
