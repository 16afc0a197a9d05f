package node

import "github.com/mkarasyov/synghs/message"

// Merge runs one level's leader-election subphase: the fragment leader
// floods its own id as the candidate leader of the just-merged fragment,
// and every node (leader included) then drains the resulting IDProposal /
// LinkDecision / MyCurrentMST / DataBroadcast traffic for the level.
func (n *Node) Merge(level int) {
	n.mu.Lock()
	n.elected = false
	n.acceptedID = n.ID
	n.mu.Unlock()
	if n.IsLeader() {
		n.floodTree(level, message.Payload{Kind: message.IDProposal, ProposedID: n.ID}, nil)
	}
	n.ReceiveNeighbor(level)
}

// applyElectionRule folds an incoming IDProposal into this node's election
// state: the maximum id present in the merged fragment wins. A proposal
// strictly larger than this node's own id means this node can no longer be
// (or become) the fragment leader; a proposal that is not larger leaves an
// existing leader's status untouched but marks it elected. Returns whether
// this particular proposal value is new information this round (it differs
// from the last id this node accepted since Merge reset it), so the caller
// knows whether to keep propagating it.
func (n *Node) applyElectionRule(proposedID int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if proposedID == n.acceptedID {
		return false
	}
	n.acceptedID = proposedID
	if proposedID > n.ID {
		n.leader = false
		n.elected = false
	} else if n.leader {
		n.elected = true
	}
	return true
}

// ReceiveNeighbor drains in-tree traffic for the level until the phase
// Beacon arrives, applying and relaying whatever it observes: link
// decisions extend this node's known MST, MyCurrentMST handshakes catch it
// up on a freshly joined neighbor's side of the tree, and IDProposal floods
// run the election rule before being relayed onward.
func (n *Node) ReceiveNeighbor(level int) {
	for {
		msg := n.mb.Recv()
		if msg.Tag == message.Beacon {
			return
		}
		if msg.Tag != message.Neighbor {
			continue
		}
		n.mb.SetBusy(true)
		switch msg.Payload.Kind {
		case message.LinkDecision:
			n.AddLinkToMST(msg.Payload.Edge, level, msg.SenderID)
			n.floodTree(level, message.Payload{Kind: message.LinkDecision, Edge: msg.Payload.Edge}, exceptSet(msg.SenderID))
		case message.MyCurrentMST:
			for _, e := range msg.Payload.Edges {
				if n.AddLinkToMST(e, level, msg.SenderID) {
					n.floodTree(level, message.Payload{Kind: message.LinkDecision, Edge: e}, exceptSet(msg.SenderID))
				}
			}
		case message.IDProposal:
			if n.applyElectionRule(msg.Payload.ProposedID) {
				n.floodTree(level, msg.Payload, exceptSet(msg.SenderID))
			}
		case message.DataBroadcast:
			n.floodTree(level, msg.Payload, exceptSet(msg.SenderID))
		}
		n.mb.SetBusy(false)
	}
}
