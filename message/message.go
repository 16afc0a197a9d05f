// Package message defines the tagged envelope and payload types exchanged
// through node mailboxes, replacing the original string-tagged tuples with
// a proper Go sum type dispatched on.
package message

import "github.com/mkarasyov/synghs/geo"

// Tag identifies the kind of envelope delivered to a mailbox.
type Tag int

const (
	// Beacon is the phase-termination sentinel injected by the Quiescence Detector.
	Beacon Tag = iota
	// Discover is a neighbor-discovery request.
	Discover
	// DiscoverResponse is a neighbor-discovery reply.
	DiscoverResponse
	// Neighbor carries an in-tree payload (see PayloadKind below).
	Neighbor
)

// PayloadKind identifies the sub-type of a Neighbor envelope's payload.
type PayloadKind int

const (
	// FindCheapestLink asks the fragment to locate its cheapest outgoing edge.
	FindCheapestLink PayloadKind = iota
	// MyCheapestLink carries a subtree's cheapest-link candidate back toward the leader.
	MyCheapestLink
	// LinkDecision announces the edge chosen by the fragment leader.
	LinkDecision
	// MyCurrentMST carries a node's full locally-known MST, used at fragment-merge handshakes.
	MyCurrentMST
	// IDProposal floods a candidate leader id during the merge phase.
	IDProposal
	// DataBroadcast carries application data down the tree during a broadcast.
	DataBroadcast
)

// Edge is an undirected MST edge. By convention, when a node stores an edge
// for which it is an endpoint, that endpoint is written into U.
type Edge struct {
	U int
	V int
}

// Canonical returns the edge with endpoints ordered (min, max), used for
// deduplication and log formatting.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// HasEndpoint reports whether id is one of the edge's endpoints.
func (e Edge) HasEndpoint(id int) bool {
	return e.U == id || e.V == id
}

// Candidate is a cheapest-link candidate: a cost paired with the edge it
// would add. Comparison is lexicographic on (Cost, (min(U,V), max(U,V))).
type Candidate struct {
	Cost float64
	Edge Edge
}

// Less reports whether c is strictly cheaper than other under the
// (cost, edge) lexicographic tie-break rule.
func (c Candidate) Less(other Candidate) bool {
	if c.Cost != other.Cost {
		return c.Cost < other.Cost
	}
	ca, co := c.Edge.Canonical(), other.Edge.Canonical()
	if ca.U != co.U {
		return ca.U < co.U
	}
	return ca.V < co.V
}

// Payload is the tagged union carried by a Neighbor envelope.
type Payload struct {
	Kind       PayloadKind
	Candidate  Candidate // MyCheapestLink
	Edge       Edge      // LinkDecision
	Edges      []Edge    // MyCurrentMST
	ProposedID int       // IDProposal
}

// Envelope is the unit of delivery through a mailbox.
type Envelope struct {
	Tag       Tag
	SenderID  int
	SenderPos geo.Point
	Level     int
	Payload   Payload
}
