// Package node implements the Node Agent: the per-vertex goroutine worker
// that runs the GHS handlers over its mailbox. Each exported method here
// corresponds to one phase of a round and is meant to be invoked from its
// own goroutine, synchronized by the orchestrator's join barriers.
package node

import (
	"sync"

	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/geo"
	"github.com/mkarasyov/synghs/mailbox"
	"github.com/mkarasyov/synghs/message"
)

// BroadcastEnergyMultiplier scales Euclidean hop distance into the energy
// cost charged against the sender for one broadcast relay.
const BroadcastEnergyMultiplier = 1.2

// DataLogger receives one record per broadcast relay. Node calls it directly
// because the original GHS simulation logs from inside the flood routine
// rather than at an outer boundary; nil is a valid DataLogger (no-op).
type DataLogger interface {
	LogDataTransfer(from, to int, energy float64)
}

// Neighbor is a node discovered to be within radio range.
type Neighbor struct {
	ID  int
	Pos geo.Point
}

// Node is one vertex's simulation state plus its mailbox handle. All fields
// guarded by mu may be read or written concurrently by the node's own
// handler goroutine and by the orchestrator between phases; exported
// accessors take the lock so callers never touch them directly.
type Node struct {
	ID        int
	Pos       geo.Point
	MinBudget float64

	fab    *fabric.Fabric
	mb     *mailbox.Mailbox
	Logger DataLogger

	mu         sync.RWMutex
	energy     float64
	leader     bool
	elected    bool
	acceptedID int
	alive      bool
	neighbors  []Neighbor
	mst        []message.Edge // self-first oriented: U is always this node's ID when present
}

// New constructs a Node, registers its mailbox with fab, and starts it as
// its own fragment leader (the initial state of every GHS fragment).
func New(id int, pos geo.Point, energy, minBudget float64, fab *fabric.Fabric) *Node {
	n := &Node{
		ID:        id,
		Pos:       pos,
		MinBudget: minBudget,
		fab:       fab,
		energy:    energy,
		leader:    true,
		alive:     true,
	}
	n.mb = fab.Register(id)
	return n
}

// Mailbox returns the node's current mailbox handle.
func (n *Node) Mailbox() *mailbox.Mailbox { return n.mb }

// IsAlive reports whether the node still has budget to participate.
func (n *Node) IsAlive() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.alive
}

// IsLeader reports whether the node currently considers itself the leader
// of its fragment.
func (n *Node) IsLeader() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.leader
}

// setLeader sets the leader flag.
func (n *Node) setLeader(v bool) {
	n.mu.Lock()
	n.leader = v
	n.mu.Unlock()
}

// IsElected reports whether the node, still a leader, has seen a candidate
// leader id no larger than its own during the current merge round, i.e. it
// is the newly elected leader of its merged fragment.
func (n *Node) IsElected() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.elected
}

func (n *Node) setElected(v bool) {
	n.mu.Lock()
	n.elected = v
	n.mu.Unlock()
}

// Energy returns the node's current remaining energy budget.
func (n *Node) Energy() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.energy
}

func (n *Node) decrementEnergy(cost float64) {
	n.mu.Lock()
	n.energy -= cost
	dead := n.energy < n.MinBudget
	n.mu.Unlock()
	if dead {
		n.setAlive(false)
	}
}

func (n *Node) setAlive(v bool) {
	n.mu.Lock()
	n.alive = v
	n.mu.Unlock()
}

// Neighbors returns a snapshot of the node's discovered radio neighbors.
func (n *Node) Neighbors() []Neighbor {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Neighbor, len(n.neighbors))
	copy(out, n.neighbors)
	return out
}

func (n *Node) addNeighbor(id int, pos geo.Point) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, nb := range n.neighbors {
		if nb.ID == id {
			return
		}
	}
	n.neighbors = append(n.neighbors, Neighbor{ID: id, Pos: pos})
}

// isNeighbor reports whether id is a discovered radio neighbor of this
// node. A node is never its own neighbor, so this also rejects self ids.
func (n *Node) isNeighbor(id int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, nb := range n.neighbors {
		if nb.ID == id {
			return true
		}
	}
	return false
}

func (n *Node) distanceTo(id int) float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, nb := range n.neighbors {
		if nb.ID == id {
			return geo.Distance(n.Pos, nb.Pos)
		}
	}
	return 0
}

// MST returns a snapshot of the node's locally-known MST edges, self-first
// oriented where this node is an endpoint.
func (n *Node) MST() []message.Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]message.Edge, len(n.mst))
	copy(out, n.mst)
	return out
}

// InTreeDegree returns the number of MST edges on which this node is the
// first (U) endpoint, i.e. the number of expected replies during a
// cheapest-link gather.
func (n *Node) InTreeDegree() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	count := 0
	for _, e := range n.mst {
		if e.U == n.ID {
			count++
		}
	}
	return count
}

// mstFromMe returns a snapshot copy, so floodTree's use of send/distanceTo
// on the result happens outside the lock this method holds.
func (n *Node) mstFromMe() []message.Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]message.Edge, 0, len(n.mst))
	for _, e := range n.mst {
		if e.U == n.ID {
			out = append(out, e)
		}
	}
	return out
}

func (n *Node) hasEdge(e message.Edge) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, x := range n.mst {
		if x == e || x == (message.Edge{U: e.V, V: e.U}) {
			return true
		}
	}
	return false
}

func (n *Node) appendMST(e message.Edge) {
	n.mu.Lock()
	n.mst = append(n.mst, e)
	n.mu.Unlock()
}

// Clean resets the node to a fresh fragment leader with an empty mailbox,
// for the lifecycle rebuild that follows a node death. The new mailbox is
// registered with the node's fabric, replacing the old one, and returned.
func (n *Node) Clean() *mailbox.Mailbox {
	n.mu.Lock()
	n.leader = true
	n.elected = false
	n.neighbors = nil
	n.mst = nil
	n.mu.Unlock()
	n.mb = n.fab.Register(n.ID)
	return n.mb
}

func exceptSet(id int) map[int]bool {
	if id < 0 {
		return nil
	}
	return map[int]bool{id: true}
}

func (n *Node) send(level int, payload message.Payload, to int) {
	n.fab.Send(to, message.Envelope{
		Tag:      message.Neighbor,
		SenderID: n.ID,
		Level:    level,
		Payload:  payload,
	})
}
