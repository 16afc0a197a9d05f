// Package event implements the orchestrator-private event queue that
// node workers use to report discovery broadcasts and newly chosen MST
// edges back to the Round Orchestrator between phases.
package event

import (
	"sync"

	"github.com/mkarasyov/synghs/geo"
	"github.com/mkarasyov/synghs/message"
)

// Kind distinguishes the two event shapes the orchestrator consumes.
type Kind int

const (
	// Discover reports a node's broadcast position during neighbor discovery.
	Discover Kind = iota
	// Log reports a cheapest-link edge accepted into the MST this level.
	Log
)

// Event is one entry on the orchestrator's event queue.
type Event struct {
	Kind   Kind
	NodeID int
	Pos    geo.Point
	Edge   message.Edge
}

// Queue is a thread-safe FIFO of Event, safe for concurrent Push from many
// node goroutines and Drain from the orchestrator.
type Queue struct {
	mu    sync.Mutex
	items []Event
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends e to the queue.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.items = append(q.items, e)
	q.mu.Unlock()
}

// Drain atomically removes and returns every queued event, leaving the
// queue empty.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Len reports the number of currently queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
