// Package fabric implements the Message Fabric: the shared mapping from
// node identity to mailbox that lets any node agent deliver to any other by
// id alone. Per the concurrency model, the fabric is built once before a
// phase starts and is not mutated while workers are running; Register (via
// node.Clean) and Remove are only called between phases, from the
// orchestrator/lifecycle goroutine.
package fabric

import (
	"sync"

	"github.com/mkarasyov/synghs/mailbox"
	"github.com/mkarasyov/synghs/message"
)

// Fabric is the id -> mailbox directory shared by all node agents.
type Fabric struct {
	mu        sync.RWMutex
	mailboxes map[int]*mailbox.Mailbox
}

// New returns an empty Fabric.
func New() *Fabric {
	return &Fabric{mailboxes: make(map[int]*mailbox.Mailbox)}
}

// Register creates a fresh mailbox for id, replacing any existing one.
func (f *Fabric) Register(id int) *mailbox.Mailbox {
	f.mu.Lock()
	defer f.mu.Unlock()
	mb := mailbox.New()
	f.mailboxes[id] = mb
	return mb
}

// Remove drops id from the fabric entirely, e.g. once a node has died.
func (f *Fabric) Remove(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.mailboxes, id)
}

// Mailbox returns the mailbox registered for id, or nil if none exists.
func (f *Fabric) Mailbox(id int) *mailbox.Mailbox {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.mailboxes[id]
}

// Send delivers msg into id's mailbox. A non-existent id is silently
// dropped: it can only mean the destination has already died and been
// purged, which the broadcast/flood logic cannot observe synchronously.
func (f *Fabric) Send(id int, msg message.Envelope) {
	mb := f.Mailbox(id)
	if mb == nil {
		return
	}
	mb.Send(msg)
}

// Mailboxes returns a snapshot slice of every registered mailbox, used by
// the Quiescence Detector to poll for global idleness.
func (f *Fabric) Mailboxes() []*mailbox.Mailbox {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*mailbox.Mailbox, 0, len(f.mailboxes))
	for _, mb := range f.mailboxes {
		out = append(out, mb)
	}
	return out
}
