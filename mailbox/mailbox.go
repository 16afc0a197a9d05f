// Package mailbox implements the per-node FIFO message queue described by
// the simulation: any node may deliver into it (multi-producer), only its
// owner dequeues from it (single-consumer). It replaces the Python
// Queue.Queue plus the "care" self-marker with a condition-variable queue
// and an explicit busy flag, per the allowance in the design notes.
package mailbox

import (
	"sync"

	"github.com/mkarasyov/synghs/message"
)

// Mailbox is a thread-safe, unbounded FIFO queue of message.Envelope.
type Mailbox struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []message.Envelope
	busy  bool
}

// New returns an empty Mailbox.
func New() *Mailbox {
	mb := &Mailbox{}
	mb.cond = sync.NewCond(&mb.mu)
	return mb
}

// Send enqueues msg at the tail. Never blocks.
func (mb *Mailbox) Send(msg message.Envelope) {
	mb.mu.Lock()
	mb.queue = append(mb.queue, msg)
	mb.mu.Unlock()
	mb.cond.Signal()
}

// Requeue re-enqueues msg at the tail, exactly like Send. It exists as a
// distinct name so call sites document the "reordering" intent: deferring a
// message until the end of the current subphase, per the link_decision /
// my_current_mst reordering rule.
func (mb *Mailbox) Requeue(msg message.Envelope) {
	mb.Send(msg)
}

// Recv blocks until a message is available and returns it, FIFO order.
func (mb *Mailbox) Recv() message.Envelope {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for len(mb.queue) == 0 {
		mb.cond.Wait()
	}
	msg := mb.queue[0]
	mb.queue = mb.queue[1:]
	return msg
}

// Empty reports whether the queue currently holds no messages. Used by the
// Quiescence Detector; it does not consume anything.
func (mb *Mailbox) Empty() bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return len(mb.queue) == 0
}

// SetBusy marks the owning node as mid-handler (true) or idle (false). The
// Quiescence Detector treats a busy node the same as a non-empty mailbox.
func (mb *Mailbox) SetBusy(busy bool) {
	mb.mu.Lock()
	mb.busy = busy
	mb.mu.Unlock()
}

// Busy reports the current busy flag.
func (mb *Mailbox) Busy() bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.busy
}

// Quiescent reports whether the mailbox is both empty and idle — the
// condition the Quiescence Detector polls for.
func (mb *Mailbox) Quiescent() bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return len(mb.queue) == 0 && !mb.busy
}
