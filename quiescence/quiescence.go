// Package quiescence implements the Quiescence Detector: the orchestrator
// runs one of these alongside each phase to inject a termination sentinel
// once every mailbox has been empty and idle for a sustained observation
// window. GHS gives no node a way to know locally whether it has received
// every message of a round — only the detector, watching all mailboxes at
// once, can break that symmetry.
package quiescence

import (
	"time"

	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/message"
)

// DefaultCheck is the default number of consecutive idle observations
// required before a phase is declared quiescent.
const DefaultCheck = 10

// pollInterval paces the detector's polling loop so it does not spin the
// CPU while still reacting promptly to new traffic.
const pollInterval = 50 * time.Microsecond

// Detector polls a Fabric's mailboxes for sustained idleness.
type Detector struct {
	Check int // consecutive idle observations required; DefaultCheck if zero
}

// New returns a Detector configured with check observations; check<=0
// selects DefaultCheck.
func New(check int) *Detector {
	if check <= 0 {
		check = DefaultCheck
	}
	return &Detector{Check: check}
}

// Run polls f's mailboxes until every one has been simultaneously idle for
// Check consecutive observations, then delivers sentinel into each
// registered mailbox exactly once and returns. Intended to run in its own
// goroutine alongside a phase's per-node workers.
//
// Per the design notes, the idle counter resets to Check on any sign of
// activity and otherwise decrements unconditionally — including on the very
// first observation after a reset — so a single lucky empty snapshot can
// start the countdown immediately. This matches the reference behavior and
// is deliberately preserved.
func (d *Detector) Run(f *fabric.Fabric, sentinel message.Envelope) {
	check := d.Check
	if check <= 0 {
		check = DefaultCheck
	}
	remaining := check
	for remaining > 0 {
		if allQuiescent(f) {
			remaining--
		} else {
			remaining = check
		}
		if remaining > 0 {
			time.Sleep(pollInterval)
		}
	}
	for _, mb := range f.Mailboxes() {
		mb.Send(sentinel)
	}
}

func allQuiescent(f *fabric.Fabric) bool {
	for _, mb := range f.Mailboxes() {
		if !mb.Quiescent() {
			return false
		}
	}
	return true
}
