// Package orchestrator drives the synchronous round structure of the
// simulation: it spawns one goroutine per node per phase, runs a
// Quiescence Detector alongside each phase to know when to inject the
// termination Beacon, and joins on a sync.WaitGroup before moving to the
// next phase. It owns no GHS state itself — only the schedule.
package orchestrator

import (
	"sync"

	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/message"
	"github.com/mkarasyov/synghs/node"
	"github.com/mkarasyov/synghs/quiescence"
)

// RadioRadius is the maximum distance at which two nodes can hear each
// other during neighbor discovery.
const RadioRadius = 10.0

// Options configures a FindMST / Broadcast run.
type Options struct {
	Fabric   *fabric.Fabric
	Detector *quiescence.Detector // nil selects quiescence.New(0)
}

// ResolveDetector returns o.Detector, or a default-configured Detector if
// none was set. Exported so other packages driving phases directly (e.g.
// lifecycle, rebuilding discovery after a node death) can reuse the same
// resolution rule.
func (o Options) ResolveDetector() *quiescence.Detector {
	if o.Detector != nil {
		return o.Detector
	}
	return quiescence.New(0)
}

// AlertAll runs action concurrently for every node in nodes, with a
// Quiescence Detector watching fab and delivering sentinel into every
// mailbox once the phase goes idle. It blocks until every action
// goroutine has returned.
func AlertAll(nodes []*node.Node, fab *fabric.Fabric, det *quiescence.Detector, sentinel message.Envelope, action func(*node.Node)) {
	var wg sync.WaitGroup
	wg.Add(len(nodes))
	for _, n := range nodes {
		n := n
		go func() {
			defer wg.Done()
			action(n)
		}()
	}
	go det.Run(fab, sentinel)
	wg.Wait()
}

func aliveNodes(nodes []*node.Node) []*node.Node {
	out := make([]*node.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.IsAlive() {
			out = append(out, n)
		}
	}
	return out
}
