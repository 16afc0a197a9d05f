// Package lifecycle implements node death handling and MST rebuild: after
// any phase that can spend energy (currently, broadcast), the roster is
// checked for nodes that dropped below their minimum budget, those nodes
// are purged from the fabric, and every surviving node is reset to a fresh
// fragment-of-one before the orchestrator reruns discovery and GHS from
// scratch over the smaller roster.
package lifecycle

import (
	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/message"
	"github.com/mkarasyov/synghs/node"
	"github.com/mkarasyov/synghs/orchestrator"
)

// DeadNodes returns the ids of every node in nodes that is no longer
// alive.
func DeadNodes(nodes []*node.Node) []int {
	var dead []int
	for _, n := range nodes {
		if !n.IsAlive() {
			dead = append(dead, n.ID)
		}
	}
	return dead
}

// Purge removes dead nodes from the roster and from fab, returning the
// surviving subset in their original relative order.
func Purge(nodes []*node.Node, fab *fabric.Fabric) []*node.Node {
	survivors := make([]*node.Node, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsAlive() {
			fab.Remove(n.ID)
			continue
		}
		survivors = append(survivors, n)
	}
	return survivors
}

// Rebuild resets every surviving node to a fresh fragment-of-one and
// reruns discovery and the GHS level loop over the roster, as required
// whenever a node has died since the tree was last built. It drops no
// nodes itself and returns nothing; callers call Purge first to remove dead
// nodes from the roster and the fabric.
func Rebuild(survivors []*node.Node, opts orchestrator.Options, onEdge func(message.Edge), onLevelStart func([]int), onElected func(int)) {
	for _, n := range survivors {
		n.Clean()
	}
	orchestrator.RunDiscovery(survivors, opts.Fabric, opts.ResolveDetector())
	orchestrator.FindMST(survivors, opts, onEdge, onLevelStart, onElected)
}
