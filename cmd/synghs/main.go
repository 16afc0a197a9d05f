// Command synghs runs the synchronous GHS distributed MST simulation over
// a scenario file: it builds the node roster, discovers radio neighbors,
// computes the minimum spanning tree, then replays every requested
// broadcast in order, rebuilding the tree whenever a node runs out of
// energy.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mkarasyov/synghs/eventlog"
	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/input"
	"github.com/mkarasyov/synghs/lifecycle"
	"github.com/mkarasyov/synghs/message"
	"github.com/mkarasyov/synghs/node"
	"github.com/mkarasyov/synghs/orchestrator"
)

const usageStr = "usage: synghs <scenario-file>\n"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprint(os.Stderr, usageStr)
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		log.Fatal(err)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("synghs: %w", err)
	}
	defer f.Close()

	scenario, err := input.Parse(f)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile("log.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("synghs: %w", err)
	}
	defer logFile.Close()
	logger := eventlog.New(logFile)
	defer logger.Flush()

	fab := fabric.New()
	nodes := make([]*node.Node, len(scenario.Nodes))
	for i, spec := range scenario.Nodes {
		n := node.New(spec.ID, spec.Pos, spec.Energy, scenario.MinBudget, fab)
		n.Logger = logger
		nodes[i] = n
	}

	opts := orchestrator.Options{Fabric: fab}
	orchestrator.RunDiscovery(nodes, fab, opts.ResolveDetector())
	orchestrator.FindMST(nodes, opts,
		func(e message.Edge) { logger.LogEdgeAdded(e.U, e.V) },
		logger.LogLevelLeaders,
		logger.LogElected,
	)

	if len(scenario.Bcsts) > 0 {
		nodes = rebuildIfDead(nodes, fab, opts, logger)
	}

	roster := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		roster[n.ID] = true
	}

	for _, origin := range scenario.Bcsts {
		if !roster[origin] {
			continue
		}
		orchestrator.Broadcast(nodes, origin, opts)
		nodes = rebuildIfDead(nodes, fab, opts, logger)
		roster = make(map[int]bool, len(nodes))
		for _, n := range nodes {
			roster[n.ID] = true
		}
	}

	logger.Flush()
	return nil
}

func rebuildIfDead(nodes []*node.Node, fab *fabric.Fabric, opts orchestrator.Options, logger *eventlog.Logger) []*node.Node {
	dead := lifecycle.DeadNodes(nodes)
	if len(dead) == 0 {
		return nodes
	}
	for _, id := range dead {
		logger.LogNodeDown(id)
	}
	survivors := lifecycle.Purge(nodes, fab)
	lifecycle.Rebuild(survivors, opts,
		func(e message.Edge) { logger.LogEdgeAdded(e.U, e.V) },
		logger.LogLevelLeaders,
		logger.LogElected,
	)
	return survivors
}
