// Package input parses the simulation's scenario file format: a first
// line giving the minimum energy budget every node must stay above, any
// number of "node" lines describing the roster, and any number of "bcst"
// lines each requesting one broadcast originating at a given node id.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkarasyov/synghs/geo"
)

// NodeSpec is one parsed "node" line.
type NodeSpec struct {
	ID     int
	Pos    geo.Point
	Energy float64
}

// Scenario is the fully parsed contents of a scenario file.
type Scenario struct {
	MinBudget float64
	Nodes     []NodeSpec
	Bcsts     []int // origin node id of each requested broadcast, in file order
}

// Parse reads a scenario from r.
//
// Format, one directive per line:
//
//	<min budget>
//	node <id>, <x>, <y> <energy>
//	bcst <ignored> <id>
//
// id, x and y carry a trailing comma that is stripped; energy does not.
// Blank lines are skipped; any other line is rejected.
func Parse(r io.Reader) (Scenario, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return Scenario{}, fmt.Errorf("input: empty scenario file")
	}
	minBudget, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
	if err != nil {
		return Scenario{}, fmt.Errorf("input: parsing minimum budget: %w", err)
	}

	var sc Scenario
	sc.MinBudget = minBudget

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "node":
			spec, err := parseNodeLine(fields)
			if err != nil {
				return Scenario{}, fmt.Errorf("input: line %d: %w", lineNo, err)
			}
			sc.Nodes = append(sc.Nodes, spec)
		case "bcst":
			id, err := parseBcstLine(fields)
			if err != nil {
				return Scenario{}, fmt.Errorf("input: line %d: %w", lineNo, err)
			}
			sc.Bcsts = append(sc.Bcsts, id)
		default:
			return Scenario{}, fmt.Errorf("input: line %d: unrecognized directive %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return Scenario{}, fmt.Errorf("input: reading scenario: %w", err)
	}
	return sc, nil
}

func parseNodeLine(fields []string) (NodeSpec, error) {
	if len(fields) != 5 {
		return NodeSpec{}, fmt.Errorf("expected 5 fields for a node line, got %d", len(fields))
	}
	id, err := strconv.Atoi(trimTrailingComma(fields[1]))
	if err != nil {
		return NodeSpec{}, fmt.Errorf("parsing node id: %w", err)
	}
	x, err := strconv.ParseFloat(trimTrailingComma(fields[2]), 64)
	if err != nil {
		return NodeSpec{}, fmt.Errorf("parsing node x: %w", err)
	}
	y, err := strconv.ParseFloat(trimTrailingComma(fields[3]), 64)
	if err != nil {
		return NodeSpec{}, fmt.Errorf("parsing node y: %w", err)
	}
	energy, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return NodeSpec{}, fmt.Errorf("parsing node energy: %w", err)
	}
	return NodeSpec{ID: id, Pos: geo.Point{X: x, Y: y}, Energy: energy}, nil
}

func parseBcstLine(fields []string) (int, error) {
	if len(fields) != 3 {
		return 0, fmt.Errorf("expected 3 fields for a bcst line, got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("parsing bcst origin id: %w", err)
	}
	return id, nil
}

func trimTrailingComma(s string) string {
	return strings.TrimSuffix(s, ",")
}
