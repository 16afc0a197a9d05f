// Package eventlog writes the simulation's fixed, line-oriented event
// trace: one line per level's leader roster, edge addition, leader
// election, node death, and data relay. The format is a small ad hoc text
// protocol
// with no self-description or versioning, so it is written directly with
// bufio/os rather than through a structured logging framework — there is
// no structure here for a framework to add value to, just fixed strings.
package eventlog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Logger appends event lines to an underlying writer. It is safe for
// concurrent use; node agents call LogDataTransfer directly from inside
// their flood routine, potentially from many goroutines during a single
// broadcast phase.
type Logger struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// New wraps w in a buffered Logger. Callers own w's lifecycle; call Flush
// before closing it.
func New(w io.Writer) *Logger {
	return &Logger{w: bufio.NewWriter(w)}
}

// Flush writes any buffered lines to the underlying writer.
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Flush()
}

func (l *Logger) writeLine(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, line)
}

// LogLevelLeaders records the roster of fragment-leader ids present at the
// start of a level's cheapest-link phase, as a comma-separated list:
// "bs 1,2,3".
func (l *Logger) LogLevelLeaders(ids []int) {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(id)
	}
	l.writeLine("bs " + strings.Join(strs, ","))
}

// LogEdgeAdded records a newly accepted MST edge: "added <u>-<v>", with
// endpoints in canonical (min, max) order.
func (l *Logger) LogEdgeAdded(u, v int) {
	if u > v {
		u, v = v, u
	}
	l.writeLine(fmt.Sprintf("added %d-%d", u, v))
}

// LogElected records the id of a newly settled fragment leader.
func (l *Logger) LogElected(id int) {
	l.writeLine(fmt.Sprintf("elected %d", id))
}

// LogNodeDown records a node dropping out of the simulation once its
// energy budget is exhausted.
func (l *Logger) LogNodeDown(id int) {
	l.writeLine(fmt.Sprintf("node down %d", id))
}

// LogDataTransfer records one broadcast relay hop and the sender's
// remaining energy afterward. It satisfies node.DataLogger.
func (l *Logger) LogDataTransfer(from, to int, energy float64) {
	l.writeLine(fmt.Sprintf("data from %d to %d, energy:%s", from, to, formatEnergy(energy)))
}

func formatEnergy(e float64) string {
	return strconv.FormatFloat(e, 'f', -1, 64)
}
