package eventlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.LogLevelLeaders([]int{1, 2, 3})
	l.LogEdgeAdded(4, 2)
	l.LogElected(7)
	l.LogNodeDown(9)
	l.LogDataTransfer(1, 2, 3.5)
	require.NoError(t, l.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "bs 1,2,3", lines[0])
	assert.Equal(t, "added 2-4", lines[1])
	assert.Equal(t, "elected 7", lines[2])
	assert.Equal(t, "node down 9", lines[3])
	assert.Equal(t, "data from 1 to 2, energy:3.5", lines[4])
}

func TestLoggerConcurrentWritesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func(i int) {
			l.LogDataTransfer(i, i+1, float64(i))
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 50; i++ {
		<-done
	}
	require.NoError(t, l.Flush())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 50)
}
