package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarasyov/synghs/geo"
)

func TestParseScenario(t *testing.T) {
	src := `5
node 1, 0, 0 100
node 2, 3.5, 4.5 50
bcst ignored 1

node 3, 10, 10 75
bcst x 2
`
	sc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 5.0, sc.MinBudget)
	require.Len(t, sc.Nodes, 3)

	assert.Equal(t, NodeSpec{ID: 1, Pos: geo.Point{X: 0, Y: 0}, Energy: 100}, sc.Nodes[0])
	assert.Equal(t, NodeSpec{ID: 2, Pos: geo.Point{X: 3.5, Y: 4.5}, Energy: 50}, sc.Nodes[1])
	assert.Equal(t, NodeSpec{ID: 3, Pos: geo.Point{X: 10, Y: 10}, Energy: 75}, sc.Nodes[2])
	assert.Equal(t, []int{1, 2}, sc.Bcsts)
}

func TestParseRejectsUnknownDirective(t *testing.T) {
	_, err := Parse(strings.NewReader("5\nfoo bar\n"))
	assert.Error(t, err)
}

func TestParseRejectsEmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseRejectsMalformedBudget(t *testing.T) {
	_, err := Parse(strings.NewReader("not-a-number\n"))
	assert.Error(t, err)
}
