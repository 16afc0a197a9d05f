package node

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarasyov/synghs/fabric"
	"github.com/mkarasyov/synghs/geo"
	"github.com/mkarasyov/synghs/message"
)

// TestApplyElectionRuleMaximumIDWins mirrors spec.md §8 scenario 4: a
// single-node fragment with the largest id merging against an old leader
// with a smaller id must end the round elected, and the old leader must
// lose leadership.
func TestApplyElectionRuleMaximumIDWins(t *testing.T) {
	fab := fabric.New()
	small := New(2, geo.Point{}, 100, 1, fab)
	big := New(9, geo.Point{}, 100, 1, fab)

	assert.True(t, small.applyElectionRule(9))
	assert.False(t, small.IsLeader())
	assert.False(t, small.IsElected())

	assert.True(t, big.applyElectionRule(2))
	assert.True(t, big.IsLeader())
	assert.True(t, big.IsElected())
}

func TestApplyElectionRuleDuplicateProposalNotReaccepted(t *testing.T) {
	fab := fabric.New()
	n := New(5, geo.Point{}, 100, 1, fab)
	assert.True(t, n.applyElectionRule(7))
	assert.False(t, n.applyElectionRule(7), "same proposal value seen twice in a round must not re-accept")
}

func TestMergeResetsElectedForEveryNode(t *testing.T) {
	fab := fabric.New()
	n := New(1, geo.Point{}, 100, 1, fab)
	n.mu.Lock()
	n.elected = true
	n.mu.Unlock()
	n.setLeader(false)

	fab.Mailbox(1).Send(message.Envelope{Tag: message.Beacon})
	n.Merge(0)
	assert.False(t, n.IsElected())
}
