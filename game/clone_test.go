package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsIsolated(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	alice, bob := g.Players()[0], g.Players()[1]
	require.True(t, g.Buy(alice, 1))

	c := g.Clone()

	assert.True(t, c.Simulation())
	assert.NotEqual(t, "real", c.RunID())
	assert.Contains(t, c.RunID(), "sim-")
	assert.Equal(t, g.Balance(alice), c.Balance(alice))
	assert.Equal(t, alice, c.OwnerOf(1))

	// Mutating the clone leaves the live game alone.
	c.Entity(bob).Position = 20
	c.Advance(bob, 5)
	require.True(t, c.Buy(bob, 3))

	assert.Equal(t, 0, g.Entity(bob).Position)
	assert.Equal(t, EntityID(-1), g.OwnerOf(3))
	assert.Empty(t, g.Entity(bob).History)
}

func TestCloneTransactionsNeverMoveMoney(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	alice, bob := g.Players()[0], g.Players()[1]

	c := g.Clone()
	ok := c.Transact(alice, bob, 300, "simulated rent")
	assert.True(t, ok)

	// Recorded in the clone's partition, but no balance moved anywhere.
	assert.Equal(t, 1500, c.Balance(alice))
	assert.Equal(t, 1500, c.Balance(bob))

	recs := c.Ledger().Run(c.RunID())
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Simulation)
	assert.Equal(t, 300, recs[0].Paid)

	// Nothing leaked into the live game's audit trail.
	assert.Empty(t, g.Ledger().Run(c.RunID()))
	assert.Empty(t, g.Ledger().Run("real"))
}

func TestCloneRunIDsAreUnique(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	a, b := g.Clone(), g.Clone()
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestCloneSwapsPoliciesForInertOnes(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	alice := g.Players()[0]

	c := g.Clone()
	_, isNoop := c.Entity(alice).Policy.(noop)
	assert.True(t, isNoop)
}
