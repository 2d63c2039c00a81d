package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	alice := g.Players()[0]

	require.True(t, g.Buy(alice, 1))
	require.True(t, g.Buy(alice, 3))
	require.True(t, g.BuyHouses(1, 2))
	g.Advance(alice, 4) // Income Tax

	snap := g.Snapshot()
	assert.False(t, snap.Completed)
	assert.Equal(t, 200, snap.FreeParkingBalance)
	assert.Equal(t, 46, snap.PoolHouses)
	assert.Equal(t, 12, snap.PoolHotels)

	require.Len(t, snap.Players, 2)
	a := snap.Players[0]
	assert.Equal(t, "Alice", a.Name)
	assert.Equal(t, 4, a.Position)
	assert.Equal(t, "Income Tax", a.Square)
	assert.True(t, a.InGame)
	assert.Equal(t, []string{"Old Kent Road", "Whitechapel Road"}, a.Properties)

	// The snapshot is a copy: mutating it leaves the game alone.
	snap.Players[0].Properties[0] = "changed"
	assert.Equal(t, "Old Kent Road", g.Layout().Squares[1].Name)
}
