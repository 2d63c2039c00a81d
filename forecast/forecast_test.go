package forecast

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scarybot/monotony/board"
	"github.com/scarybot/monotony/game"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()

	g, err := game.NewGame(board.ClassicUK(), game.DefaultConfig(),
		[]game.PlayerSpec{{Name: "Alice"}, {Name: "Bob"}},
		game.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return g
}

func TestExposureCoversEveryReachableDistance(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	alice := g.Players()[0]

	dist := Exposure(g, alice)
	assert.Len(t, dist.Outcomes, g.MaxRoll())
	assert.True(t, sort.IntsAreSorted(dist.Outcomes))
}

func TestExposureSeesUpcomingCharges(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	alice := g.Players()[0]

	// From GO, a roll of 4 lands on Income Tax: £200 into the pot.
	dist := Exposure(g, alice)
	assert.LessOrEqual(t, dist.Worst(), -200)
	assert.GreaterOrEqual(t, dist.Best(), 0)
}

func TestExposureSeesRivalRent(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	alice, bob := g.Players()[0], g.Players()[1]

	require.True(t, g.Buy(bob, 1))
	require.True(t, g.Buy(bob, 3))
	require.True(t, g.BuyHouses(1, 4))
	require.True(t, g.BuyHotel(1))

	// A roll of 1 from GO now costs the hotel rent.
	dist := Exposure(g, alice)
	assert.LessOrEqual(t, dist.Worst(), -250)
}

func TestExposureLeavesTheGameUntouched(t *testing.T) {
	t.Parallel()

	g := newTestGame(t)
	alice := g.Players()[0]

	balBefore := g.Balance(alice)
	posBefore := g.Entity(alice).Position
	totalBefore := g.Ledger().Total()

	Exposure(g, alice)

	assert.Equal(t, balBefore, g.Balance(alice))
	assert.Equal(t, posBefore, g.Entity(alice).Position)
	assert.Equal(t, totalBefore, g.Ledger().Total())
	assert.Empty(t, g.Ledger().Transactions())
	assert.Equal(t, "real", g.RunID())
}

func TestDistributionStats(t *testing.T) {
	t.Parallel()

	d := Distribution{Outcomes: []int{-200, -50, 0, 0, 250}}
	assert.Equal(t, -200, d.Worst())
	assert.Equal(t, 250, d.Best())
	assert.InDelta(t, 0.0, d.Expected(), 1e-9)

	empty := Distribution{}
	assert.Equal(t, 0, empty.Worst())
	assert.Equal(t, 0, empty.Best())
	assert.Equal(t, 0.0, empty.Expected())
}
