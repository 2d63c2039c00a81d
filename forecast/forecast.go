// Package forecast estimates a player's near-term monetary exposure by
// replaying each reachable square against an isolated clone of the game.
// Nothing the simulation does leaks back: every clone has its own account
// arena, its own audit partition, and inert policies.
package forecast

import (
	"sort"

	"github.com/scarybot/monotony/game"
)

// Distribution is the sorted signed outcomes of landing on each of the next
// squares: credits positive, debits negative.
type Distribution struct {
	Outcomes []int
}

// Worst returns the most negative outcome (0 for an empty distribution).
func (d Distribution) Worst() int {
	if len(d.Outcomes) == 0 {
		return 0
	}
	return d.Outcomes[0]
}

// Best returns the most positive outcome.
func (d Distribution) Best() int {
	if len(d.Outcomes) == 0 {
		return 0
	}
	return d.Outcomes[len(d.Outcomes)-1]
}

// Expected returns the mean outcome.
func (d Distribution) Expected() float64 {
	if len(d.Outcomes) == 0 {
		return 0
	}
	sum := 0
	for _, v := range d.Outcomes {
		sum += v
	}
	return float64(sum) / float64(len(d.Outcomes))
}

// Exposure simulates the player landing on each of the next squares, one
// clone per distance up to the maximum dice total, and collects the net
// amount the player would pay or receive at each.
func Exposure(g *game.Game, player game.EntityID) Distribution {
	var outcomes []int
	for steps := 1; steps <= g.MaxRoll(); steps++ {
		c := g.Clone()
		c.ForceRoll(steps)
		c.Advance(player, steps)
		outcomes = append(outcomes, netFlow(c, player))
	}
	sort.Ints(outcomes)
	return Distribution{Outcomes: outcomes}
}

// netFlow sums the simulated transactions touching the player within the
// clone's run partition, credits positive.
func netFlow(c *game.Game, player game.EntityID) int {
	acct := c.Entity(player).Account
	net := 0
	for _, t := range c.Ledger().Run(c.RunID()) {
		if t.To == acct {
			net += t.Paid
		}
		if t.From == acct {
			net -= t.Paid
		}
	}
	return net
}
