package game

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Clone produces a fully isolated copy of the game for forecasting. The
// account arena, entity table, property table and decks are copied; every
// player's policy is swapped for the inert simulation policy so a simulated
// player can never spawn a nested simulation; records land in a fresh
// simulation run partition; and the logger is silenced. The board layout is
// shared because it is immutable.
func (g *Game) Clone() *Game {
	c := &Game{
		cfg:        g.cfg,
		layout:     g.layout,
		led:        g.led.Clone(),
		pool:       g.pool,
		turn:       g.turn,
		lastRoll:   g.lastRoll,
		completed:  g.completed,
		runID:      newRunID(),
		simulation: true,
		rng:        rand.New(rand.NewSource(g.rng.Int63())),
		log:        zerolog.Nop(),
	}

	c.entities = make([]Entity, len(g.entities))
	copy(c.entities, g.entities)
	for i := range c.entities {
		hist := make([]string, len(g.entities[i].History))
		copy(hist, g.entities[i].History)
		c.entities[i].History = hist
		c.entities[i].Policy = noop{}
	}

	c.props = make([]PropertyState, len(g.props))
	copy(c.props, g.props)

	c.chance = g.chance.clone(c.rng)
	c.chest = g.chest.clone(c.rng)

	return c
}
