package game

import (
	"math/rand"

	"github.com/scarybot/monotony/board"
)

// Deck is a shuffle-on-exhaustion card queue: drawing from an empty deck
// reshuffles the full set, so the sequence is infinite and never signals
// emptiness.
type Deck struct {
	rng       *rand.Rand
	full      []board.Card
	remaining []board.Card
}

func newDeck(cards []board.Card, rng *rand.Rand) *Deck {
	d := &Deck{rng: rng, full: cards}
	d.reshuffle()
	return d
}

func (d *Deck) reshuffle() {
	d.remaining = make([]board.Card, len(d.full))
	copy(d.remaining, d.full)
	d.rng.Shuffle(len(d.remaining), func(i, j int) {
		d.remaining[i], d.remaining[j] = d.remaining[j], d.remaining[i]
	})
}

// Draw takes the next card, reshuffling first if the deck ran out.
func (d *Deck) Draw() board.Card {
	if len(d.remaining) == 0 {
		d.reshuffle()
	}
	c := d.remaining[0]
	d.remaining = d.remaining[1:]
	return c
}

// Remaining reports how many cards are left before the next reshuffle.
func (d *Deck) Remaining() int { return len(d.remaining) }

func (d *Deck) clone(rng *rand.Rand) *Deck {
	c := &Deck{rng: rng, full: d.full}
	c.remaining = make([]board.Card, len(d.remaining))
	copy(c.remaining, d.remaining)
	return c
}
