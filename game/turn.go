package game

import (
	"fmt"

	"github.com/scarybot/monotony/board"
)

// Play runs rounds until the game completes or the turn budget runs out,
// and reports whether the game completed.
func (g *Game) Play(turnBudget int) bool {
	if g.completed {
		g.log.Info().Msg("game is already complete")
		return true
	}
	for i := 0; i < turnBudget && !g.completed; i++ {
		g.playRound()
	}
	return g.completed
}

// playRound gives every active player one turn, then checks for a winner.
func (g *Game) playRound() {
	g.turn++
	g.log.Info().Int("turn", g.turn).Msg("round begins")

	for _, p := range g.Players() {
		if !g.entities[p].InGame {
			continue
		}
		g.takeTurn(p)
		if g.completed {
			return
		}
	}

	if active := g.ActivePlayers(); len(active) == 1 {
		winner := &g.entities[active[0]]
		g.log.Info().
			Str("player", winner.Name).
			Int("balance", g.Balance(active[0])).
			Msg("won the game")
		g.completed = true
	}
}

// takeTurn drives one player through maintenance, the roll, jail, movement
// and the landed square. A double repeats the loop for the same player.
func (g *Game) takeTurn(p EntityID) {
	for {
		e := &g.entities[p]
		if !e.InGame || g.completed {
			return
		}

		g.maintenance(p)

		total, double := g.rollDice(p)
		g.lastRoll = total

		if e.InJail {
			if double {
				g.log.Info().Str("player", e.Name).Msg("rolled a double, out of jail")
				e.InJail = false
				e.TurnsInJail = 0
			} else {
				e.TurnsInJail++
				g.log.Info().Str("player", e.Name).Int("turns", e.TurnsInJail).Msg("still in jail")
				if e.TurnsInJail < g.cfg.MaxTurnsInJail {
					return
				}
				e.InJail = false
				e.TurnsInJail = 0
				g.Transact(p, FreeParking, g.cfg.JailFine, "jail release fine")
				g.log.Info().Str("player", e.Name).Msg("paid out of jail")
				if !e.InGame {
					return
				}
			}
		}

		g.Advance(p, total)

		if !double {
			return
		}
		g.log.Debug().Str("player", e.Name).Msg("double, rolling again")
	}
}

// maintenance lets the player's policy act on its estate before the roll:
// lift mortgages, build, propose trades, and consider the jail card.
func (g *Game) maintenance(p EntityID) {
	e := &g.entities[p]
	owned := g.PropertiesOf(p)

	for _, sq := range owned {
		s := g.layout.Squares[sq]
		st := g.props[sq]

		if st.Mortgaged {
			if g.Balance(p) > g.Cost(sq) {
				g.consult(p, PointUnmortgage, s.Name)
				e.Policy.ConsiderUnmortgage(g, p, sq)
			}
			continue
		}
		if s.Kind != board.BasicProperty || !g.SetFullyOwned(sq) || st.Hotels > 0 {
			continue
		}
		if st.Houses < 4 {
			g.consult(p, PointHousePurchase, s.Name)
			e.Policy.ConsiderHousePurchase(g, p, sq)
		} else {
			g.consult(p, PointHotelPurchase, s.Name)
			e.Policy.ConsiderHotelPurchase(g, p, sq)
		}
	}

	if len(owned) > 0 {
		g.consult(p, PointProposeTrade, "")
		e.Policy.ConsiderProposingTrade(g, p)
	}
	if e.InJail && e.JailFreeCards > 0 {
		g.consult(p, PointJailCard, "")
		e.Policy.ConsiderUsingJailCard(g, p)
	}
}

// rollDice rolls the configured dice and reports the total and whether all
// dice matched.
func (g *Game) rollDice(p EntityID) (int, bool) {
	total := 0
	first := 0
	double := true
	for i := 0; i < g.cfg.NumDice; i++ {
		d := g.rng.Intn(g.cfg.DieSize) + 1
		total += d
		if i == 0 {
			first = d
		} else if d != first {
			double = false
		}
	}
	g.log.Debug().Str("player", g.entities[p].Name).Int("total", total).Bool("double", double).Msg("rolled")
	return total, double
}

// ForceRoll overrides the last recorded dice total. The forecast simulator
// uses it so utility rent in a clone reflects the simulated distance.
func (g *Game) ForceRoll(total int) { g.lastRoll = total }

// Advance moves the player forwards and resolves the square landed on.
func (g *Game) Advance(p EntityID, steps int) {
	g.moveForwards(p, steps)
	g.resolveSquare(p)
}

// moveForwards walks the player clockwise, paying the passing-go award on a
// wrap. Jailed players collect nothing.
func (g *Game) moveForwards(p EntityID, steps int) {
	e := &g.entities[p]
	n := len(g.layout.Squares)
	if steps <= 0 {
		return
	}
	if e.Position+steps >= n && !e.InJail {
		g.log.Info().Str("player", e.Name).Msg("passed GO")
		g.Transact(Bank, p, g.cfg.GoAmount, "passing go")
	}
	e.Position = (e.Position + steps) % n
	e.History = append(e.History, g.layout.Squares[e.Position].Name)
}

func (g *Game) moveBackwards(p EntityID, steps int) {
	e := &g.entities[p]
	n := len(g.layout.Squares)
	e.Position = ((e.Position-steps)%n + n) % n
	e.History = append(e.History, g.layout.Squares[e.Position].Name)
}

// moveForwardsTo advances the player to the named square, collecting for
// passing go if the walk wraps.
func (g *Game) moveForwardsTo(p EntityID, sq int) {
	n := len(g.layout.Squares)
	steps := ((sq-g.entities[p].Position)%n + n) % n
	g.moveForwards(p, steps)
}

// sendToJail puts the player straight in jail, with no passing-go award.
func (g *Game) sendToJail(p EntityID) {
	e := &g.entities[p]
	jail := g.layout.JailIndex()
	if jail < 0 {
		g.log.Warn().Msg("no jail on this board")
		return
	}
	e.Position = jail
	e.InJail = true
	e.TurnsInJail = 0
	e.History = append(e.History, g.layout.Squares[jail].Name)
	g.log.Info().Str("player", e.Name).Msg("sent to jail")
}

// UseJailCard spends a jail-free card if the player is jailed and holds one.
func (g *Game) UseJailCard(p EntityID) bool {
	e := &g.entities[p]
	if !e.InJail || e.JailFreeCards == 0 {
		return false
	}
	e.JailFreeCards--
	e.InJail = false
	e.TurnsInJail = 0
	g.log.Info().Str("player", e.Name).Msg("used a jail-free card")
	return true
}

// resolveSquare applies the action of the square the player stands on.
func (g *Game) resolveSquare(p EntityID) {
	e := &g.entities[p]
	sq := e.Position
	s := g.layout.Squares[sq]

	g.log.Debug().Str("player", e.Name).Str("square", s.Name).Msg("landed")

	switch s.Kind {
	case board.Go:
		g.Transact(Bank, p, g.cfg.GoAmount, "landing on go")
	case board.Tax:
		g.Transact(p, FreeParking, s.TaxAmount, s.Name)
	case board.FreeParking:
		if pot := g.Balance(FreeParking); pot > 0 {
			g.log.Info().Str("player", e.Name).Int("pot", pot).Msg("free parking payout")
			g.Transact(FreeParking, p, pot, "free parking payout")
		}
	case board.Jail:
		// Just visiting.
	case board.GoToJail:
		g.sendToJail(p)
	case board.Chance:
		g.applyCard(p, g.chance.Draw(), "chance")
	case board.CommunityChest:
		g.applyCard(p, g.chest.Draw(), "community chest")
	case board.BasicProperty, board.Station, board.Utility:
		if g.props[sq].Owner < 0 {
			if g.Balance(p) >= g.Cost(sq) {
				g.consult(p, PointPurchase, s.Name)
				e.Policy.ConsiderPurchase(g, p, sq)
			}
		} else {
			g.chargeRent(p, sq)
		}
	}
}

// applyCard interprets one drawn card against the player.
func (g *Game) applyCard(p EntityID, c board.Card, deck string) {
	e := &g.entities[p]
	reason := fmt.Sprintf("%s: %s", deck, c.Name)
	g.log.Info().Str("player", e.Name).Str("card", c.Name).Msg("drew a card")

	switch c.Kind {
	case board.CardCollect:
		g.Transact(Bank, p, c.Amount, reason)
	case board.CardPay:
		to := Bank
		if c.ToPot {
			to = FreeParking
		}
		g.Transact(p, to, c.Amount, reason)
	case board.CardRepairs:
		due := c.PerHouse*g.HousesOf(p) + c.PerHotel*g.HotelsOf(p)
		if due > 0 {
			g.Transact(p, FreeParking, due, reason)
		}
	case board.CardCollectFromPlayers:
		for _, other := range g.ActivePlayers() {
			if other == p {
				continue
			}
			g.Transact(other, p, c.Amount, reason)
		}
	case board.CardAdvance:
		sq := g.layout.Index(c.Square)
		if sq < 0 {
			g.log.Warn().Str("square", c.Square).Msg("card names a square not on this board")
			return
		}
		if c.Backwards {
			n := len(g.layout.Squares)
			g.moveBackwards(p, ((e.Position-sq)%n+n)%n)
		} else {
			g.moveForwardsTo(p, sq)
		}
		g.resolveSquare(p)
	case board.CardGoBack:
		g.moveBackwards(p, c.Steps)
		g.resolveSquare(p)
	case board.CardGoToJail:
		g.sendToJail(p)
	case board.CardJailFree:
		e.JailFreeCards++
	}
}
