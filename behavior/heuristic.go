package behavior

import (
	"sort"

	"github.com/scarybot/monotony/board"
	"github.com/scarybot/monotony/decision"
	"github.com/scarybot/monotony/forecast"
	"github.com/scarybot/monotony/game"
)

// Heuristic is the default policy: probabilistic, weighted by the player's
// personality, with a forecast of next-turn exposure tempering the riskier
// buys.
type Heuristic struct {
	Personality Personality
}

// NewHeuristic returns a heuristic policy with the given personality.
func NewHeuristic(p Personality) *Heuristic {
	return &Heuristic{Personality: p}
}

// ConsiderPurchase weighs buying the unowned square the player landed on.
// Completing one's own set is automatic; a rival holding set-mates halves
// the hoarding appetite; a risky-looking next turn dampens risk-taking.
func (h *Heuristic) ConsiderPurchase(g *game.Game, player game.EntityID, sq int) {
	s := g.Layout().Squares[sq]
	cost := g.Cost(sq)
	d := decision.New(g.Rand())

	ex := forecast.Exposure(g, player)
	if g.Balance(player)-cost+ex.Worst() < 0 {
		d.Add(h.Personality.RiskTaking * 0.75)
	} else {
		d.Add(h.Personality.RiskTaking)
	}

	switch {
	case g.OwnedInSet(player, s.Set) > 0:
		d.ForceYes()
	case h.rivalHoldsSet(g, player, s.Set):
		d.Add(h.Personality.Hoarding * 0.5)
	default:
		d.Add(h.Personality.Hoarding)
	}

	if d.Outcome() {
		g.Buy(player, sq)
	}
}

// ConsiderUnmortgage lifts a mortgage when it completes a set, or when it is
// cheap relative to the player's cash and the next turn looks survivable.
func (h *Heuristic) ConsiderUnmortgage(g *game.Game, player game.EntityID, sq int) {
	s := g.Layout().Squares[sq]
	cost := g.Cost(sq)

	if g.OwnedInSet(player, s.Set) == len(g.Layout().SetMembers(s.Set)) {
		g.Unmortgage(sq)
		return
	}
	if float64(cost) >= float64(g.Balance(player))*0.15 {
		return
	}
	ex := forecast.Exposure(g, player)
	if g.Balance(player)-cost+ex.Worst() >= 0 {
		g.Unmortgage(sq)
	}
}

// ConsiderHousePurchase buys houses when possible, spending at most 40% of
// the player's cash in one turn, thinking twice when next turn could sting.
func (h *Heuristic) ConsiderHousePurchase(g *game.Game, player game.EntityID, sq int) {
	s := g.Layout().Squares[sq]
	d := decision.New(g.Rand())

	canAfford := g.Balance(player) * 2 / 5 / s.HouseCost
	maxAvailable := 4 - g.Property(sq).Houses
	n := canAfford
	if maxAvailable < n {
		n = maxAvailable
	}
	d.SetOutput("houses", n)

	ex := forecast.Exposure(g, player)
	if g.Balance(player)-s.HouseCost+ex.Worst() < 0 {
		d.Add(h.Personality.RiskTaking)
	}

	if d.Output("houses") > 0 && d.Outcome() {
		g.BuyHouses(sq, d.Output("houses"))
	}
}

// ConsiderHotelPurchase buys the hotel unless it costs more than two thirds
// of the player's cash.
func (h *Heuristic) ConsiderHotelPurchase(g *game.Game, player game.EntityID, sq int) {
	s := g.Layout().Squares[sq]
	d := decision.New(g.Rand())

	if s.HotelCost*3 > g.Balance(player)*2 {
		d.ForceNo()
	} else {
		d.ForceYes()
	}

	if d.Outcome() {
		g.BuyHotel(sq)
	}
}

// Liquidate raises cash in the canonical order: properties ascending by
// mortgage value; on each, sell the hotel, then houses one at a time, then
// mortgage, re-checking solvency after every sale.
func (h *Heuristic) Liquidate(g *game.Game, player game.EntityID, amount int) {
	liquidate(g, player, amount)
}

func liquidate(g *game.Game, player game.EntityID, amount int) {
	props := g.PropertiesOf(player)
	sort.Slice(props, func(i, j int) bool {
		return g.Layout().Squares[props[i]].MortgageValue < g.Layout().Squares[props[j]].MortgageValue
	})

	for _, sq := range props {
		if g.Balance(player) >= amount {
			return
		}
		if g.Property(sq).Mortgaged {
			continue
		}
		if g.Layout().Squares[sq].Kind == board.BasicProperty {
			if g.Property(sq).Hotels > 0 {
				g.SellHotel(sq)
			}
			for g.Property(sq).Houses > 0 && g.Balance(player) < amount {
				g.SellHouses(sq, 1)
			}
			if g.Balance(player) >= amount {
				return
			}
		}
		g.Mortgage(sq)
	}
}

// ConsiderUsingJailCard plays the card when the player holds at least half
// of the completed sets in play; otherwise impatience decides.
func (h *Heuristic) ConsiderUsingJailCard(g *game.Game, player game.EntityID) {
	d := decision.New(g.Rand())

	mine := len(g.SetsOwned(player))
	all := len(g.AllSetsOwned())
	if all == 0 || float64(mine) >= float64(all)*0.5 {
		d.ForceYes()
	} else {
		d.Add(1 - h.Personality.Patience)
	}

	if d.Outcome() {
		g.UseJailCard(player)
	}
}

// ConsiderProposingTrade looks over every rival property in a set the
// player has invested in and maybe places an offer, weighted by how close
// the set is to completion, spare cash, distance to GO, and opportunism.
func (h *Heuristic) ConsiderProposingTrade(g *game.Game, player game.EntityID) {
	invested := make(map[board.ColourSet]bool)
	for _, sq := range g.PropertiesOf(player) {
		invested[g.Layout().Squares[sq].Set] = true
	}

	for _, opp := range g.ActivePlayers() {
		if opp == player {
			continue
		}
		for _, sq := range g.PropertiesOf(opp) {
			s := g.Layout().Squares[sq]
			if !invested[s.Set] {
				continue
			}

			d := decision.New(g.Rand())
			members := len(g.Layout().SetMembers(s.Set))
			d.Add(float64(g.OwnedInSet(player, s.Set)+1) / float64(members))
			d.Add(float64(g.Balance(player)) / 1000)
			d.Add(1 - float64(distanceToGo(g, player))/float64(len(g.Layout().Squares)))
			d.Add(h.Personality.Opportunism)

			if !d.Outcome() {
				continue
			}
			offer := int(float64(g.Balance(player)) * d.Probability())
			if offer <= g.Cost(sq) || g.Balance(player) < offer {
				continue
			}
			g.OfferTrade(player, sq, offer)
		}
	}
}

// ConsiderProposedTrade responds to an offer on one of the player's
// properties. Long games, generous offers and thin balances make a sale
// more likely; stubbornness makes it less so.
func (h *Heuristic) ConsiderProposedTrade(g *game.Game, owner, proposer game.EntityID, sq int, offer int) bool {
	d := decision.New(g.Rand())

	turn := g.Turn()
	if turn > 100 {
		turn = 100
	}
	d.Add(float64(turn) / 100)
	if offer > 0 {
		d.Add(1 - float64(g.Cost(sq))/float64(offer))
	}
	d.Add(1 - float64(g.Balance(owner))/1000)
	d.Add(1 - h.Personality.Stubbornness)

	return d.Outcome()
}

// rivalHoldsSet reports whether any other player owns part of the set.
func (h *Heuristic) rivalHoldsSet(g *game.Game, player game.EntityID, set board.ColourSet) bool {
	for _, sq := range g.Layout().SetMembers(set) {
		owner := g.OwnerOf(sq)
		if owner >= 0 && owner != player {
			return true
		}
	}
	return false
}

// distanceToGo counts squares from the player's position to GO, a full lap
// when standing on it.
func distanceToGo(g *game.Game, player game.EntityID) int {
	n := len(g.Layout().Squares)
	goIdx := g.Layout().Index("GO")
	if goIdx < 0 {
		goIdx = 0
	}
	d := ((goIdx - g.Entity(player).Position) % n + n) % n
	if d == 0 {
		d = n
	}
	return d
}
