package game

import (
	"fmt"

	"github.com/scarybot/monotony/board"
)

var stationRent = [4]int{25, 50, 100, 200}

// Cost returns what the square currently trades for: face value unowned,
// 110% of face value to lift a mortgage.
func (g *Game) Cost(sq int) int {
	s := g.layout.Squares[sq]
	if g.props[sq].Mortgaged {
		return s.Value * 11 / 10
	}
	return s.Value
}

// OwnedInSet counts the set members held by the entity, mortgaged or not.
func (g *Game) OwnedInSet(owner EntityID, set board.ColourSet) int {
	n := 0
	for _, i := range g.layout.SetMembers(set) {
		if g.props[i].Owner == owner {
			n++
		}
	}
	return n
}

// SetFullyOwned reports whether the square's whole colour set belongs to its
// owner with no mortgages — the condition for development and for doubled
// base rent.
func (g *Game) SetFullyOwned(sq int) bool {
	st := g.props[sq]
	if st.Owner < 0 {
		return false
	}
	for _, i := range g.layout.SetMembers(g.layout.Squares[sq].Set) {
		if g.props[i].Owner != st.Owner || g.props[i].Mortgaged {
			return false
		}
	}
	return true
}

// SetsOwned returns the colour sets the player holds in full, unmortgaged.
func (g *Game) SetsOwned(player EntityID) []board.ColourSet {
	seen := make(map[board.ColourSet]bool)
	var out []board.ColourSet
	for _, sq := range g.PropertiesOf(player) {
		s := g.layout.Squares[sq]
		if s.Kind != board.BasicProperty || seen[s.Set] {
			continue
		}
		if g.SetFullyOwned(sq) {
			seen[s.Set] = true
			out = append(out, s.Set)
		}
	}
	return out
}

// AllSetsOwned returns every colour set held in full by any player.
func (g *Game) AllSetsOwned() []board.ColourSet {
	seen := make(map[board.ColourSet]bool)
	var out []board.ColourSet
	for i, s := range g.layout.Squares {
		if s.Kind != board.BasicProperty || seen[s.Set] {
			continue
		}
		if g.SetFullyOwned(i) {
			seen[s.Set] = true
			out = append(out, s.Set)
		}
	}
	return out
}

// HousesOf counts the houses standing on the player's properties.
func (g *Game) HousesOf(player EntityID) int {
	n := 0
	for _, sq := range g.PropertiesOf(player) {
		n += g.props[sq].Houses
	}
	return n
}

// HotelsOf counts the hotels standing on the player's properties.
func (g *Game) HotelsOf(player EntityID) int {
	n := 0
	for _, sq := range g.PropertiesOf(player) {
		n += g.props[sq].Hotels
	}
	return n
}

// Buy moves an unowned square to the player at face value. Refused and
// logged when the square is owned or the player cannot afford it.
func (g *Game) Buy(player EntityID, sq int) bool {
	s := g.layout.Squares[sq]
	st := &g.props[sq]
	p := &g.entities[player]

	if !s.Purchasable() || st.Owner >= 0 {
		g.log.Warn().Str("player", p.Name).Str("square", s.Name).Msg("cannot buy: not for sale")
		return false
	}
	cost := g.Cost(sq)
	if g.Balance(player) < cost {
		g.log.Info().
			Str("player", p.Name).
			Str("square", s.Name).
			Int("short", cost-g.Balance(player)).
			Msg("unable to buy")
		return false
	}

	g.Transact(player, Bank, cost, fmt.Sprintf("purchase of %s", s.Name))
	st.Owner = player
	g.log.Info().
		Str("player", p.Name).
		Str("square", s.Name).
		Int("cost", cost).
		Int("balance", g.Balance(player)).
		Msg("purchased")
	return true
}

// TransferProperty sells the square from its current owner to another player
// for the agreed amount. Used to complete accepted trades; the mortgage
// state travels with the property.
func (g *Game) TransferProperty(sq int, to EntityID, amount int) bool {
	st := &g.props[sq]
	if st.Owner < 0 || st.Owner == to {
		return false
	}
	if g.Balance(to) < amount {
		return false
	}
	from := st.Owner
	g.Transact(to, from, amount, fmt.Sprintf("trade for %s", g.layout.Squares[sq].Name))
	st.Owner = to
	g.log.Info().
		Str("from", g.entities[from].Name).
		Str("to", g.entities[to].Name).
		Str("square", g.layout.Squares[sq].Name).
		Int("amount", amount).
		Msg("property traded")
	return true
}

// OfferTrade puts a cash offer for the square to its owner's policy. On
// acceptance the property changes hands at the offered price.
func (g *Game) OfferTrade(proposer EntityID, sq int, offer int) bool {
	owner := g.props[sq].Owner
	if owner < firstPlayer || owner == proposer {
		return false
	}
	g.consult(owner, PointRespondTrade, g.layout.Squares[sq].Name)
	if !g.entities[owner].Policy.ConsiderProposedTrade(g, owner, proposer, sq, offer) {
		g.log.Debug().
			Str("owner", g.entities[owner].Name).
			Str("proposer", g.entities[proposer].Name).
			Str("square", g.layout.Squares[sq].Name).
			Int("offer", offer).
			Msg("offer declined")
		return false
	}
	return g.TransferProperty(sq, proposer, offer)
}

// Mortgage trades the square's earning power for an immediate credit of its
// mortgage value. A set cannot stay developed while a member is mortgaged,
// so any development on the set is sold off first.
func (g *Game) Mortgage(sq int) bool {
	s := g.layout.Squares[sq]
	st := &g.props[sq]
	if st.Owner < 0 || st.Mortgaged {
		g.log.Warn().Str("square", s.Name).Msg("cannot mortgage")
		return false
	}

	if s.Kind == board.BasicProperty {
		for _, i := range g.layout.SetMembers(s.Set) {
			if g.props[i].Owner != st.Owner {
				continue
			}
			if g.props[i].Hotels > 0 {
				g.SellHotel(i)
			}
			if n := g.props[i].Houses; n > 0 {
				g.SellHouses(i, n)
			}
		}
	}

	st.Mortgaged = true
	g.Transact(Bank, st.Owner, s.MortgageValue, fmt.Sprintf("mortgage of %s", s.Name))
	g.log.Info().
		Str("player", g.entities[st.Owner].Name).
		Str("square", s.Name).
		Int("value", s.MortgageValue).
		Msg("mortgaged")
	return true
}

// Unmortgage lifts the mortgage for 110% of face value. A no-op unless the
// owner's balance exceeds that cost.
func (g *Game) Unmortgage(sq int) bool {
	s := g.layout.Squares[sq]
	st := &g.props[sq]
	if st.Owner < 0 || !st.Mortgaged {
		g.log.Warn().Str("square", s.Name).Msg("cannot unmortgage: not mortgaged")
		return false
	}
	cost := g.Cost(sq)
	if g.Balance(st.Owner) <= cost {
		g.log.Info().
			Str("player", g.entities[st.Owner].Name).
			Str("square", s.Name).
			Msg("unable to unmortgage")
		return false
	}

	g.Transact(st.Owner, Bank, cost, fmt.Sprintf("unmortgage of %s", s.Name))
	st.Mortgaged = false
	g.log.Info().
		Str("player", g.entities[st.Owner].Name).
		Str("square", s.Name).
		Int("cost", cost).
		Msg("unmortgaged")
	return true
}

// BuyHouses puts n more houses on the square, drawn from the pool and paid
// to the bank. Refused and logged past four houses, beyond the pool, on a
// mortgaged or hotel-bearing square, or beyond the owner's means.
func (g *Game) BuyHouses(sq int, n int) bool {
	s := g.layout.Squares[sq]
	st := &g.props[sq]
	owner := st.Owner
	if s.Kind != board.BasicProperty || owner < 0 || n <= 0 {
		return false
	}
	ev := g.log.With().Str("player", g.entities[owner].Name).Str("square", s.Name).Logger()

	if st.Mortgaged || st.Hotels > 0 {
		ev.Warn().Msg("cannot build houses here")
		return false
	}
	if st.Houses+n > 4 {
		ev.Warn().Int("requested", n).Msg("cannot place more than 4 houses")
		return false
	}
	if g.pool.Houses < n {
		ev.Info().Int("requested", n).Int("pool", g.pool.Houses).Msg("not enough houses left")
		return false
	}
	cost := s.HouseCost * n
	if g.Balance(owner) < cost {
		ev.Info().Int("short", cost-g.Balance(owner)).Msg("unable to buy houses")
		return false
	}

	g.Transact(owner, Bank, cost, fmt.Sprintf("housing purchase on %s", s.Name))
	g.pool.Houses -= n
	st.Houses += n
	ev.Info().Int("houses", st.Houses).Int("cost", cost).Msg("houses built")
	return true
}

// SellHouses returns n houses to the pool, refunding half the build cost.
func (g *Game) SellHouses(sq int, n int) bool {
	s := g.layout.Squares[sq]
	st := &g.props[sq]
	if st.Owner < 0 || n <= 0 {
		return false
	}
	if n > st.Houses {
		g.log.Warn().
			Str("square", s.Name).
			Int("requested", n).
			Int("houses", st.Houses).
			Msg("cannot sell houses that are not there")
		return false
	}

	st.Houses -= n
	g.pool.Houses += n
	g.Transact(Bank, st.Owner, s.HouseCost/2*n, fmt.Sprintf("housing sale on %s", s.Name))
	g.log.Info().
		Str("player", g.entities[st.Owner].Name).
		Str("square", s.Name).
		Int("sold", n).
		Int("remaining", st.Houses).
		Msg("houses sold")
	return true
}

// BuyHotel upgrades four houses to a hotel: the four houses go back to the
// pool, one hotel comes out of it.
func (g *Game) BuyHotel(sq int) bool {
	s := g.layout.Squares[sq]
	st := &g.props[sq]
	owner := st.Owner
	if s.Kind != board.BasicProperty || owner < 0 {
		return false
	}
	ev := g.log.With().Str("player", g.entities[owner].Name).Str("square", s.Name).Logger()

	if st.Houses != 4 || st.Hotels > 0 || st.Mortgaged {
		ev.Warn().Msg("cannot build a hotel here")
		return false
	}
	if g.pool.Hotels < 1 {
		ev.Info().Msg("not enough hotels left")
		return false
	}
	if g.Balance(owner) < s.HotelCost {
		ev.Info().Int("short", s.HotelCost-g.Balance(owner)).Msg("unable to buy a hotel")
		return false
	}

	g.Transact(owner, Bank, s.HotelCost, fmt.Sprintf("hotel purchase on %s", s.Name))
	st.Houses = 0
	st.Hotels = 1
	g.pool.Houses += 4
	g.pool.Hotels--
	ev.Info().Int("cost", s.HotelCost).Msg("hotel built")
	return true
}

// SellHotel returns the hotel to the pool for half its cost and devolves the
// square back to houses — as many as the pool can supply, up to four.
func (g *Game) SellHotel(sq int) bool {
	s := g.layout.Squares[sq]
	st := &g.props[sq]
	if st.Owner < 0 || st.Hotels < 1 {
		g.log.Warn().Str("square", s.Name).Msg("cannot sell a hotel that is not there")
		return false
	}

	st.Hotels = 0
	g.pool.Hotels++
	g.Transact(Bank, st.Owner, s.HotelCost/2, fmt.Sprintf("hotel sale on %s", s.Name))

	houses := g.pool.Houses
	if houses > 4 {
		houses = 4
	}
	g.pool.Houses -= houses
	st.Houses = houses
	g.log.Info().
		Str("player", g.entities[st.Owner].Name).
		Str("square", s.Name).
		Int("houses", houses).
		Msg("hotel sold, site devolved")
	return true
}

// chargeRent settles rent for landing on an owned square. No rent changes
// hands when the square is mortgaged, the owner is out of the game, or the
// player owns it.
func (g *Game) chargeRent(player EntityID, sq int) {
	s := g.layout.Squares[sq]
	st := g.props[sq]
	owner := st.Owner
	if owner < 0 || owner == player {
		return
	}
	if st.Mortgaged || !g.entities[owner].InGame {
		return
	}

	rent := 0
	switch s.Kind {
	case board.BasicProperty:
		if g.SetFullyOwned(sq) {
			switch {
			case st.Hotels == 1:
				rent = s.Rent[5]
			case st.Houses == 0:
				rent = s.Rent[0] * 2
			default:
				rent = s.Rent[st.Houses]
			}
		} else {
			rent = s.Rent[0]
		}
	case board.Station:
		rent = stationRent[g.OwnedInSet(owner, board.Stations)-1]
	case board.Utility:
		mult := 4
		if g.OwnedInSet(owner, board.Utilities) == 2 {
			mult = 10
		}
		rent = g.lastRoll * mult
	default:
		return
	}

	g.log.Info().
		Str("player", g.entities[player].Name).
		Str("owner", g.entities[owner].Name).
		Str("square", s.Name).
		Int("rent", rent).
		Msg("rent due")
	g.Transact(player, owner, rent, fmt.Sprintf("rent on %s", s.Name))
}
