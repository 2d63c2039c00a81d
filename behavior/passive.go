package behavior

import "github.com/scarybot/monotony/game"

// Passive is a policy that never buys, builds, trades or plays cards. It
// still liquidates when asked, so a passive player can settle its debts.
type Passive struct{}

func (Passive) ConsiderPurchase(*game.Game, game.EntityID, int)      {}
func (Passive) ConsiderUnmortgage(*game.Game, game.EntityID, int)    {}
func (Passive) ConsiderHousePurchase(*game.Game, game.EntityID, int) {}
func (Passive) ConsiderHotelPurchase(*game.Game, game.EntityID, int) {}
func (Passive) ConsiderUsingJailCard(*game.Game, game.EntityID)      {}
func (Passive) ConsiderProposingTrade(*game.Game, game.EntityID)     {}

func (Passive) ConsiderProposedTrade(*game.Game, game.EntityID, game.EntityID, int, int) bool {
	return false
}

// Liquidate mortgages unmortgaged properties cheapest-first until the
// amount is covered, selling development on the way.
func (Passive) Liquidate(g *game.Game, player game.EntityID, amount int) {
	liquidate(g, player, amount)
}
