package game

// DecisionPoint tags the situations a behaviour policy is consulted on.
// Used for log context; dispatch is through the Policy interface itself.
type DecisionPoint int

const (
	PointPurchase DecisionPoint = iota
	PointUnmortgage
	PointHousePurchase
	PointHotelPurchase
	PointLiquidate
	PointJailCard
	PointProposeTrade
	PointRespondTrade
)

func (p DecisionPoint) String() string {
	switch p {
	case PointPurchase:
		return "purchase"
	case PointUnmortgage:
		return "unmortgage"
	case PointHousePurchase:
		return "house-purchase"
	case PointHotelPurchase:
		return "hotel-purchase"
	case PointLiquidate:
		return "liquidate"
	case PointJailCard:
		return "jail-card"
	case PointProposeTrade:
		return "propose-trade"
	case PointRespondTrade:
		return "respond-trade"
	default:
		return "unknown"
	}
}

// consult logs that a policy is about to be asked for a decision.
func (g *Game) consult(p EntityID, point DecisionPoint, square string) {
	ev := g.log.Debug().
		Str("player", g.entities[p].Name).
		Stringer("decision", point)
	if square != "" {
		ev = ev.Str("square", square)
	}
	ev.Msg("consulting policy")
}

// Policy decides for one player at each decision point. Handlers act
// directly on the game (buy, mortgage, transact) once they judge the
// situation affirmatively; the engine only tells them when a decision is
// available.
//
// Liquidate is the insolvency hook: raise at least amount in cash by
// selling development and mortgaging, in whatever order the policy
// prefers. It is called at most once per transaction before the
// settlement falls back to partial payment and bankruptcy.
type Policy interface {
	ConsiderPurchase(g *Game, player EntityID, sq int)
	ConsiderUnmortgage(g *Game, player EntityID, sq int)
	ConsiderHousePurchase(g *Game, player EntityID, sq int)
	ConsiderHotelPurchase(g *Game, player EntityID, sq int)
	Liquidate(g *Game, player EntityID, amount int)
	ConsiderUsingJailCard(g *Game, player EntityID)
	ConsiderProposingTrade(g *Game, player EntityID)
	ConsiderProposedTrade(g *Game, owner, proposer EntityID, sq int, offer int) bool
}

// noop never acts. It backs the bank and pot entities, players constructed
// without a policy, and every player inside a simulation clone — a
// simulated player must not spawn further simulations.
type noop struct{}

func (noop) ConsiderPurchase(*Game, EntityID, int)      {}
func (noop) ConsiderUnmortgage(*Game, EntityID, int)    {}
func (noop) ConsiderHousePurchase(*Game, EntityID, int) {}
func (noop) ConsiderHotelPurchase(*Game, EntityID, int) {}
func (noop) Liquidate(*Game, EntityID, int)             {}
func (noop) ConsiderUsingJailCard(*Game, EntityID)      {}
func (noop) ConsiderProposingTrade(*Game, EntityID)     {}
func (noop) ConsiderProposedTrade(*Game, EntityID, EntityID, int, int) bool {
	return false
}
