package game

import (
	"github.com/scarybot/monotony/ledger"
	"github.com/scarybot/monotony/pkg/id"
)

// Transact moves amount from one entity to another, settling immediately.
//
// If the payer cannot cover the amount, its policy's Liquidate hook is given
// one chance to raise cash; whatever the payer then holds, up to the amount,
// changes hands. A shortfall is a partial payment: it is logged, recorded,
// and escalates to the payer's bankruptcy in favour of the receiver. The
// bank and the free parking pot never liquidate or go bankrupt — when the
// bank runs dry it simply pays what it has and money leaves the game.
//
// In a simulation clone the transaction is recorded in the clone's audit
// partition and no balance moves.
//
// Returns whether the full amount was paid.
func (g *Game) Transact(from, to EntityID, amount int, reason string) bool {
	payer := &g.entities[from]
	payee := &g.entities[to]

	if g.simulation {
		g.led.Record(ledger.Transaction{
			ID:         id.New(),
			RunID:      g.runID,
			From:       payer.Account,
			To:         payee.Account,
			Requested:  amount,
			Paid:       amount,
			Reason:     reason,
			Simulation: true,
		})
		return true
	}

	if g.led.Balance(payer.Account) < amount && from >= firstPlayer {
		g.log.Info().
			Str("player", payer.Name).
			Stringer("decision", PointLiquidate).
			Int("short", amount-g.led.Balance(payer.Account)).
			Msg("unable to cover debt, liquidating")
		payer.Policy.Liquidate(g, from, amount)
	}

	paid := amount
	if bal := g.led.Balance(payer.Account); bal < amount {
		paid = bal
	}

	g.led.Credit(payee.Account, paid)
	g.led.Debit(payer.Account, paid)
	g.led.Record(ledger.Transaction{
		ID:        id.New(),
		RunID:     g.runID,
		From:      payer.Account,
		To:        payee.Account,
		Requested: amount,
		Paid:      paid,
		Reason:    reason,
		Completed: paid == amount,
	})

	if paid < amount {
		g.log.Info().
			Str("from", payer.Name).
			Str("to", payee.Name).
			Str("reason", reason).
			Int("requested", amount).
			Int("paid", paid).
			Msg("partial payment")
		if from >= firstPlayer {
			g.bankrupt(from, to)
		}
		return false
	}

	g.log.Debug().
		Str("from", payer.Name).
		Str("to", payee.Name).
		Str("reason", reason).
		Int("amount", paid).
		Int("balance", g.led.Balance(payer.Account)).
		Msg("paid")
	return true
}

// bankrupt eliminates the debtor and hands its remaining properties to the
// creditor. When the creditor is the bank or the pot the properties return
// to the market unowned, cleared of mortgages, with any stray development
// going back to the pool.
func (g *Game) bankrupt(debtor, creditor EntityID) {
	d := &g.entities[debtor]
	c := &g.entities[creditor]

	g.log.Info().
		Str("player", d.Name).
		Str("creditor", c.Name).
		Msg("bankrupt")

	for _, sq := range g.PropertiesOf(debtor) {
		st := &g.props[sq]
		if creditor >= firstPlayer {
			st.Owner = creditor
			continue
		}
		g.pool.Houses += st.Houses
		g.pool.Hotels += st.Hotels
		st.Houses = 0
		st.Hotels = 0
		st.Owner = -1
		st.Mortgaged = false
	}

	d.InGame = false
}
