// Package game is the economic engine: entities and their accounts, the
// property ownership state machine, transaction settlement with liquidation
// and bankruptcy, and the per-turn orchestrator. Mutable state lives in
// indexed tables inside Game — entities, property state, and accounts are
// addressed by integer ids — so cloning for forecasting is a table copy
// rather than a graph walk.
package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scarybot/monotony/board"
	"github.com/scarybot/monotony/ledger"
	"github.com/scarybot/monotony/pkg/id"
)

// EntityID indexes an entity within a Game. The bank and the free parking
// pot occupy fixed slots; players follow.
type EntityID int

const (
	Bank        EntityID = 0
	FreeParking EntityID = 1
	firstPlayer EntityID = 2
)

// Entity is one account-holding participant: the bank, the free parking
// pot, or a player. Property ownership is recorded on the property table,
// not here; PropertiesOf derives the owned list.
type Entity struct {
	ID      EntityID
	Name    string
	Account ledger.AccountID
	Policy  Policy

	Position      int
	InGame        bool
	InJail        bool
	TurnsInJail   int
	JailFreeCards int
	History       []string
}

// PropertyState is the mutable side of a board square: who owns it and how
// developed it is. Owner is -1 while unowned.
type PropertyState struct {
	Owner     EntityID
	Mortgaged bool
	Houses    int
	Hotels    int
}

// Pool is the game-wide supply of houses and hotels. The sum of buildings
// on the board plus the pool is constant for the whole game.
type Pool struct {
	Houses int
	Hotels int
}

// Config carries the table rules.
type Config struct {
	NumDice         int
	DieSize         int
	BankBalance     int
	StartingBalance int
	GoAmount        int
	JailFine        int
	MaxTurnsInJail  int
	Houses          int
	Hotels          int
}

// DefaultConfig returns the documented default rules: 2d6, £1500 starting
// cash, £200 for passing go, a three-turn jail limit with a £50 fine paid
// into the free parking pot, and a 48-house/12-hotel supply.
func DefaultConfig() Config {
	return Config{
		NumDice:         2,
		DieSize:         6,
		BankBalance:     12755,
		StartingBalance: 1500,
		GoAmount:        200,
		JailFine:        50,
		MaxTurnsInJail:  3,
		Houses:          48,
		Hotels:          12,
	}
}

// PlayerSpec describes one player to register at construction.
type PlayerSpec struct {
	Name          string
	Policy        Policy
	JailFreeCards int
}

// Game is the complete mutable state of one running game.
type Game struct {
	cfg    Config
	layout *board.Layout

	led      *ledger.Ledger
	entities []Entity
	props    []PropertyState
	pool     Pool

	chance *Deck
	chest  *Deck

	turn      int
	lastRoll  int
	completed bool

	runID      string
	simulation bool

	rng *rand.Rand
	log zerolog.Logger
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRand substitutes the random source used for dice, shuffles and
// decision draws. Essential for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithLogger substitutes the game log sink.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithJournal tees completed audit records into a persistent sink.
func WithJournal(j ledger.Journal) Option {
	return func(g *Game) { g.led.SetJournal(j) }
}

// NewGame builds a game over the given layout and players. It fails on a
// malformed configuration: an unusable board, too few players, or
// nonsensical dice or supply numbers.
func NewGame(layout *board.Layout, cfg Config, players []PlayerSpec, opts ...Option) (*Game, error) {
	if layout == nil || len(layout.Squares) == 0 {
		return nil, fmt.Errorf("new game: empty board layout")
	}
	if len(players) < 2 {
		return nil, fmt.Errorf("new game: need at least two players, got %d", len(players))
	}
	if cfg.NumDice < 1 || cfg.DieSize < 2 {
		return nil, fmt.Errorf("new game: bad dice configuration %dd%d", cfg.NumDice, cfg.DieSize)
	}
	if cfg.Houses < 0 || cfg.Hotels < 0 {
		return nil, fmt.Errorf("new game: negative building supply")
	}

	g := &Game{
		cfg:    cfg,
		layout: layout,
		led:    ledger.New(),
		pool:   Pool{Houses: cfg.Houses, Hotels: cfg.Hotels},
		runID:  "real",
		rng:    rand.New(rand.NewSource(rand.Int63())),
		log:    log.Logger,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.entities = append(g.entities, Entity{
		ID:      Bank,
		Name:    "Bank",
		Account: g.led.Open("Bank", cfg.BankBalance),
		Policy:  noop{},
		InGame:  true,
	})
	g.entities = append(g.entities, Entity{
		ID:      FreeParking,
		Name:    "Free Parking",
		Account: g.led.Open("Free Parking", 0),
		Policy:  noop{},
		InGame:  true,
	})

	for _, spec := range players {
		if spec.Name == "" {
			return nil, fmt.Errorf("new game: player with empty name")
		}
		pol := spec.Policy
		if pol == nil {
			pol = noop{}
		}
		eid := EntityID(len(g.entities))
		g.entities = append(g.entities, Entity{
			ID:            eid,
			Name:          spec.Name,
			Account:       g.led.Open(spec.Name, cfg.StartingBalance),
			Policy:        pol,
			InGame:        true,
			JailFreeCards: spec.JailFreeCards,
		})
	}

	g.props = make([]PropertyState, len(layout.Squares))
	for i := range g.props {
		g.props[i].Owner = -1
	}

	g.chance = newDeck(layout.Chance, g.rng)
	g.chest = newDeck(layout.CommunityChest, g.rng)

	return g, nil
}

// Layout returns the shared read-only board.
func (g *Game) Layout() *board.Layout { return g.layout }

// Ledger exposes the audit trail and account arena.
func (g *Game) Ledger() *ledger.Ledger { return g.led }

// RunID is the audit partition this game records into: "real" for a live
// game, a ULID-tagged id for a simulation clone.
func (g *Game) RunID() string { return g.runID }

// Simulation reports whether this game is a forecast clone.
func (g *Game) Simulation() bool { return g.simulation }

// Turn returns the current turn number.
func (g *Game) Turn() int { return g.turn }

// LastRoll returns the total of the most recent dice roll. Utility rent is
// a multiple of it.
func (g *Game) LastRoll() int { return g.lastRoll }

// Completed reports whether the game has finished.
func (g *Game) Completed() bool { return g.completed }

// Rand exposes the game's random source so policies draw from the same
// substitutable stream as the dice.
func (g *Game) Rand() *rand.Rand { return g.rng }

// MaxRoll is the highest total the dice can show.
func (g *Game) MaxRoll() int { return g.cfg.NumDice * g.cfg.DieSize }

// Entity returns a pointer into the entity table. Callers mutate entities
// only through game operations; the pointer is for reading.
func (g *Game) Entity(id EntityID) *Entity { return &g.entities[id] }

// Players returns the ids of all registered players, in seat order.
func (g *Game) Players() []EntityID {
	out := make([]EntityID, 0, len(g.entities)-int(firstPlayer))
	for i := int(firstPlayer); i < len(g.entities); i++ {
		out = append(out, EntityID(i))
	}
	return out
}

// ActivePlayers returns the players still in the game.
func (g *Game) ActivePlayers() []EntityID {
	var out []EntityID
	for _, p := range g.Players() {
		if g.entities[p].InGame {
			out = append(out, p)
		}
	}
	return out
}

// Balance returns the entity's account balance.
func (g *Game) Balance(id EntityID) int {
	return g.led.Balance(g.entities[id].Account)
}

// Pool returns the current building supply.
func (g *Game) Pool() Pool { return g.pool }

// Property returns the mutable state of a square.
func (g *Game) Property(sq int) PropertyState { return g.props[sq] }

// OwnerOf returns the owner of a square, or -1 if unowned.
func (g *Game) OwnerOf(sq int) EntityID { return g.props[sq].Owner }

// PropertiesOf returns the square indexes owned by the entity, in board
// order.
func (g *Game) PropertiesOf(id EntityID) []int {
	var out []int
	for i := range g.props {
		if g.props[i].Owner == id {
			out = append(out, i)
		}
	}
	return out
}

// newRunID mints a simulation audit partition id.
func newRunID() string {
	return "sim-" + id.New()
}
