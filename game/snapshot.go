package game

// PlayerSnapshot is the read-only view of one player for a presentation
// layer.
type PlayerSnapshot struct {
	Name          string
	Balance       int
	Position      int
	Square        string
	InGame        bool
	InJail        bool
	JailFreeCards int
	Properties    []string
}

// Snapshot is the read-only view of the whole game.
type Snapshot struct {
	Turn               int
	Completed          bool
	BankBalance        int
	FreeParkingBalance int
	PoolHouses         int
	PoolHotels         int
	Players            []PlayerSnapshot
}

// Snapshot captures the observable game state. The copy shares nothing
// mutable with the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:               g.turn,
		Completed:          g.completed,
		BankBalance:        g.Balance(Bank),
		FreeParkingBalance: g.Balance(FreeParking),
		PoolHouses:         g.pool.Houses,
		PoolHotels:         g.pool.Hotels,
	}
	for _, p := range g.Players() {
		e := g.entities[p]
		ps := PlayerSnapshot{
			Name:          e.Name,
			Balance:       g.Balance(p),
			Position:      e.Position,
			Square:        g.layout.Squares[e.Position].Name,
			InGame:        e.InGame,
			InJail:        e.InJail,
			JailFreeCards: e.JailFreeCards,
		}
		for _, sq := range g.PropertiesOf(p) {
			ps.Properties = append(ps.Properties, g.layout.Squares[sq].Name)
		}
		snap.Players = append(snap.Players, ps)
	}
	return snap
}
