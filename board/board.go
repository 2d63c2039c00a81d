// Package board holds the static description of a game board: the ordered
// squares, their rent and cost tables, and the card decks. A Layout is
// immutable once built; all mutable state (ownership, mortgages, houses)
// lives in the game package, keyed by square index.
package board

// SquareKind identifies what landing on a square does. Each kind is resolved
// by a single dispatch in the turn engine rather than a per-square callback.
type SquareKind int

const (
	Go SquareKind = iota
	Tax
	Chance
	CommunityChest
	BasicProperty
	Station
	Utility
	FreeParking
	Jail
	GoToJail
)

func (k SquareKind) String() string {
	switch k {
	case Go:
		return "go"
	case Tax:
		return "tax"
	case Chance:
		return "chance"
	case CommunityChest:
		return "community-chest"
	case BasicProperty:
		return "property"
	case Station:
		return "station"
	case Utility:
		return "utility"
	case FreeParking:
		return "free-parking"
	case Jail:
		return "jail"
	case GoToJail:
		return "go-to-jail"
	default:
		return "unknown"
	}
}

// ColourSet tags squares that develop together. Stations and utilities get
// their own pseudo-sets so "how many of this set does the owner hold" works
// the same way for every purchasable kind.
type ColourSet string

const (
	Stations  ColourSet = "stations"
	Utilities ColourSet = "utilities"
)

// Square is one board position. Only the fields relevant to its Kind are
// set: Rent/HouseCost/HotelCost for BasicProperty, TaxAmount for Tax, and
// Value/MortgageValue for anything purchasable.
type Square struct {
	Kind          SquareKind
	Name          string
	Set           ColourSet
	Value         int
	MortgageValue int
	HouseCost     int
	HotelCost     int

	// Rent by development level: 0 houses, 1..4 houses, hotel.
	Rent [6]int

	TaxAmount int
}

// Purchasable reports whether the square can be owned by a player.
func (s Square) Purchasable() bool {
	switch s.Kind {
	case BasicProperty, Station, Utility:
		return true
	}
	return false
}

// Layout is a complete board: squares in play order plus the two card decks.
type Layout struct {
	Squares        []Square
	Chance         []Card
	CommunityChest []Card
}

// Index returns the position of the named square, or -1 if absent.
func (l *Layout) Index(name string) int {
	for i, s := range l.Squares {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// SetMembers returns the indexes of every square in the given colour set.
func (l *Layout) SetMembers(set ColourSet) []int {
	var out []int
	for i, s := range l.Squares {
		if s.Purchasable() && s.Set == set {
			out = append(out, i)
		}
	}
	return out
}

// JailIndex returns the position of the jail square, or -1 if the layout has
// no jail.
func (l *Layout) JailIndex() int {
	for i, s := range l.Squares {
		if s.Kind == Jail {
			return i
		}
	}
	return -1
}
