package board

// CardKind is the closed set of effects a chance or community chest card can
// have. The turn engine interprets the kind; cards carry only data.
type CardKind int

const (
	// CardCollect pays the player Amount from the bank.
	CardCollect CardKind = iota
	// CardPay charges the player Amount, paid to the free parking pot when
	// ToPot is set and to the bank otherwise.
	CardPay
	// CardRepairs charges PerHouse for every house and PerHotel for every
	// hotel the player has built, paid to the free parking pot.
	CardRepairs
	// CardCollectFromPlayers pays the player Amount from every other active
	// player.
	CardCollectFromPlayers
	// CardAdvance moves the player to the named Square, forwards unless
	// Backwards is set, collecting for passing go when moving forwards.
	CardAdvance
	// CardGoBack moves the player backwards Steps squares.
	CardGoBack
	// CardGoToJail sends the player straight to jail.
	CardGoToJail
	// CardJailFree grants a get-out-of-jail-free card.
	CardJailFree
)

// Card is a single chance or community chest card. Name is used for the game
// log only; the engine acts on Kind and the effect fields.
type Card struct {
	Kind     CardKind
	Name     string
	Amount   int
	ToPot    bool
	PerHouse int
	PerHotel int
	Square    string
	Backwards bool
	Steps     int
}
