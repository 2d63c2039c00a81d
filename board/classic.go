package board

// basic builds a BasicProperty square.
func basic(name string, set ColourSet, value, houseCost int, rent [6]int) Square {
	return Square{
		Kind:          BasicProperty,
		Name:          name,
		Set:           set,
		Value:         value,
		MortgageValue: value / 2,
		HouseCost:     houseCost,
		HotelCost:     houseCost,
		Rent:          rent,
	}
}

func station(name string) Square {
	return Square{Kind: Station, Name: name, Set: Stations, Value: 200, MortgageValue: 100}
}

func utility(name string) Square {
	return Square{Kind: Utility, Name: name, Set: Utilities, Value: 150, MortgageValue: 75}
}

// ClassicUK returns the standard London board with its chance and community
// chest decks. Card names are log labels; the engine only reads the effects.
func ClassicUK() *Layout {
	return &Layout{
		Squares: []Square{
			{Kind: Go, Name: "GO"},
			basic("Old Kent Road", "brown", 60, 50, [6]int{2, 10, 30, 90, 160, 250}),
			{Kind: CommunityChest, Name: "Community Chest 1"},
			basic("Whitechapel Road", "brown", 60, 50, [6]int{4, 20, 60, 180, 320, 450}),
			{Kind: Tax, Name: "Income Tax", TaxAmount: 200},
			station("King's Cross Station"),
			basic("The Angel Islington", "light-blue", 100, 50, [6]int{6, 30, 90, 270, 400, 550}),
			{Kind: Chance, Name: "Chance 1"},
			basic("Euston Road", "light-blue", 100, 50, [6]int{6, 30, 90, 270, 400, 550}),
			basic("Pentonville Road", "light-blue", 120, 50, [6]int{8, 40, 100, 300, 450, 600}),
			{Kind: Jail, Name: "Jail"},
			basic("Pall Mall", "pink", 140, 100, [6]int{10, 50, 150, 450, 625, 750}),
			utility("Electric Company"),
			basic("Whitehall", "pink", 140, 100, [6]int{10, 50, 150, 450, 625, 750}),
			basic("Northumberland Avenue", "pink", 160, 100, [6]int{12, 60, 180, 500, 700, 900}),
			station("Marylebone Station"),
			basic("Bow Street", "orange", 180, 100, [6]int{14, 70, 200, 550, 750, 950}),
			{Kind: CommunityChest, Name: "Community Chest 2"},
			basic("Marlborough Street", "orange", 180, 100, [6]int{14, 70, 200, 550, 750, 950}),
			basic("Vine Street", "orange", 200, 100, [6]int{16, 80, 220, 600, 800, 1000}),
			{Kind: FreeParking, Name: "Free Parking"},
			basic("Strand", "red", 220, 150, [6]int{18, 90, 250, 700, 875, 1050}),
			{Kind: Chance, Name: "Chance 2"},
			basic("Fleet Street", "red", 220, 150, [6]int{18, 90, 250, 700, 875, 1050}),
			basic("Trafalgar Square", "red", 240, 150, [6]int{20, 100, 300, 750, 925, 1100}),
			station("Fenchurch Street Station"),
			basic("Leicester Square", "yellow", 260, 150, [6]int{22, 110, 330, 800, 975, 1150}),
			basic("Coventry Street", "yellow", 260, 150, [6]int{22, 110, 330, 800, 975, 1150}),
			utility("Water Works"),
			basic("Piccadilly", "yellow", 280, 150, [6]int{24, 120, 360, 850, 1025, 1200}),
			{Kind: GoToJail, Name: "Go To Jail"},
			basic("Regent Street", "green", 300, 200, [6]int{26, 130, 390, 900, 1100, 1275}),
			basic("Oxford Street", "green", 300, 200, [6]int{26, 130, 390, 900, 1100, 1275}),
			{Kind: CommunityChest, Name: "Community Chest 3"},
			basic("Bond Street", "green", 320, 200, [6]int{28, 150, 450, 1000, 1200, 1400}),
			station("Liverpool Street Station"),
			{Kind: Chance, Name: "Chance 3"},
			basic("Park Lane", "dark-blue", 350, 200, [6]int{35, 175, 500, 1100, 1300, 1500}),
			{Kind: Tax, Name: "Super Tax", TaxAmount: 100},
			basic("Mayfair", "dark-blue", 400, 200, [6]int{50, 200, 600, 1400, 1700, 2000}),
		},
		Chance: []Card{
			{Kind: CardCollect, Name: "building loan matures", Amount: 150},
			{Kind: CardAdvance, Name: "trip to Marylebone Station", Square: "Marylebone Station"},
			{Kind: CardGoBack, Name: "go back three spaces", Steps: 3},
			{Kind: CardPay, Name: "speeding fine", Amount: 15, ToPot: true},
			{Kind: CardAdvance, Name: "advance to Mayfair", Square: "Mayfair"},
			{Kind: CardRepairs, Name: "general repairs", PerHouse: 25, PerHotel: 100},
			{Kind: CardAdvance, Name: "advance to Trafalgar Square", Square: "Trafalgar Square"},
			{Kind: CardRepairs, Name: "street repairs", PerHouse: 40, PerHotel: 115},
			{Kind: CardPay, Name: "school fees", Amount: 150, ToPot: true},
			{Kind: CardAdvance, Name: "advance to GO", Square: "GO"},
			{Kind: CardCollect, Name: "bank dividend", Amount: 50},
			{Kind: CardPay, Name: "drunk in charge", Amount: 20, ToPot: true},
			{Kind: CardGoToJail, Name: "go to jail"},
			{Kind: CardAdvance, Name: "advance to Pall Mall", Square: "Pall Mall"},
			{Kind: CardJailFree, Name: "get out of jail free"},
			{Kind: CardCollect, Name: "crossword competition", Amount: 100},
		},
		CommunityChest: []Card{
			{Kind: CardGoToJail, Name: "go to jail"},
			{Kind: CardCollect, Name: "preference shares", Amount: 25},
			{Kind: CardPay, Name: "hospital fees", Amount: 100},
			{Kind: CardPay, Name: "insurance premium", Amount: 50},
			{Kind: CardAdvance, Name: "advance to GO", Square: "GO"},
			{Kind: CardCollect, Name: "tax refund", Amount: 20},
			{Kind: CardCollectFromPlayers, Name: "birthday", Amount: 10},
			{Kind: CardAdvance, Name: "back to Old Kent Road", Square: "Old Kent Road", Backwards: true},
			{Kind: CardCollect, Name: "bank error in your favour", Amount: 200},
			{Kind: CardCollect, Name: "annuity matures", Amount: 100},
			{Kind: CardCollect, Name: "sale of stock", Amount: 50},
			{Kind: CardCollect, Name: "beauty contest", Amount: 10},
			{Kind: CardJailFree, Name: "get out of jail free"},
			{Kind: CardPay, Name: "avoiding a chance", Amount: 10},
			{Kind: CardPay, Name: "doctor's fee", Amount: 50},
			{Kind: CardCollect, Name: "inheritance", Amount: 100},
		},
	}
}
