package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassicUKShape(t *testing.T) {
	t.Parallel()

	l := ClassicUK()

	assert.Len(t, l.Squares, 40)
	assert.Len(t, l.Chance, 16)
	assert.Len(t, l.CommunityChest, 16)

	assert.Equal(t, Go, l.Squares[0].Kind)
	assert.Equal(t, 10, l.JailIndex())
	assert.Equal(t, 39, l.Index("Mayfair"))
	assert.Equal(t, -1, l.Index("Boardwalk"))
}

func TestClassicUKSets(t *testing.T) {
	t.Parallel()

	l := ClassicUK()

	assert.Len(t, l.SetMembers(Stations), 4)
	assert.Len(t, l.SetMembers(Utilities), 2)
	assert.Len(t, l.SetMembers("brown"), 2)
	assert.Len(t, l.SetMembers("orange"), 3)
	assert.Len(t, l.SetMembers("dark-blue"), 2)
}

func TestClassicUKMortgageValues(t *testing.T) {
	t.Parallel()

	for _, s := range ClassicUK().Squares {
		if !s.Purchasable() {
			assert.Zero(t, s.Value, "square %q", s.Name)
			continue
		}
		assert.Equal(t, s.Value/2, s.MortgageValue, "square %q", s.Name)
	}
}

func TestPurchasable(t *testing.T) {
	t.Parallel()

	assert.True(t, Square{Kind: BasicProperty}.Purchasable())
	assert.True(t, Square{Kind: Station}.Purchasable())
	assert.True(t, Square{Kind: Utility}.Purchasable())
	assert.False(t, Square{Kind: Go}.Purchasable())
	assert.False(t, Square{Kind: Chance}.Purchasable())
	assert.False(t, Square{Kind: Jail}.Purchasable())
}
