package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	hand := Hand{}
	hand.AddCard(CardFromString("2c"))
	hand.AddCard(CardFromString("14s"))

	assert.Equal(t, 2, len(hand))
	assert.True(t, hand.HasCard(CardFromString("2c")))
	assert.False(t, hand.HasCard(CardFromString("2d")))
}

func TestHand_FirstCard_LastCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3d,4h"))

	assert.Equal(t, "2c", CardToString(hand.FirstCard()))
	assert.Equal(t, "4h", CardToString(hand.LastCard()))

	empty := Hand{}
	assert.Nil(t, empty.FirstCard())
	assert.Nil(t, empty.LastCard())
}

func TestHand_String(t *testing.T) {
	hand := Hand(CardsFromString("2c,13h"))
	assert.Equal(t, "2c,13h", hand.String())
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(CardsFromString("2c,3d"))
	clone := hand.Clone()

	clone[0] = CardFromString("14s")
	assert.Equal(t, "2c,3d", hand.String())
	assert.Equal(t, "14s,3d", clone.String())
}
