package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Pair", OnePair.String())
	assert.Equal(t, "Two pair", TwoPair.String())
	assert.Equal(t, "Three of a kind", ThreeOfAKind.String())
	assert.Equal(t, "Straight", Straight.String())
	assert.Equal(t, "Flush", Flush.String())
	assert.Equal(t, "Full house", FullHouse.String())
	assert.Equal(t, "Four of a kind", FourOfAKind.String())
	assert.Equal(t, "Straight flush", StraightFlush.String())
	assert.Equal(t, "Royal flush", RoyalFlush.String())

	assert.Panics(t, func() {
		_ = Category(100).String()
	})
}

func TestCategory_ordering(t *testing.T) {
	assert.True(t, HighCard < OnePair)
	assert.True(t, OnePair < TwoPair)
	assert.True(t, TwoPair < ThreeOfAKind)
	assert.True(t, ThreeOfAKind < Straight)
	assert.True(t, Straight < Flush)
	assert.True(t, Flush < FullHouse)
	assert.True(t, FullHouse < FourOfAKind)
	assert.True(t, FourOfAKind < StraightFlush)
	assert.True(t, StraightFlush < RoyalFlush)
}
