package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdemsim/pkg/deck"
)

func newShowdownParticipant(name, cards string) *Participant {
	p := newTestParticipant(name, 10000)
	for _, card := range deck.CardsFromString(cards) {
		p.addCard(card)
	}

	return p
}

func TestDetermineWinners(t *testing.T) {
	board := deck.Hand(deck.CardsFromString("2c,5d,9h,11s,13c"))

	aces := newShowdownParticipant("aces", "14s,14h")
	nines := newShowdownParticipant("nines", "9s,3d")

	winners, best, err := DetermineWinners(board, []*Participant{aces, nines})
	assert.NoError(t, err)
	assert.Equal(t, []*Participant{aces}, winners)
	assert.Equal(t, OnePair, best.Category)
	assert.Equal(t, []int{14, 13, 11, 9}, best.Key)
}

func TestDetermineWinners_tie(t *testing.T) {
	board := deck.Hand(deck.CardsFromString("2c,5d,9h,11s,13c"))

	// identical ranks in different suits play the same hand
	x := newShowdownParticipant("x", "14s,10h")
	y := newShowdownParticipant("y", "14h,10d")

	winners, best, err := DetermineWinners(board, []*Participant{x, y})
	assert.NoError(t, err)
	assert.Equal(t, []*Participant{x, y}, winners)
	assert.Equal(t, HighCard, best.Category)
}

func TestDetermineWinners_excludesFolded(t *testing.T) {
	board := deck.Hand(deck.CardsFromString("2c,5d,9h,11s,13c"))

	aces := newShowdownParticipant("aces", "14s,14h")
	rags := newShowdownParticipant("rags", "3s,4d")
	aces.fold()

	winners, best, err := DetermineWinners(board, []*Participant{aces, rags})
	assert.NoError(t, err)
	assert.Equal(t, []*Participant{rags}, winners)
	assert.Equal(t, HighCard, best.Category)
}

func TestDetermineWinners_includesAllIn(t *testing.T) {
	board := deck.Hand(deck.CardsFromString("2c,5d,9h,11s,13c"))

	aces := newShowdownParticipant("aces", "14s,14h")
	aces.pay(10000)
	rags := newShowdownParticipant("rags", "3s,4d")

	winners, _, err := DetermineWinners(board, []*Participant{aces, rags})
	assert.NoError(t, err)
	assert.Equal(t, []*Participant{aces}, winners)
}

func TestDetermineWinners_noneEligible(t *testing.T) {
	board := deck.Hand(deck.CardsFromString("2c,5d,9h,11s,13c"))

	a := newShowdownParticipant("a", "14s,14h")
	b := newShowdownParticipant("b", "3s,4d")
	a.fold()
	b.fold()

	_, _, err := DetermineWinners(board, []*Participant{a, b})
	assert.Equal(t, ErrNoShowdown, err)
}

func TestSettle(t *testing.T) {
	a := newTestParticipant("a", 0)
	b := newTestParticipant("b", 0)

	Settle(2000, []*Participant{a, b})
	assert.Equal(t, 1000, a.Chips())
	assert.Equal(t, 1000, b.Chips())
}

func TestSettle_remainderGoesInOrder(t *testing.T) {
	a := newTestParticipant("a", 0)
	b := newTestParticipant("b", 0)
	c := newTestParticipant("c", 0)

	// 1001 chips between two winners
	Settle(1001, []*Participant{a, b})
	assert.Equal(t, 501, a.Chips())
	assert.Equal(t, 500, b.Chips())

	// 1000 chips between three winners
	Settle(1000, []*Participant{a, b, c})
	assert.Equal(t, 501+334, a.Chips())
	assert.Equal(t, 500+333, b.Chips())
	assert.Equal(t, 333, c.Chips())
}
