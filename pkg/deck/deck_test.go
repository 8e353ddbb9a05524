package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdemsim/internal/rng"
)

func TestNewDeck(t *testing.T) {
	deck := New(rng.NewSeeded(1))

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])

	unshuffled := deck.HashCode()

	deck.Shuffle()
	assert.NotEqual(t, unshuffled, deck.HashCode())
	assert.Equal(t, 52, deck.CardsLeft())
}

func TestDeck_Shuffle_deterministic(t *testing.T) {
	a := New(rng.NewSeeded(42))
	b := New(rng.NewSeeded(42))
	c := New(rng.NewSeeded(43))

	a.Shuffle()
	b.Shuffle()
	c.Shuffle()

	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.NotEqual(t, a.HashCode(), c.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	deck := New(rng.NewSeeded(1))

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	deck.Shuffle()
	if !deck.CanDraw(52) {
		t.Errorf("expected Shuffle() to rebuild the deck")
	}
}

func TestDeck_Deal(t *testing.T) {
	deck := New(rng.NewSeeded(1))
	deck.Shuffle()

	cards, err := deck.Deal(5)
	assert.NoError(t, err)
	assert.Equal(t, 5, len(cards))
	assert.Equal(t, 47, deck.CardsLeft())

	cards, err = deck.Deal(48)
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Nil(t, cards)
	assert.Equal(t, 47, deck.CardsLeft())
}
