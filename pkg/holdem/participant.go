package holdem

import (
	"encoding/json"

	"holdemsim/pkg/deck"
)

// Participant represents one seat at the table for the duration of a game.
// Its betting state is mutated only by the betting round and by settlement.
type Participant struct {
	Name string

	chips      int
	cards      deck.Hand
	active     bool
	allIn      bool
	currentBet int
	totalBet   int
}

type participantJSON struct {
	Name       string    `json:"name"`
	Chips      int       `json:"chips"`
	Cards      deck.Hand `json:"cards"`
	Active     bool      `json:"active"`
	AllIn      bool      `json:"allIn"`
	CurrentBet int       `json:"currentBet"`
	TotalBet   int       `json:"totalBet"`
}

// NewParticipant returns a participant with the provided starting stack
func NewParticipant(name string, chips int) *Participant {
	return &Participant{
		Name:  name,
		chips: chips,
	}
}

// ResetForHand resets the per-hand state.
// The participant only re-activates if they still have chips.
func (p *Participant) ResetForHand() {
	p.cards = make(deck.Hand, 0, 2)
	p.active = p.chips > 0
	p.allIn = false
	p.currentBet = 0
	p.totalBet = 0
}

// Chips returns the participant's chip count
func (p *Participant) Chips() int {
	return p.chips
}

// Cards returns a copy of the participant's hole cards
func (p *Participant) Cards() deck.Hand {
	return p.cards.Clone()
}

// IsActive returns true if the participant has not folded this hand
func (p *Participant) IsActive() bool {
	return p.active
}

// IsAllIn returns true if the participant has wagered their entire stack
func (p *Participant) IsAllIn() bool {
	return p.allIn
}

// CurrentBet returns the amount wagered on the current street
func (p *Participant) CurrentBet() int {
	return p.currentBet
}

// TotalBet returns the amount wagered across the whole hand
func (p *Participant) TotalBet() int {
	return p.totalBet
}

// pay moves up to {amount} chips from the stack into the current street's
// wager and returns the amount actually paid. Exhausting the stack puts the
// participant all-in.
func (p *Participant) pay(amount int) int {
	if amount > p.chips {
		amount = p.chips
	}

	p.chips -= amount
	p.currentBet += amount
	p.totalBet += amount

	if p.chips == 0 {
		p.allIn = true
	}

	return amount
}

func (p *Participant) fold() {
	p.active = false
}

// credit awards chips won at settlement
func (p *Participant) credit(amount int) {
	p.chips += amount
}

func (p *Participant) resetStreetBet() {
	p.currentBet = 0
}

func (p *Participant) addCard(card *deck.Card) {
	p.cards.AddCard(card)
}

// MarshalJSON encodes the participant's state
func (p *Participant) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.json())
}

func (p *Participant) json() *participantJSON {
	return &participantJSON{
		Name:       p.Name,
		Chips:      p.chips,
		Cards:      p.cards,
		Active:     p.active,
		AllIn:      p.allIn,
		CurrentBet: p.currentBet,
		TotalBet:   p.totalBet,
	}
}
