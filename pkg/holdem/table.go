package holdem

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdemsim/internal/rng"
	"holdemsim/pkg/deck"
)

// Options configure the stakes for a table
type Options struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
}

// DefaultOptions returns the default Options
func DefaultOptions() Options {
	return Options{
		StartingChips: 100000,
		SmallBlind:    500,
		BigBlind:      1000,
	}
}

// Seat pairs a participant name with the provider that decides for them
type Seat struct {
	Name     string
	Provider DecisionProvider
}

// Table hosts a series of hands between a fixed set of participants.
// The dealer button advances after every hand.
type Table struct {
	logger       logrus.FieldLogger
	options      Options
	rng          rng.Generator
	participants []*Participant
	providers    map[*Participant]DecisionProvider
	dealerIndex  int
	dealerState  DealerState
	handNum      int
	history      []*HandResult
}

// HandResult records the outcome of one completed hand
type HandResult struct {
	ID          uuid.UUID      `json:"id"`
	HandNum     int            `json:"handNum"`
	Board       deck.Hand      `json:"board"`
	Pot         int            `json:"pot"`
	Winners     []string       `json:"winners"`
	WinningHand HandValue      `json:"winningHand"`
	Chips       map[string]int `json:"chips"`
	EndedEarly  bool           `json:"endedEarly"`
}

// NewTable returns a table seating the given participants, each with the
// starting stack from the options
func NewTable(logger logrus.FieldLogger, options Options, generator rng.Generator, seats []Seat) (*Table, error) {
	if len(seats) < 2 {
		return nil, ErrNotEnoughParticipants
	}

	participants := make([]*Participant, len(seats))
	providers := make(map[*Participant]DecisionProvider, len(seats))
	for i, seat := range seats {
		participants[i] = NewParticipant(seat.Name, options.StartingChips)
		providers[participants[i]] = seat.Provider
	}

	return &Table{
		logger:       logger,
		options:      options,
		rng:          generator,
		participants: participants,
		providers:    providers,
	}, nil
}

// Participants returns the participants in seat order
func (t *Table) Participants() []*Participant {
	return t.participants
}

// PlayersWithChips returns the participants still holding chips
func (t *Table) PlayersWithChips() []*Participant {
	remaining := make([]*Participant, 0, len(t.participants))
	for _, p := range t.participants {
		if p.chips > 0 {
			remaining = append(remaining, p)
		}
	}

	return remaining
}

// DealerState returns where the current or most recent hand is in its lifecycle
func (t *Table) DealerState() DealerState {
	return t.dealerState
}

// History returns the results of all completed hands
func (t *Table) History() []*HandResult {
	return t.history
}

// PlayHand deals and plays a single hand to completion: blinds, four
// betting streets, and either an uncontested win or a showdown.
func (t *Table) PlayHand() (*HandResult, error) {
	if len(t.PlayersWithChips()) < 2 {
		return nil, ErrNotEnoughParticipants
	}

	t.handNum++
	t.dealerState = DealerStateStart

	for _, p := range t.participants {
		p.ResetForHand()
	}

	d := deck.New(t.rng)
	d.Shuffle()

	order := t.actionOrder()
	logger := t.logger.WithFields(logrus.Fields{
		"hand":   t.handNum,
		"dealer": t.participants[t.dealerIndex].Name,
		"deck":   d.HashCode(),
	})
	logger.Info("hand started")

	pot := t.postBlinds(order, logger)

	for i := 0; i < 2; i++ {
		for _, p := range order {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			p.addCard(card)
		}
	}

	board := make(deck.Hand, 0, 5)

	streets := []struct {
		state DealerState
		deal  int
	}{
		{DealerStatePreFlopBetting, 0},
		{DealerStateFlopBetting, 3},
		{DealerStateTurnBetting, 1},
		{DealerStateRiverBetting, 1},
	}

	var winner *Participant
	for _, street := range streets {
		t.dealerState = street.state

		cards, err := d.Deal(street.deal)
		if err != nil {
			return nil, err
		}
		board = append(board, cards...)

		// every street opens with the bet level at the big blind, so staying
		// in costs the minimum bet per street. Pre-flop the blinds have
		// already paid toward it.
		round := NewBettingRound(logger, street.state.String(), order, t.providers, board, pot, t.options.BigBlind, t.options.BigBlind)
		pot, winner, err = round.Run()
		if err != nil {
			return nil, err
		}

		if winner != nil {
			break
		}
	}

	result := &HandResult{
		ID:         uuid.New(),
		HandNum:    t.handNum,
		Board:      board,
		Pot:        pot,
		EndedEarly: winner != nil,
	}

	if winner != nil {
		winner.credit(pot)
		result.Winners = []string{winner.Name}
	} else {
		t.dealerState = DealerStateShowdown

		winners, best, err := DetermineWinners(board, order)
		if err != nil {
			return nil, err
		}

		Settle(pot, winners)

		result.WinningHand = best
		result.Winners = make([]string, len(winners))
		for i, w := range winners {
			result.Winners[i] = w.Name
		}
	}

	result.Chips = make(map[string]int, len(t.participants))
	for _, p := range t.participants {
		result.Chips[p.Name] = p.chips
	}

	t.dealerState = DealerStateDone
	t.history = append(t.history, result)
	t.advanceDealer()

	logger.WithFields(logrus.Fields{
		"winners": result.Winners,
		"pot":     result.Pot,
	}).Info("hand finished")

	return result, nil
}

// actionOrder returns the participants dealt into the hand, in seat order
// starting left of the dealer
func (t *Table) actionOrder() []*Participant {
	n := len(t.participants)
	order := make([]*Participant, 0, n)
	for i := 1; i <= n; i++ {
		p := t.participants[(t.dealerIndex+i)%n]
		if p.active {
			order = append(order, p)
		}
	}

	return order
}

// postBlinds takes the small and big blinds from the first two participants
// left of the dealer and returns the opening pot. A short stack posts what
// they have and is all-in.
func (t *Table) postBlinds(order []*Participant, logger logrus.FieldLogger) int {
	pot := 0

	blinds := []struct {
		p      *Participant
		amount int
		name   string
	}{
		{order[0], t.options.SmallBlind, "small blind"},
		{order[1], t.options.BigBlind, "big blind"},
	}

	for _, blind := range blinds {
		paid := blind.p.pay(blind.amount)
		pot += paid
		logger.WithFields(logrus.Fields{
			"participant": blind.p.Name,
			"amount":      paid,
		}).Infof("%s posted the %s", blind.p.Name, blind.name)
	}

	return pot
}

// advanceDealer moves the button to the next participant still holding chips
func (t *Table) advanceDealer() {
	n := len(t.participants)
	for i := 1; i <= n; i++ {
		index := (t.dealerIndex + i) % n
		if t.participants[index].chips > 0 {
			t.dealerIndex = index
			return
		}
	}
}
