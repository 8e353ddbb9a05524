package holdem

import (
	"holdemsim/pkg/deck"
)

// DetermineWinners evaluates every participant still in the hand against the
// board and returns the winners in the order they were provided, along with
// the winning hand value. Ties produce multiple winners.
func DetermineWinners(board deck.Hand, participants []*Participant) ([]*Participant, HandValue, error) {
	var winners []*Participant
	var best HandValue

	for _, p := range participants {
		if !p.active {
			continue
		}

		cards := append(board.Clone(), p.cards...)
		value, err := EvaluateBest(cards)
		if err != nil {
			return nil, HandValue{}, err
		}

		if len(winners) == 0 {
			winners = []*Participant{p}
			best = value
			continue
		}

		switch value.Compare(best) {
		case 1:
			winners = []*Participant{p}
			best = value
		case 0:
			winners = append(winners, p)
		}
	}

	if len(winners) == 0 {
		return nil, HandValue{}, ErrNoShowdown
	}

	return winners, best, nil
}

// Settle splits the pot evenly among the winners. When the pot does not
// divide evenly, the leftover chips go one at a time to the winners in the
// order provided, which the caller arranges as seat order left of the dealer.
func Settle(pot int, winners []*Participant) {
	if len(winners) == 0 {
		return
	}

	share := pot / len(winners)
	remainder := pot % len(winners)

	for i, winner := range winners {
		amount := share
		if i < remainder {
			amount++
		}

		winner.credit(amount)
	}
}
