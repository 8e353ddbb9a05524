package holdem

import (
	"errors"

	"github.com/sirupsen/logrus"

	"holdemsim/pkg/deck"
)

// maxDecisionAttempts is how many times a provider may answer illegally
// before the participant is folded on their behalf
const maxDecisionAttempts = 3

// BettingRound runs the betting for a single street. Action rotates in seat
// order starting left of the dealer and continues until every participant
// still able to act has matched the current bet level since the last raise.
type BettingRound struct {
	logger     logrus.FieldLogger
	street     string
	order      []*Participant
	providers  map[*Participant]DecisionProvider
	board      deck.Hand
	pot        int
	minBet     int
	currentBet int
}

// NewBettingRound returns a betting round over the given participants.
// The order slice must already be rotated so index 0 acts first. Every
// street opens with currentBet at the minimum bet; pre-flop the blinds
// must already be paid toward it.
func NewBettingRound(logger logrus.FieldLogger, street string, order []*Participant, providers map[*Participant]DecisionProvider, board deck.Hand, pot, minBet, currentBet int) *BettingRound {
	return &BettingRound{
		logger:     logger,
		street:     street,
		order:      order,
		providers:  providers,
		board:      board,
		pot:        pot,
		minBet:     minBet,
		currentBet: currentBet,
	}
}

// Pot returns the pot total including this street's wagers so far
func (r *BettingRound) Pot() int {
	return r.pot
}

// Run executes the round. It returns the pot total after the street and,
// if all but one participant folded, the participant who takes the pot
// uncontested.
func (r *BettingRound) Run() (pot int, winner *Participant, err error) {
	acted := make(map[*Participant]bool)

	for turn := 0; ; turn++ {
		if sole := r.soleActive(); sole != nil {
			r.logger.WithFields(logrus.Fields{
				"street":      r.street,
				"participant": sole.Name,
				"pot":         r.pot,
			}).Info("all opponents folded")

			r.close()
			return r.pot, sole, nil
		}

		if r.complete(acted) {
			r.close()
			return r.pot, nil, nil
		}

		p := r.order[turn%len(r.order)]
		if !p.active || p.allIn {
			continue
		}

		if acted[p] && p.currentBet == r.currentBet {
			continue
		}

		raised, err := r.takeTurn(p)
		if err != nil {
			return r.pot, nil, err
		}

		if raised {
			// everyone else must respond to the new bet level
			acted = make(map[*Participant]bool)
		}

		acted[p] = true
	}
}

// takeTurn asks the participant's provider for a decision, enforcing the
// betting rules. Illegal or failed decisions are retried a bounded number of
// times, then the participant is folded.
func (r *BettingRound) takeTurn(p *Participant) (raised bool, err error) {
	provider, ok := r.providers[p]
	if !ok {
		return false, newIllegalActionError("no decision provider for %s", p.Name)
	}

	for attempt := 0; attempt < maxDecisionAttempts; attempt++ {
		decision, err := provider.Decide(r.viewFor(p))
		if err == nil {
			raised, err = r.apply(p, decision)
			if err == nil {
				return raised, nil
			}
		}

		var illegal IllegalActionError
		if !errors.As(err, &illegal) {
			return false, err
		}

		r.logger.WithFields(logrus.Fields{
			"street":      r.street,
			"participant": p.Name,
			"attempt":     attempt + 1,
		}).WithError(err).Warn("rejected decision")
	}

	p.fold()
	r.logger.WithFields(logrus.Fields{
		"street":      r.street,
		"participant": p.Name,
	}).Warn("folded after repeated illegal decisions")

	return false, nil
}

// apply validates the decision against the current state and, if legal,
// mutates the participant and the pot. A rejected decision leaves all state
// untouched.
func (r *BettingRound) apply(p *Participant, decision Decision) (raised bool, err error) {
	toCall := r.currentBet - p.currentBet

	switch decision.Action {
	case Check:
		if toCall > 0 {
			return false, newIllegalActionError("cannot check when ${%d} is owed", toCall)
		}
	case Call:
		if toCall == 0 {
			// calling nothing is just a check
			break
		}

		paid := p.pay(toCall)
		r.pot += paid
	case Raise:
		if !r.canRaise(p) {
			return false, newIllegalActionError("cannot raise when an opponent is all-in")
		}

		if decision.RaiseAmount < r.minBet {
			return false, newIllegalActionError("raise of ${%d} is below the minimum of ${%d}", decision.RaiseAmount, r.minBet)
		}

		if total := toCall + decision.RaiseAmount; total > p.chips {
			return false, newIllegalActionError("cannot afford raise of ${%d}", decision.RaiseAmount)
		}

		r.pot += p.pay(toCall + decision.RaiseAmount)
		r.currentBet += decision.RaiseAmount
		raised = true
	case AllIn:
		// an all-in never moves the bet level, even when it exceeds it,
		// so it cannot re-open the action
		r.pot += p.pay(p.chips)
	case Fold:
		p.fold()
	default:
		return false, newIllegalActionError("unknown action: %s", decision.Action)
	}

	r.logger.WithFields(logrus.Fields{
		"street":      r.street,
		"participant": p.Name,
		"pot":         r.pot,
		"chips":       p.chips,
	}).Infof("%s %s", p.Name, decision.Action.LogMessage(p.currentBet))

	return raised, nil
}

// viewFor builds the state the provider is allowed to see
func (r *BettingRound) viewFor(p *Participant) TurnView {
	return TurnView{
		Name:       p.Name,
		Street:     r.street,
		HoleCards:  p.Cards(),
		Board:      r.board.Clone(),
		Pot:        r.pot,
		ToCall:     r.currentBet - p.currentBet,
		MinRaise:   r.minBet,
		Chips:      p.chips,
		CanRaise:   r.canRaise(p),
		CurrentBet: r.currentBet,
	}
}

// canRaise reports whether the participant may raise. Once any opponent
// still in the hand is all-in, raising is off the table.
func (r *BettingRound) canRaise(p *Participant) bool {
	for _, other := range r.order {
		if other != p && other.active && other.allIn {
			return false
		}
	}

	return true
}

// soleActive returns the last participant standing, or nil while the hand
// is still contested
func (r *BettingRound) soleActive() *Participant {
	var sole *Participant
	for _, p := range r.order {
		if p.active {
			if sole != nil {
				return nil
			}

			sole = p
		}
	}

	return sole
}

// complete reports whether every participant who can still act has acted
// since the last raise and matched the bet level
func (r *BettingRound) complete(acted map[*Participant]bool) bool {
	for _, p := range r.order {
		if !p.active || p.allIn {
			continue
		}

		if !acted[p] || p.currentBet != r.currentBet {
			return false
		}
	}

	return true
}

// close zeroes the per-street wagers so the next street starts clean
func (r *BettingRound) close() {
	for _, p := range r.order {
		p.resetStreetBet()
	}
}
