package holdem

import (
	"fmt"

	"holdemsim/internal/rng"
	"holdemsim/pkg/deck"
)

// TurnView is the state a decision provider may see when it's their turn.
// Hole cards belong to the acting participant only; opponents' cards are
// never exposed here.
type TurnView struct {
	Name       string    `json:"name"`
	Street     string    `json:"street"`
	HoleCards  deck.Hand `json:"holeCards"`
	Board      deck.Hand `json:"board"`
	Pot        int       `json:"pot"`
	ToCall     int       `json:"toCall"`
	MinRaise   int       `json:"minRaise"`
	Chips      int       `json:"chips"`
	CanRaise   bool      `json:"canRaise"`
	CurrentBet int       `json:"currentBet"`
}

// Decision is a provider's answer for a single turn. RaiseAmount is the
// amount raised above the current bet level and is only read for Raise.
type Decision struct {
	Action      Action `json:"action"`
	RaiseAmount int    `json:"raiseAmount"`
}

// DecisionProvider supplies a decision each time a participant must act
type DecisionProvider interface {
	Decide(view TurnView) (Decision, error)
}

// ScriptedProvider replays a fixed list of decisions in order
type ScriptedProvider struct {
	decisions []Decision
	index     int
}

// NewScriptedProvider returns a provider that plays back the given decisions
func NewScriptedProvider(decisions ...Decision) *ScriptedProvider {
	return &ScriptedProvider{decisions: decisions}
}

// Decide returns the next scripted decision
func (s *ScriptedProvider) Decide(view TurnView) (Decision, error) {
	if s.index >= len(s.decisions) {
		return Decision{}, fmt.Errorf("no scripted decision remaining for %s", view.Name)
	}

	decision := s.decisions[s.index]
	s.index++
	return decision, nil
}

// BotProvider makes weighted random decisions. It folds roughly a fifth of
// the time when facing a bet, raises roughly a fifth of the time when
// allowed, and otherwise calls along.
type BotProvider struct {
	rng rng.Generator
}

// NewBotProvider returns a bot backed by the provided generator
func NewBotProvider(generator rng.Generator) *BotProvider {
	return &BotProvider{rng: generator}
}

// Decide picks an action for the bot
func (b *BotProvider) Decide(view TurnView) (Decision, error) {
	if view.ToCall >= view.Chips {
		// nothing to lose by seeing the hand through
		return Decision{Action: AllIn}, nil
	}

	roll := b.rng.Intn(100)

	if roll < 20 {
		if view.ToCall == 0 {
			return Decision{Action: Check}, nil
		}

		return Decision{Action: Fold}, nil
	}

	if roll < 40 && view.CanRaise {
		raiseBy := view.MinRaise * 2
		if max := view.Chips - view.ToCall; raiseBy > max {
			raiseBy = max
		}

		if raiseBy >= view.MinRaise {
			return Decision{Action: Raise, RaiseAmount: raiseBy}, nil
		}
	}

	if view.ToCall == 0 {
		return Decision{Action: Check}, nil
	}

	return Decision{Action: Call}, nil
}
