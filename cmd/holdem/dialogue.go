package main

import (
	"github.com/pterm/pterm"

	"holdemsim/internal/rng"
	"holdemsim/pkg/holdem"
)

var botLines = map[holdem.Action][]string{
	holdem.Check: {
		"I'll just see what develops.",
		"Checking. Nothing to see here.",
		"Free card? Don't mind if I do.",
	},
	holdem.Call: {
		"I'll pay to see it.",
		"Calling. You don't scare me.",
		"Fine, fine, I'm in.",
	},
	holdem.Raise: {
		"Let's make this interesting.",
		"Raising. Hope you brought chips.",
		"Time to thin the herd.",
	},
	holdem.AllIn: {
		"All of it. Every last chip.",
		"I'm shoving. Good luck.",
		"No point counting them now.",
	},
	holdem.Fold: {
		"Not with these cards.",
		"You can have this one.",
		"Folding. I'll catch you next hand.",
	},
}

// chattyProvider wraps a bot provider and narrates each decision at the
// terminal
type chattyProvider struct {
	name  string
	inner holdem.DecisionProvider
	rng   rng.Generator
}

func newChattyProvider(name string, inner holdem.DecisionProvider, generator rng.Generator) *chattyProvider {
	return &chattyProvider{
		name:  name,
		inner: inner,
		rng:   generator,
	}
}

func (c *chattyProvider) Decide(view holdem.TurnView) (holdem.Decision, error) {
	decision, err := c.inner.Decide(view)
	if err != nil {
		return decision, err
	}

	lines := botLines[decision.Action]
	if len(lines) > 0 {
		line := lines[c.rng.Intn(len(lines))]
		pterm.Printfln("%s %s (%s)", pterm.LightMagenta(c.name+":"), line, decision.Action)
	}

	return decision, nil
}
