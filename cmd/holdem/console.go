package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"holdemsim/pkg/holdem"
)

// consoleProvider asks the person at the terminal for each decision
type consoleProvider struct{}

func (c *consoleProvider) Decide(view holdem.TurnView) (holdem.Decision, error) {
	renderTurn(view)

	for {
		selected, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Select your action").
			WithOptions(legalOptions(view)).
			Show()

		action, err := holdem.ActionFromString(selected)
		if err != nil {
			pterm.Error.Printfln("unknown action: %s", selected)
			continue
		}

		if action != holdem.Raise {
			return holdem.Decision{Action: action}, nil
		}

		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(pterm.Sprintf("Enter the raise amount (minimum %d)", view.MinRaise)).
			Show()

		amount, err := strconv.Atoi(input)
		if err != nil || amount < view.MinRaise {
			pterm.Error.Printfln("a raise must be a number of at least %d", view.MinRaise)
			continue
		}

		if amount > view.Chips-view.ToCall {
			pterm.Error.Printfln("you can raise at most %d", view.Chips-view.ToCall)
			continue
		}

		return holdem.Decision{Action: holdem.Raise, RaiseAmount: amount}, nil
	}
}

// legalOptions narrows the menu to actions the table will accept
func legalOptions(view holdem.TurnView) []string {
	options := make([]string, 0, 4)

	if view.ToCall == 0 {
		options = append(options, string(holdem.Check))
	} else {
		options = append(options, string(holdem.Call))
	}

	if view.CanRaise && view.Chips > view.ToCall+view.MinRaise {
		options = append(options, string(holdem.Raise))
	}

	options = append(options, string(holdem.AllIn), string(holdem.Fold))
	return options
}
