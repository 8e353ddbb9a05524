package main

import (
	"strings"

	"github.com/pterm/pterm"

	"holdemsim/pkg/deck"
	"holdemsim/pkg/holdem"
)

var suitSymbols = map[deck.Suit]string{
	deck.Clubs:    "♣",
	deck.Diamonds: "♦",
	deck.Hearts:   "♥",
	deck.Spades:   "♠",
}

var rankSymbols = map[int]string{
	10:        "10",
	deck.Jack:  "J",
	deck.Queen: "Q",
	deck.King:  "K",
	deck.Ace:   "A",
}

func cardString(card *deck.Card) string {
	rank, ok := rankSymbols[card.Rank]
	if !ok {
		rank = pterm.Sprintf("%d", card.Rank)
	}

	symbol := rank + suitSymbols[card.Suit]
	if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
		return pterm.LightRed(symbol)
	}

	return pterm.LightWhite(symbol)
}

func handString(cards deck.Hand) string {
	if len(cards) == 0 {
		return pterm.Gray("(none)")
	}

	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = cardString(card)
	}

	return strings.Join(parts, " ")
}

// renderTurn draws the state the player needs to make a decision
func renderTurn(view holdem.TurnView) {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)

	board := box.WithTitle(pterm.LightYellow(strings.ToUpper(view.Street))).WithTitleTopCenter().
		Sprintf("Board: %s\nPot: %d", handString(view.Board), view.Pot)

	seat := box.WithTitle(pterm.LightCyan(view.Name)).WithTitleTopLeft().
		Sprintf("Cards: %s\nChips: %d\nTo call: %d", handString(view.HoleCards), view.Chips, view.ToCall)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: board}},
		{{Data: seat}},
	}).Render()
}

const chipBarWidth = 24

// chipBar renders a stack as a bar scaled against the table's largest stack
func chipBar(chips, largest int) string {
	if largest == 0 {
		return ""
	}

	filled := chips * chipBarWidth / largest
	return pterm.LightGreen(strings.Repeat("█", filled)) + pterm.Gray(strings.Repeat("░", chipBarWidth-filled))
}

// renderResult summarizes a finished hand: who won, with what, and where
// every stack stands
func renderResult(table *holdem.Table, result *holdem.HandResult) {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)

	outcome := pterm.Sprintfln("%s won %d", pterm.LightCyan(strings.Join(result.Winners, ", ")), result.Pot)
	if result.EndedEarly {
		outcome += pterm.Sprintfln("everyone else folded")
	} else {
		outcome += pterm.Sprintfln("Board: %s", handString(result.Board))
		outcome += pterm.Sprintfln("Winning hand: %s", result.WinningHand)
	}

	largest := 0
	for _, p := range table.Participants() {
		if p.Chips() > largest {
			largest = p.Chips()
		}
	}

	stacks := ""
	for _, p := range table.Participants() {
		line := pterm.Sprintf("%-20s %8d %s", p.Name, p.Chips(), chipBar(p.Chips(), largest))
		if p.Chips() == 0 {
			line = pterm.Gray(pterm.Sprintf("%-20s %8d (eliminated)", p.Name, 0))
		}
		stacks += line + "\n"
	}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: box.WithTitle(pterm.LightGreen("|HAND RESULT|")).WithTitleTopCenter().Sprint(outcome)}},
		{{Data: box.WithTitle("Stacks").WithTitleTopLeft().Sprint(stacks)}},
	}).Render()
}
