package holdem

import (
	"errors"
	"fmt"
)

// IllegalActionError is an error for a decision that violates the betting
// rules. The action is rejected with no state change; the caller may
// re-request a decision.
type IllegalActionError string

func (i IllegalActionError) Error() string {
	return string(i)
}

func newIllegalActionError(format string, a ...interface{}) IllegalActionError {
	return IllegalActionError(fmt.Sprintf(format, a...))
}

// ErrNoShowdown is an error when no participant is eligible at showdown.
// Reaching it means an upstream invariant was violated; the hand must abort.
var ErrNoShowdown = errors.New("no participants eligible for showdown")

// ErrNotEnoughParticipants is an error when a hand cannot start because
// fewer than two participants hold chips
var ErrNotEnoughParticipants = errors.New("fewer than two participants with chips")
