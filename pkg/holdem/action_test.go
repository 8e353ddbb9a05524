package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	a, err := ActionFromString("check")
	assert.NoError(t, err)
	assert.Equal(t, Check, a)

	a, err = ActionFromString("all-in")
	assert.NoError(t, err)
	assert.Equal(t, AllIn, a)

	_, err = ActionFromString("bluff")
	assert.EqualError(t, err, "unknown action for identifier: bluff")
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Check", Check.String())
	assert.Equal(t, "Call", Call.String())
	assert.Equal(t, "Raise", Raise.String())
	assert.Equal(t, "All-in", AllIn.String())
	assert.Equal(t, "Fold", Fold.String())

	assert.Panics(t, func() {
		_ = Action("bluff").String()
	})
}

func TestAction_IsValid(t *testing.T) {
	assert.True(t, Raise.IsValid())
	assert.False(t, Action("bluff").IsValid())
}

func TestAction_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Fold)
	assert.NoError(t, err)
	assert.Equal(t, `{"id":"fold","name":"Fold"}`, string(b))
}

func TestAction_LogMessage(t *testing.T) {
	assert.Equal(t, "checked", Check.LogMessage(0))
	assert.Equal(t, "called ${500}", Call.LogMessage(500))
	assert.Equal(t, "raised to ${2000}", Raise.LogMessage(2000))
	assert.Equal(t, "went all-in with ${9500}", AllIn.LogMessage(9500))
	assert.Equal(t, "folded", Fold.LogMessage(0))
}
