package util

import (
	"strings"
	"testing"

	"github.com/bmizerany/assert"
)

func TestGetRandomBotName(t *testing.T) {
	name := GetRandomBotName()
	parts := strings.Split(name, " ")
	assert.Equal(t, true, len(parts) >= 2)
}
