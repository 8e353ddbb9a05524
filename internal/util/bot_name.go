package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Bluffing", "Folding", "Raising", "Grinding", "Tilting", "Limping", "Stalling", "Stacking", "Shoving",
	"Lucky", "Unlucky", "Patient", "Fearless", "Cagey", "Loose", "Tight", "Wild", "Stone-Cold", "Crafty",
	"Slick", "Gutsy", "Steady", "Reckless", "Quiet", "Smiling",
}

var animals = []string{
	"Shark", "Fish", "Donkey", "Fox", "Wolf", "Owl", "Rock", "Maniac", "Whale", "Mouse",
	"Tiger", "Rounder", "Nit", "Viper", "Badger", "Raccoon", "Coyote", "Falcon", "Otter", "Moose",
}

// GetRandomBotName returns a random name by combining an adjective with a table persona
func GetRandomBotName() string {
	adjectivesIndex := rand.Intn(len(adjectives))
	animalsIndex := rand.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
