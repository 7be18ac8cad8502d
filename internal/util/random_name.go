package util

import (
	"fmt"

	"tarneeb-server/internal/rng"
)

var adjectives = []string{
	"Bold", "Quiet", "Lucky", "Clever", "Sly", "Patient", "Daring", "Steady", "Sharp", "Calm", "Grand",
	"Red", "Black", "Silver", "Golden", "Crimson", "Swift", "Humble", "Brave", "Royal", "Wily", "Merry",
}

var animals = []string{
	"Falcon", "Fox", "Otter", "Heron", "Badger", "Lynx", "Owl", "Camel", "Gazelle", "Ibex", "Jackal",
	"Oryx", "Hawk", "Hedgehog", "Stork", "Viper", "Wolf", "Panther", "Raven", "Dolphin", "Tortoise",
}

var random rng.Generator = rng.Crypto{}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
