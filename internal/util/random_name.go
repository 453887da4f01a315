package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Lucky", "Steady", "Bold", "Quiet", "Sly", "Patient", "Reckless", "Cool", "Sharp", "Grinding",
	"Tight", "Loose", "Stoic", "Cunning", "Nervous", "Brave",
}

var nicknames = []string{
	"Shark", "Fish", "Donkey", "Rock", "Maniac", "Nit", "Whale", "Calling Station", "Grinder", "Bluffer",
	"Ace", "Dealer",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random seat name by combining an adjective with a table nickname
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], nicknames[random.Intn(len(nicknames))])
}
