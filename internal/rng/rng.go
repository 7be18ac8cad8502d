package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a reproducible generator. Only tests should need this
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}

// Shuffle performs a Fisher-Yates shuffle of n elements using the generator
func Shuffle(g Generator, n int, swap func(i, j int)) {
	for j := n - 1; j > 0; j-- {
		i := g.Intn(j + 1)
		swap(i, j)
	}
}
