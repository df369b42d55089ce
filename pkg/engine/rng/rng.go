// Package rng provides seedable random sources for world generation.
// Generation and placement code takes a *rand.Rand explicitly instead of
// calling the global functions, so tests can fix a seed and replay a layout.
package rng

import (
	"math/rand"
	"time"
)

// New returns a random source for the given seed.
// Seed 0 means "fresh layout every run" and falls back to the clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
