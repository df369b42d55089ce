// Package generator builds the maze grid: rooms, corridors, connections,
// perimeter, spawn and exit.
package generator

import (
	"math/rand"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
)

// MazeGenerator is an interface for maze generation algorithms.
type MazeGenerator interface {
	Generate(width, height int) *world.Maze
	Name() string
}

// New returns the default generator for the given settings and random
// source. Structure is deterministic for a fixed source; content is random.
func New(cfg config.MazeConfig, rng *rand.Rand) *RoomMaze {
	return &RoomMaze{cfg: cfg, rng: rng}
}
