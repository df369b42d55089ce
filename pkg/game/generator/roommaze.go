package generator

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
)

// RoomMaze generates mazes by placing rectangular rooms first, then carving
// corridors between them with a recursive backtracker, then punching
// room-to-corridor connections and shortcut openings.
type RoomMaze struct {
	cfg config.MazeConfig
	rng *rand.Rand
}

// Name returns the name of this generator.
func (g *RoomMaze) Name() string {
	return "Rooms + Backtracker"
}

// Generate creates a new maze of the given dimensions.
//
// Precondition (not checked): width, height >= 2*RoomMaxSize + 2. Under
// nominal parameters (30x30, cell size 2) generation never fails; smaller
// grids are out of scope.
func (g *RoomMaze) Generate(width, height int) *world.Maze {
	m := world.NewMaze(width, height, g.cfg.CellSize, g.cfg.EyeHeight)

	g.placeRooms(m)
	g.carveCorridors(m)
	g.connectRooms(m)
	g.addOpenings(m)
	g.enclosePerimeter(m)
	g.ensureConnectivity(m)

	// Spawn must be set before exit: the exit search measures from spawn.
	g.selectSpawn(m)
	g.selectExit(m)

	log.WithFields(log.Fields{
		"width":  width,
		"height": height,
		"rooms":  len(m.Rooms()),
	}).Debug("maze generated")

	return m
}

// enclosePerimeter forces every boundary cell back to Wall. Room placement
// keeps a 1-cell margin, but connections and openings can reach the edge.
func (g *RoomMaze) enclosePerimeter(m *world.Maze) {
	for x := 0; x < m.Width; x++ {
		m.CellAt(x, 0).Kind = world.KindWall
		m.CellAt(x, m.Height-1).Kind = world.KindWall
	}
	for z := 0; z < m.Height; z++ {
		m.CellAt(0, z).Kind = world.KindWall
		m.CellAt(m.Width-1, z).Kind = world.KindWall
	}
}
