package generator

import (
	"sort"

	"darkmaze/pkg/engine/geom"
	"darkmaze/pkg/engine/world"
)

// selectSpawn picks a uniform random Room cell (Floor cells if no rooms
// exist) and stores its world position as the spawn, Y fixed to eye height.
func (g *RoomMaze) selectSpawn(m *world.Maze) {
	candidates := m.OpenCells(world.KindRoom)
	if len(candidates) == 0 {
		candidates = m.OpenCells(world.KindFloor)
	}
	if len(candidates) == 0 {
		// Neither rooms nor floor: precondition violation. Default to the
		// grid origin rather than failing.
		m.SetSpawn(geom.Vec3{Y: m.EyeHeight})
		return
	}

	cell := candidates[g.rng.Intn(len(candidates))]
	m.SetSpawn(m.CellToWorld(cell.X, cell.Z))
}

// selectExit picks the exit after the spawn is set: candidates are sorted
// by descending distance from spawn and the exit is drawn uniformly from
// the farthest quartile. This biases the exit far from spawn while keeping
// its exact location unpredictable.
func (g *RoomMaze) selectExit(m *world.Maze) {
	spawn := m.SpawnPosition()
	if spawn == nil {
		return
	}

	candidates := m.OpenCells(world.KindRoom)
	if len(candidates) == 0 {
		candidates = m.OpenCells(world.KindFloor)
	}
	if len(candidates) == 0 {
		// Mirror the spawn's quadrant to the opposite quadrant.
		m.SetExit(geom.Vec3{X: -spawn.X, Y: m.EyeHeight, Z: -spawn.Z})
		return
	}

	type scored struct {
		cell *world.Cell
		dist float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, cell := range candidates {
		pos := m.CellToWorld(cell.X, cell.Z)
		ranked = append(ranked, scored{cell, spawn.DistanceXZ(pos)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].dist > ranked[j].dist
	})

	quartile := len(ranked) / 4
	if quartile < 1 {
		quartile = 1
	}

	pick := ranked[g.rng.Intn(quartile)].cell
	m.SetExit(m.CellToWorld(pick.X, pick.Z))
}
