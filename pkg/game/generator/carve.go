package generator

import (
	"darkmaze/pkg/engine/world"
)

// carveCorridors runs a recursive backtracker over the non-room cells.
// From the top-of-stack cell it looks at neighbors exactly 2 cells away in
// each axis direction; carving the midpoint is the "wall removal". Every
// reachable cell on the 2-step lattice ends up connected by construction.
func (g *RoomMaze) carveCorridors(m *world.Maze) {
	start := g.randomNonRoomCell(m)
	if start == nil {
		return
	}

	start.Open(world.KindFloor)
	start.Visited = true

	stack := []*world.Cell{start}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := g.unvisitedJumps(m, curr)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[g.rng.Intn(len(candidates))]

		mid := m.CellAt((curr.X+next.X)/2, (curr.Z+next.Z)/2)
		mid.Open(world.KindFloor)
		mid.Visited = true

		next.Open(world.KindFloor)
		next.Visited = true

		stack = append(stack, next)
	}
}

// unvisitedJumps lists cells exactly 2 away in the 4 axis directions that
// are in-bounds, unvisited and not part of a room.
func (g *RoomMaze) unvisitedJumps(m *world.Maze, from *world.Cell) []*world.Cell {
	var out []*world.Cell
	for _, dir := range world.AllDirections() {
		dx, dz := dir.Delta()
		cell := m.CellAt(from.X+2*dx, from.Z+2*dz)
		if cell == nil || cell.Visited || cell.Kind == world.KindRoom {
			continue
		}
		out = append(out, cell)
	}
	return out
}

// randomNonRoomCell picks a uniform random cell outside every room, or nil
// if the grid is entirely rooms (out of precondition).
func (g *RoomMaze) randomNonRoomCell(m *world.Maze) *world.Cell {
	var candidates []*world.Cell
	m.ForEachCell(func(x, z int, cell *world.Cell) {
		if cell.Kind != world.KindRoom {
			candidates = append(candidates, cell)
		}
	})
	if len(candidates) == 0 {
		return nil
	}
	return candidates[g.rng.Intn(len(candidates))]
}

// connectRooms punches 1-3 openings per room: a random side, a random point
// along that side's exterior, forced to Floor if in-bounds. There is no
// validation that the opening reaches a carved corridor; an occasional
// connection into solid wall is accepted.
func (g *RoomMaze) connectRooms(m *world.Maze) {
	for _, room := range m.Rooms() {
		connections := 1 + g.rng.Intn(3)
		for i := 0; i < connections; i++ {
			x, z := g.randomExteriorPoint(room)
			cell := m.CellAt(x, z)
			if cell == nil {
				continue
			}
			cell.Open(world.KindFloor)
		}
	}
}

// randomExteriorPoint picks a random side of the room and a random point
// just outside that side.
func (g *RoomMaze) randomExteriorPoint(room *world.Room) (x, z int) {
	switch world.Direction(g.rng.Intn(4)) {
	case world.North:
		return room.X + g.rng.Intn(room.Width), room.Z - 1
	case world.South:
		return room.X + g.rng.Intn(room.Width), room.Z + room.Height
	case world.East:
		return room.X + room.Width, room.Z + g.rng.Intn(room.Height)
	default: // West
		return room.X - 1, room.Z + g.rng.Intn(room.Height)
	}
}

// addOpenings converts roughly OpeningChance of all cells from Wall to
// Floor when they already touch at least 2 open cells. This adds shortcuts
// and loops; flow improvement only, not structurally required.
func (g *RoomMaze) addOpenings(m *world.Maze) {
	m.ForEachCell(func(x, z int, cell *world.Cell) {
		if g.rng.Float64() >= g.cfg.OpeningChance {
			return
		}
		if cell.Kind != world.KindWall {
			return
		}
		if g.openNeighbors(m, x, z) < 2 {
			return
		}
		cell.Open(world.KindFloor)
	})
}

// openNeighbors counts immediate 4-directional Floor/Room neighbors.
func (g *RoomMaze) openNeighbors(m *world.Maze, x, z int) int {
	n := 0
	for _, dir := range world.AllDirections() {
		dx, dz := dir.Delta()
		cell := m.CellAt(x+dx, z+dz)
		if cell != nil && cell.Kind.IsOpen() {
			n++
		}
	}
	return n
}
