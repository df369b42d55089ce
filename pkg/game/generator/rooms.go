package generator

import (
	"darkmaze/pkg/engine/world"
)

// placeRooms attempts a fixed number of room placements. Each try picks a
// random size in [RoomMinSize, RoomMaxSize] and a random origin that keeps
// a 1-cell margin from the outer boundary; a candidate is accepted only if
// it stays at least 1 cell away from every previously accepted room.
// Accepted rooms carve their footprint to Room cells with cleared edge
// walls. Rooms are not connected to anything at this stage.
func (g *RoomMaze) placeRooms(m *world.Maze) {
	sizeRange := g.cfg.RoomMaxSize - g.cfg.RoomMinSize + 1

	for attempt := 0; attempt < g.cfg.RoomAttempts; attempt++ {
		w := g.cfg.RoomMinSize + g.rng.Intn(sizeRange)
		h := g.cfg.RoomMinSize + g.rng.Intn(sizeRange)

		maxX := m.Width - w - 1
		maxZ := m.Height - h - 1
		if maxX < 1 || maxZ < 1 {
			continue
		}

		candidate := &world.Room{
			X:      1 + g.rng.Intn(maxX),
			Z:      1 + g.rng.Intn(maxZ),
			Width:  w,
			Height: h,
		}

		if overlapsAny(candidate, m.Rooms()) {
			continue
		}

		for x := candidate.X; x < candidate.X+candidate.Width; x++ {
			for z := candidate.Z; z < candidate.Z+candidate.Height; z++ {
				m.CellAt(x, z).Open(world.KindRoom)
			}
		}

		m.AddRoom(candidate)
	}
}

// overlapsAny checks the candidate against all accepted rooms with a
// 1-cell buffer on every side.
func overlapsAny(candidate *world.Room, rooms []*world.Room) bool {
	for _, r := range rooms {
		if candidate.Overlaps(r, 1) {
			return true
		}
	}
	return false
}
