package world

import (
	"math"

	"darkmaze/pkg/engine/geom"
)

// Maze aggregates the generated grid: dimensions, cell size in world units,
// the 2D cell array, the placed rooms, and the spawn/exit world positions.
//
// The cell array is mutated only by the generator; once generation
// completes the maze is read-only and safe to share between placement,
// rendering and collision queries without synchronization.
type Maze struct {
	Width, Height int
	CellSize      float64
	EyeHeight     float64

	cells [][]*Cell
	rooms []*Room

	spawn *geom.Vec3
	exit  *geom.Vec3
}

// NewMaze creates a maze of the given dimensions with every cell a wall.
func NewMaze(width, height int, cellSize, eyeHeight float64) *Maze {
	if width <= 0 || height <= 0 {
		panic("Maze dimensions must be positive")
	}

	m := &Maze{
		Width:     width,
		Height:    height,
		CellSize:  cellSize,
		EyeHeight: eyeHeight,
	}

	m.cells = make([][]*Cell, width)
	for x := 0; x < width; x++ {
		m.cells[x] = make([]*Cell, height)
		for z := 0; z < height; z++ {
			m.cells[x][z] = NewCell(x, z)
		}
	}

	return m
}

// InBounds checks if a grid position is within the maze.
func (m *Maze) InBounds(x, z int) bool {
	return x >= 0 && x < m.Width && z >= 0 && z < m.Height
}

// CellAt returns the cell at the given grid position, or nil if out of bounds.
func (m *Maze) CellAt(x, z int) *Cell {
	if !m.InBounds(x, z) {
		return nil
	}
	return m.cells[x][z]
}

// AddRoom records a placed room.
func (m *Maze) AddRoom(r *Room) {
	m.rooms = append(m.rooms, r)
}

// Rooms returns all placed rooms. The slice is shared; callers must not
// modify it.
func (m *Maze) Rooms() []*Room {
	return m.rooms
}

// RoomAt returns the room containing the grid position, or nil.
func (m *Maze) RoomAt(x, z int) *Room {
	for _, r := range m.rooms {
		if r.Contains(x, z) {
			return r
		}
	}
	return nil
}

// RoomContainingWorld returns the room whose footprint contains the world
// position, or nil. Used to find the room the spawn point landed in.
func (m *Maze) RoomContainingWorld(pos geom.Vec3) *Room {
	x, z := m.WorldToCell(pos.X, pos.Z)
	return m.RoomAt(x, z)
}

// SetSpawn stores the spawn world position. Set once per game.
func (m *Maze) SetSpawn(pos geom.Vec3) {
	p := pos
	m.spawn = &p
}

// SetExit stores the exit world position. Set once per game, after spawn.
func (m *Maze) SetExit(pos geom.Vec3) {
	p := pos
	m.exit = &p
}

// SpawnPosition returns the spawn world position, or nil before generation.
func (m *Maze) SpawnPosition() *geom.Vec3 {
	return m.spawn
}

// ExitPosition returns the exit world position, or nil before generation.
func (m *Maze) ExitPosition() *geom.Vec3 {
	return m.exit
}

// CellToWorld converts grid coordinates to the world-space center of that
// cell. Y is fixed to eye height.
func (m *Maze) CellToWorld(x, z int) geom.Vec3 {
	return geom.Vec3{
		X: (float64(x) - float64(m.Width)/2) * m.CellSize,
		Y: m.EyeHeight,
		Z: (float64(z) - float64(m.Height)/2) * m.CellSize,
	}
}

// WorldToCell converts a world position to grid coordinates by rounding
// to the nearest cell index.
func (m *Maze) WorldToCell(worldX, worldZ float64) (x, z int) {
	x = int(math.Round(worldX/m.CellSize + float64(m.Width)/2))
	z = int(math.Round(worldZ/m.CellSize + float64(m.Height)/2))
	return x, z
}

// IsWall reports whether the world position is blocked. Out-of-bounds
// positions are treated as walls, so movement can never leave the grid.
func (m *Maze) IsWall(worldX, worldZ float64) bool {
	x, z := m.WorldToCell(worldX, worldZ)
	cell := m.CellAt(x, z)
	if cell == nil {
		return true
	}
	return cell.Kind == KindWall
}

// CheckAtExit reports whether the position is within radius of the exit
// on the ground plane. Returns false if no exit has been set.
func (m *Maze) CheckAtExit(pos geom.Vec3, radius float64) bool {
	if m.exit == nil {
		return false
	}
	return pos.DistanceXZ(*m.exit) <= radius
}

// Diagonal returns the world-space diagonal of the maze bounding box,
// used to normalize distances for the rarity policy.
func (m *Maze) Diagonal() float64 {
	w := float64(m.Width) * m.CellSize
	h := float64(m.Height) * m.CellSize
	return math.Sqrt(w*w + h*h)
}

// ForEachCell iterates over all cells, calling fn for each.
func (m *Maze) ForEachCell(fn func(x, z int, cell *Cell)) {
	for x := 0; x < m.Width; x++ {
		for z := 0; z < m.Height; z++ {
			fn(x, z, m.cells[x][z])
		}
	}
}

// OpenCells returns all cells of the given kinds, in scan order.
func (m *Maze) OpenCells(kinds ...CellKind) []*Cell {
	var out []*Cell
	m.ForEachCell(func(x, z int, cell *Cell) {
		for _, k := range kinds {
			if cell.Kind == k {
				out = append(out, cell)
				return
			}
		}
	})
	return out
}
