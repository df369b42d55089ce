// Package world provides generic grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// CellKind classifies a single grid cell.
type CellKind int

// Cell kinds. Room cells are carved rectangular areas; Floor cells are
// corridor tiles carved by the maze pass. Collision treats both as open.
const (
	KindWall CellKind = iota
	KindFloor
	KindRoom
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case KindWall:
		return "Wall"
	case KindFloor:
		return "Floor"
	case KindRoom:
		return "Room"
	default:
		return "Unknown"
	}
}

// IsOpen returns true if the kind is walkable (Floor or Room).
func (k CellKind) IsOpen() bool {
	return k == KindFloor || k == KindRoom
}

// Cell represents a single cell in the grid.
//
// Visited and the four wall flags are generation-time state: the carver
// marks cells visited as it walks, and the wall flags survive from an
// earlier wall-per-edge model. Nothing reads the wall flags for collision
// (Kind is authoritative); they are kept so layouts match the original
// generator exactly. After generation completes the cell is read-only.
type Cell struct {
	X, Z int

	Kind CellKind

	Visited bool

	WallNorth bool
	WallSouth bool
	WallEast  bool
	WallWest  bool
}

// NewCell creates a wall cell at the given grid position with all edge
// walls up, the starting state for every generation pass.
func NewCell(x, z int) *Cell {
	return &Cell{
		X:         x,
		Z:         z,
		Kind:      KindWall,
		WallNorth: true,
		WallSouth: true,
		WallEast:  true,
		WallWest:  true,
	}
}

// ClearWalls drops all four edge wall flags.
func (c *Cell) ClearWalls() {
	c.WallNorth = false
	c.WallSouth = false
	c.WallEast = false
	c.WallWest = false
}

// Open marks the cell as the given walkable kind and clears its edge walls.
func (c *Cell) Open(kind CellKind) {
	c.Kind = kind
	c.ClearWalls()
}
