package world

import (
	"math"
	"testing"

	"darkmaze/pkg/engine/geom"
)

func TestCellToWorld_RoundTrips(t *testing.T) {
	m := NewMaze(30, 30, 2.0, 1.6)

	for _, tc := range [][2]int{{0, 0}, {15, 15}, {29, 29}, {3, 27}} {
		pos := m.CellToWorld(tc[0], tc[1])
		x, z := m.WorldToCell(pos.X, pos.Z)
		if x != tc[0] || z != tc[1] {
			t.Errorf("round trip (%d,%d) -> %+v -> (%d,%d)", tc[0], tc[1], pos, x, z)
		}
		if pos.Y != 1.6 {
			t.Errorf("CellToWorld Y = %v, want eye height 1.6", pos.Y)
		}
	}
}

func TestWorldToCell_RoundsToNearest(t *testing.T) {
	m := NewMaze(30, 30, 2.0, 1.6)

	center := m.CellToWorld(10, 10)
	// Anywhere within half a cell of the center maps back to the same cell.
	x, z := m.WorldToCell(center.X+0.9, center.Z-0.9)
	if x != 10 || z != 10 {
		t.Errorf("got cell (%d,%d), want (10,10)", x, z)
	}
}

func TestIsWall_OutOfBounds(t *testing.T) {
	m := NewMaze(10, 10, 2.0, 1.6)

	if !m.IsWall(-1000, 0) {
		t.Error("far out-of-bounds position should read as wall")
	}
	if !m.IsWall(0, 1e9) {
		t.Error("far out-of-bounds position should read as wall")
	}
}

func TestIsWall_OpenCell(t *testing.T) {
	m := NewMaze(10, 10, 2.0, 1.6)
	m.CellAt(5, 5).Open(KindFloor)

	pos := m.CellToWorld(5, 5)
	if m.IsWall(pos.X, pos.Z) {
		t.Error("opened cell should not read as wall")
	}
}

func TestCheckAtExit(t *testing.T) {
	m := NewMaze(10, 10, 2.0, 1.6)

	if m.CheckAtExit(geom.Vec3{}, 100) {
		t.Error("CheckAtExit must be false before an exit is set")
	}

	exit := m.CellToWorld(8, 8)
	m.SetExit(exit)

	near := geom.Vec3{X: exit.X + 1.0, Y: exit.Y, Z: exit.Z}
	if !m.CheckAtExit(near, 1.5) {
		t.Error("position 1.0 away should be at exit with radius 1.5")
	}

	far := geom.Vec3{X: exit.X + 2.0, Y: exit.Y, Z: exit.Z}
	if m.CheckAtExit(far, 1.5) {
		t.Error("position 2.0 away should not be at exit with radius 1.5")
	}
}

func TestDiagonal(t *testing.T) {
	m := NewMaze(30, 40, 2.0, 1.6)

	want := math.Sqrt(60*60 + 80*80)
	if got := m.Diagonal(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Diagonal() = %v, want %v", got, want)
	}
}

func TestNewMaze_PanicsOnInvalidDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero-width maze")
		}
	}()
	NewMaze(0, 10, 2.0, 1.6)
}

func TestRoomAt(t *testing.T) {
	m := NewMaze(20, 20, 2.0, 1.6)
	r := &Room{X: 5, Z: 5, Width: 4, Height: 4}
	m.AddRoom(r)

	if got := m.RoomAt(6, 6); got != r {
		t.Errorf("RoomAt(6,6) = %v, want the placed room", got)
	}
	if got := m.RoomAt(9, 9); got != nil {
		t.Errorf("RoomAt(9,9) = %v, want nil (room spans [5,9))", got)
	}
}
