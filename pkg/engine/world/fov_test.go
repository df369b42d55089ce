package world

import (
	"testing"
)

// openMaze returns a maze with every interior cell opened as floor.
func openMaze(size int) *Maze {
	m := NewMaze(size, size, 2.0, 1.6)
	m.ForEachCell(func(x, z int, cell *Cell) {
		if x > 0 && z > 0 && x < size-1 && z < size-1 {
			cell.Open(KindFloor)
		}
	})
	return m
}

func TestCalculateFOV_RespectsRadius(t *testing.T) {
	m := openMaze(21)

	visible := CalculateFOV(m, 10, 10, 3)
	for _, cell := range visible {
		dx := cell.X - 10
		if dx < 0 {
			dx = -dx
		}
		dz := cell.Z - 10
		if dz < 0 {
			dz = -dz
		}
		if dx > 3 || dz > 3 {
			t.Errorf("cell (%d,%d) outside radius 3 of (10,10)", cell.X, cell.Z)
		}
	}
}

func TestCalculateFOV_WallBlocksSight(t *testing.T) {
	m := openMaze(21)

	// Wall column directly east of the viewer.
	for z := 8; z <= 12; z++ {
		m.CellAt(12, z).Kind = KindWall
	}

	visible := CalculateFOV(m, 10, 10, 4)
	seen := make(map[[2]int]bool)
	for _, cell := range visible {
		seen[[2]int{cell.X, cell.Z}] = true
	}

	if !seen[[2]int{12, 10}] {
		t.Error("the blocking wall itself should be visible")
	}
	if seen[[2]int{13, 10}] {
		t.Error("cell behind the wall should be hidden")
	}
	if seen[[2]int{14, 10}] {
		t.Error("cell two behind the wall should be hidden")
	}
}

func TestCalculateFOV_IncludesViewer(t *testing.T) {
	m := openMaze(9)

	visible := CalculateFOV(m, 4, 4, 2)
	found := false
	for _, cell := range visible {
		if cell.X == 4 && cell.Z == 4 {
			found = true
		}
	}
	if !found {
		t.Error("viewer's own cell should be in the field of view")
	}
}

func TestCalculateFOV_DoesNotMutateMaze(t *testing.T) {
	m := openMaze(9)

	before := make(map[*Cell]CellKind)
	m.ForEachCell(func(x, z int, cell *Cell) { before[cell] = cell.Kind })

	CalculateFOV(m, 4, 4, 3)

	m.ForEachCell(func(x, z int, cell *Cell) {
		if before[cell] != cell.Kind {
			t.Fatalf("cell (%d,%d) kind changed during FOV calculation", x, z)
		}
	})
}
