package world

// CalculateFOV returns the cells visible from a grid position within a
// radius. Uses a symmetric diamond (Chebyshev) shape with Bresenham
// line-of-sight; wall cells block visibility. The maze itself is not
// mutated — callers own any discovered/explored bookkeeping.
func CalculateFOV(m *Maze, centerX, centerZ, radius int) []*Cell {
	center := m.CellAt(centerX, centerZ)
	if center == nil {
		return nil
	}

	visible := make(map[*Cell]bool)
	visible[center] = true

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			if chebyshevDist(dx, dz) > radius {
				continue
			}

			cell := m.CellAt(centerX+dx, centerZ+dz)
			if cell == nil {
				continue
			}

			if hasLineOfSight(m, centerX, centerZ, cell.X, cell.Z) {
				visible[cell] = true
			}
		}
	}

	result := make([]*Cell, 0, len(visible))
	for cell := range visible {
		result = append(result, cell)
	}
	return result
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dx, dz).
func chebyshevDist(dx, dz int) int {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDz := dz
	if absDz < 0 {
		absDz = -absDz
	}
	if absDx > absDz {
		return absDx
	}
	return absDz
}

// hasLineOfSight returns true if there is a clear path from (x0,z0) to
// (x1,z1). Uses Bresenham's line algorithm; vision is blocked by walls.
// The destination cell itself never blocks, so a wall face is visible
// while everything behind it stays hidden.
func hasLineOfSight(m *Maze, x0, z0, x1, z1 int) bool {
	dx := x1 - x0
	dz := z1 - z0

	if dx == 0 && dz == 0 {
		return true
	}

	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDz := dz
	if absDz < 0 {
		absDz = -absDz
	}

	var stepX, stepZ int
	if dx > 0 {
		stepX = 1
	} else if dx < 0 {
		stepX = -1
	}
	if dz > 0 {
		stepZ = 1
	} else if dz < 0 {
		stepZ = -1
	}

	x, z := x0, z0

	if absDx >= absDz {
		// Step along X
		err := 2*absDz - absDx
		for x != x1 {
			x += stepX
			if err > 0 {
				z += stepZ
				err -= 2 * absDx
			}
			err += 2 * absDz

			if x == x1 && z == z1 {
				break
			}
			cell := m.CellAt(x, z)
			if cell == nil || cell.Kind == KindWall {
				return false
			}
		}
	} else {
		// Step along Z
		err := 2*absDx - absDz
		for z != z1 {
			z += stepZ
			if err > 0 {
				x += stepX
				err -= 2 * absDz
			}
			err += 2 * absDx

			if x == x1 && z == z1 {
				break
			}
			cell := m.CellAt(x, z)
			if cell == nil || cell.Kind == KindWall {
				return false
			}
		}
	}

	return true
}
