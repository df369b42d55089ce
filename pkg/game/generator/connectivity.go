package generator

import (
	"sort"

	"darkmaze/pkg/engine/world"
)

// ensureConnectivity merges disconnected open regions into one component.
// Room connections are punched blind and can land in solid wall, so an
// unlucky room (or a corridor pocket walled off by the perimeter pass) can
// end up unreachable; this pass carves an L-shaped tunnel from each stray
// component to the largest one until a single component remains.
func (g *RoomMaze) ensureConnectivity(m *world.Maze) {
	for {
		components := openComponents(m)
		if len(components) <= 1 {
			return
		}

		sort.Slice(components, func(i, j int) bool {
			return len(components[i]) > len(components[j])
		})

		a, b := closestPair(components[0], components[1])
		carveTunnel(m, a, b)
	}
}

// openComponents returns the 4-connected components of all open cells.
func openComponents(m *world.Maze) [][]*world.Cell {
	seen := make(map[*world.Cell]bool)
	var components [][]*world.Cell

	m.ForEachCell(func(x, z int, cell *world.Cell) {
		if !cell.Kind.IsOpen() || seen[cell] {
			return
		}

		var comp []*world.Cell
		queue := []*world.Cell{cell}
		seen[cell] = true

		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			comp = append(comp, curr)

			for _, dir := range world.AllDirections() {
				dx, dz := dir.Delta()
				next := m.CellAt(curr.X+dx, curr.Z+dz)
				if next == nil || seen[next] || !next.Kind.IsOpen() {
					continue
				}
				seen[next] = true
				queue = append(queue, next)
			}
		}

		components = append(components, comp)
	})

	return components
}

// closestPair returns the cell pair with the smallest Manhattan distance
// between the two components.
func closestPair(a, b []*world.Cell) (*world.Cell, *world.Cell) {
	bestA, bestB := a[0], b[0]
	best := manhattan(bestA, bestB)

	for _, ca := range a {
		for _, cb := range b {
			if d := manhattan(ca, cb); d < best {
				best = d
				bestA, bestB = ca, cb
			}
		}
	}
	return bestA, bestB
}

func manhattan(a, b *world.Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dz := a.Z - b.Z
	if dz < 0 {
		dz = -dz
	}
	return dx + dz
}

// carveTunnel opens an L-shaped path from a to b: along X first, then Z.
// Both endpoints are interior open cells, so the path never touches the
// perimeter rows or columns of their shared axis.
func carveTunnel(m *world.Maze, a, b *world.Cell) {
	step := func(from, to int) int {
		if to > from {
			return 1
		}
		return -1
	}

	x, z := a.X, a.Z
	for x != b.X {
		x += step(x, b.X)
		openIfWall(m, x, z)
	}
	for z != b.Z {
		z += step(z, b.Z)
		openIfWall(m, x, z)
	}
}

func openIfWall(m *world.Maze, x, z int) {
	cell := m.CellAt(x, z)
	if cell != nil && cell.Kind == world.KindWall {
		cell.Open(world.KindFloor)
	}
}
