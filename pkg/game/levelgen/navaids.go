package levelgen

import (
	"math"

	"darkmaze/pkg/engine/geom"
	"darkmaze/pkg/engine/world"
)

// Annulus bounds for navigation aid sampling around legendary positions.
const (
	navAidRingMin = 8.0
	navAidRingMax = 20.0
)

// PlaceNavigationAids places 0 to NavAidMax aids. Candidates are drawn
// first from an annulus around the already-placed legendary lootboxes —
// aids should lead the player toward the rarest loot — and fall back to
// uniform sampling over open cells. Only aid-to-aid spacing is enforced;
// proximity to lootboxes is desired, not avoided. Same bounded-attempt
// termination policy as lootbox placement.
func (p *Placer) PlaceNavigationAids(m *world.Maze, legendary []geom.Vec3) []*Collectible {
	if p.cfg.NavAidMax == 0 {
		return nil
	}

	count := p.rng.Intn(p.cfg.NavAidMax + 1)
	if count == 0 {
		return nil
	}

	open := m.OpenCells(world.KindRoom, world.KindFloor)
	if len(open) == 0 {
		return nil
	}

	positions := make([]geom.Vec3, 0, count)
	maxAttempts := count * 10

	for attempt := 0; attempt < maxAttempts && len(positions) < count; attempt++ {
		var pos geom.Vec3
		var ok bool

		// Prefer annulus sampling for the first half of the budget.
		if len(legendary) > 0 && attempt < maxAttempts/2 {
			pos, ok = p.annulusSample(m, legendary)
		} else {
			cell := open[p.rng.Intn(len(open))]
			pos, ok = m.CellToWorld(cell.X, cell.Z), true
		}
		if !ok {
			continue
		}

		if !p.aidSpacingOK(pos, positions) {
			continue
		}

		positions = append(positions, pos)
	}

	aids := make([]*Collectible, len(positions))
	for i, pos := range positions {
		aids[i] = NewNavAid(pos)
	}
	return aids
}

// annulusSample draws a candidate in the 8-20 unit ring around a random
// legendary position and snaps it to the containing cell if that cell is
// open. Returns false when the sample lands in a wall or out of bounds.
func (p *Placer) annulusSample(m *world.Maze, legendary []geom.Vec3) (geom.Vec3, bool) {
	center := legendary[p.rng.Intn(len(legendary))]
	angle := p.rng.Float64() * 2 * math.Pi
	radius := navAidRingMin + p.rng.Float64()*(navAidRingMax-navAidRingMin)

	worldX := center.X + math.Cos(angle)*radius
	worldZ := center.Z + math.Sin(angle)*radius

	x, z := m.WorldToCell(worldX, worldZ)
	cell := m.CellAt(x, z)
	if cell == nil || !cell.Kind.IsOpen() {
		return geom.Vec3{}, false
	}
	return m.CellToWorld(x, z), true
}

// aidSpacingOK enforces the minimum distance between navigation aids.
func (p *Placer) aidSpacingOK(pos geom.Vec3, accepted []geom.Vec3) bool {
	for _, other := range accepted {
		if pos.DistanceXZ(other) < p.cfg.NavAidSpacing {
			return false
		}
	}
	return true
}
