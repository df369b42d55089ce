package levelgen

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/geom"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
)

// Placer computes collectible positions for a generated maze.
type Placer struct {
	cfg config.PlacementConfig
	rng *rand.Rand
}

// NewPlacer creates a placer with the given settings and random source.
func NewPlacer(cfg config.PlacementConfig, rng *rand.Rand) *Placer {
	return &Placer{cfg: cfg, rng: rng}
}

// PlaceLootboxes places a batch of lootboxes and assigns their rarities.
//
// One slot is guaranteed inside the room containing the spawn point. The
// rest are drawn by round-robining through the maze's sections, accepting
// a candidate only if it clears the spawn, the exit and every earlier slot.
// A hard attempt cap bounds the search; exhausting it returns fewer slots
// than requested, never an error.
func (p *Placer) PlaceLootboxes(m *world.Maze) []*Collectible {
	spawn := m.SpawnPosition()
	exit := m.ExitPosition()
	if spawn == nil || exit == nil {
		return nil
	}

	count := p.cfg.LootboxMin + p.rng.Intn(p.cfg.LootboxMax-p.cfg.LootboxMin+1)

	positions := make([]geom.Vec3, 0, count)
	positions = append(positions, p.startRoomSlot(m, *spawn))

	sections := bucketSections(m)
	order := shuffledSectionOrder(p.rng)
	used := mapset.New[*world.Cell]()

	attempts := 0
	maxAttempts := count * 10

	for len(positions) < count && attempts < maxAttempts {
		for _, idx := range order {
			if len(positions) >= count || attempts >= maxAttempts {
				break
			}
			attempts++

			bucket := sections[idx]
			if len(bucket) == 0 {
				continue
			}

			cell := bucket[p.rng.Intn(len(bucket))]
			if used.Has(cell) {
				continue
			}

			pos := m.CellToWorld(cell.X, cell.Z)
			if !p.accepts(pos, *spawn, *exit, positions) {
				continue
			}

			used.Put(cell)
			positions = append(positions, pos)
		}
	}

	rarities := AssignRarities(positions, *spawn, *exit, m.Diagonal())

	boxes := make([]*Collectible, len(positions))
	for i, pos := range positions {
		boxes[i] = NewLootbox(pos)
		boxes[i].Rarity = rarities[i]
		boxes[i].Points = rarities[i].Points()
	}

	log.WithFields(log.Fields{
		"requested": count,
		"placed":    len(boxes),
		"attempts":  attempts,
	}).Debug("lootboxes placed")

	return boxes
}

// accepts applies the spacing constraints for one lootbox candidate.
func (p *Placer) accepts(pos, spawn, exit geom.Vec3, accepted []geom.Vec3) bool {
	if pos.DistanceXZ(spawn) < p.cfg.SpawnClearance {
		return false
	}
	if pos.DistanceXZ(exit) < p.cfg.ExitClearance {
		return false
	}
	for _, other := range accepted {
		if pos.DistanceXZ(other) < p.cfg.LootboxSpacing {
			return false
		}
	}
	return true
}

// startRoomSlot guarantees one slot inside the room containing the spawn
// point, at least 2 units away from the spawn itself. Falls back to the
// room center, then to a point one cell east of spawn when the spawn sits
// outside every room.
func (p *Placer) startRoomSlot(m *world.Maze, spawn geom.Vec3) geom.Vec3 {
	room := m.RoomContainingWorld(spawn)
	if room == nil {
		return geom.Vec3{X: spawn.X + m.CellSize, Y: spawn.Y, Z: spawn.Z}
	}

	const offsetAttempts = 20
	for i := 0; i < offsetAttempts; i++ {
		x := room.X + p.rng.Intn(room.Width)
		z := room.Z + p.rng.Intn(room.Height)
		pos := m.CellToWorld(x, z)
		if pos.DistanceXZ(spawn) >= 2 {
			return pos
		}
	}

	center := m.CellToWorld(room.CenterX(), room.CenterZ())
	if center.DistanceXZ(spawn) >= 2 {
		return center
	}

	return geom.Vec3{X: spawn.X + m.CellSize, Y: spawn.Y, Z: spawn.Z}
}
