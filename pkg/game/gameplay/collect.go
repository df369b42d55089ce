package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/game/levelgen"
	"darkmaze/pkg/game/state"
)

// PickupRadius is how close the player must be to pick up a collectible.
const PickupRadius = 1.2

// CollectNearby picks up every uncollected collectible within pickup range
// of the player and returns how many were collected.
func CollectNearby(g *state.Game) int {
	n := 0
	n += collectFrom(g, g.Lootboxes)
	n += collectFrom(g, g.NavAids)
	return n
}

func collectFrom(g *state.Game, batch []*levelgen.Collectible) int {
	n := 0
	for _, c := range batch {
		if c.Collected {
			continue
		}
		if c.Position.DistanceXZ(g.Player) > PickupRadius {
			continue
		}
		if !g.Collect(c) {
			continue
		}
		n++
		announce(g, c)
	}
	return n
}

// announce logs the pickup to the player's message log.
func announce(g *state.Game, c *levelgen.Collectible) {
	if c.Kind == levelgen.KindNavAid {
		g.AddMessage(gotext.Get("Picked up a navigation aid"))
		return
	}
	g.AddMessage(gotext.Get("Collected a %s lootbox (+%d points)", c.Rarity, c.Points))
}
