package levelgen

import (
	"darkmaze/pkg/engine/geom"
)

// Rarity is a collectible tier driving points and power charge.
type Rarity int

// Rarity tiers, lowest to highest. RarityNone marks navigation aids.
const (
	RarityNone Rarity = iota
	RarityCommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// String returns the string representation of a rarity.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return "None"
	}
}

// Points returns the score awarded for collecting this tier.
func (r Rarity) Points() int {
	switch r {
	case RarityCommon:
		return 10
	case RarityRare:
		return 25
	case RarityEpic:
		return 50
	case RarityLegendary:
		return 100
	default:
		return 0
	}
}

// rarityCounts is the accumulator threaded through the assignment loop.
// Kept as an explicit value so the policy has no shared mutable state.
type rarityCounts struct {
	legendary int
	epic      int
	rare      int
}

// AssignRarities assigns a rarity to each position in placement order.
//
// The policy is a greedy sequential state machine: while a tier's guarantee
// is unmet, every position is considered for that tier only, and becomes
// Common when it does not qualify. Distances are normalized by the maze
// world diagonal. Guarantees over the whole batch: exactly 1 Legendary
// (the final-position fallback never lets it stay at 0); at most 1 Epic,
// guaranteed within the last 4 positions once the Legendary is placed;
// at most 2 Rare with a last-3-positions fallback for the first one.
//
// Because the guarantee conditions count remaining positions, the exact
// rarity-to-position mapping depends on the (shuffled) placement order.
// The cardinality guarantees are the stable contract, not the mapping.
func AssignRarities(positions []geom.Vec3, spawn, exit geom.Vec3, diagonal float64) []Rarity {
	n := len(positions)
	out := make([]Rarity, n)
	counts := rarityCounts{}

	for i, pos := range positions {
		distSpawn := pos.DistanceXZ(spawn) / diagonal
		distExit := pos.DistanceXZ(exit) / diagonal
		remaining := n - 1 - i

		switch {
		case counts.legendary == 0:
			switch {
			case distSpawn > 0.6 && distExit > 0.6:
				// Ideal: far from both endpoints.
				out[i] = RarityLegendary
			case (distSpawn > 0.5 || distExit > 0.5) && remaining < 3:
				// Late fallback: relax to one far endpoint.
				out[i] = RarityLegendary
			case i == n-1:
				// Final guarantee: never skip placing a Legendary.
				out[i] = RarityLegendary
			default:
				out[i] = RarityCommon
			}
			if out[i] == RarityLegendary {
				counts.legendary++
			}

		case counts.epic == 0:
			if (distSpawn > 0.5 && n >= 10) || i >= n-4 {
				out[i] = RarityEpic
				counts.epic++
			} else {
				out[i] = RarityCommon
			}

		case counts.rare < 2:
			if distSpawn > 0.3 || (counts.rare == 0 && i >= n-3) {
				out[i] = RarityRare
				counts.rare++
			} else {
				out[i] = RarityCommon
			}

		default:
			out[i] = RarityCommon
		}
	}

	return out
}
