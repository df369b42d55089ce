// Package levelgen places collectibles in a generated maze and assigns
// rarity tiers with hard per-game guarantees.
package levelgen

import (
	"github.com/google/uuid"

	"darkmaze/pkg/engine/geom"
)

// Kind distinguishes the two collectible families.
type Kind int

// Collectible kinds.
const (
	KindLootbox Kind = iota
	KindNavAid
)

// String returns the string representation of a collectible kind.
func (k Kind) String() string {
	switch k {
	case KindLootbox:
		return "Lootbox"
	case KindNavAid:
		return "NavAid"
	default:
		return "Unknown"
	}
}

// Collectible is a placed world-space slot. Created in a batch at
// generation time; the only mutation afterwards is the irreversible
// Collected flip; the whole batch is discarded on restart.
type Collectible struct {
	ID        string
	Kind      Kind
	Position  geom.Vec3
	Rarity    Rarity
	Points    int
	Collected bool
}

// NewLootbox creates a lootbox slot at the given position. Rarity is
// assigned afterwards by the rarity policy over the whole batch.
func NewLootbox(pos geom.Vec3) *Collectible {
	return &Collectible{
		ID:       uuid.NewString(),
		Kind:     KindLootbox,
		Position: pos,
		Rarity:   RarityCommon,
		Points:   RarityCommon.Points(),
	}
}

// NewNavAid creates a navigation aid slot. Navigation aids carry no rarity
// and award no points; they exist to guide the player.
func NewNavAid(pos geom.Vec3) *Collectible {
	return &Collectible{
		ID:       uuid.NewString(),
		Kind:     KindNavAid,
		Position: pos,
		Rarity:   RarityNone,
	}
}

// Collect marks the slot collected. Returns false if it was already
// collected; the flip is irreversible.
func (c *Collectible) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	return true
}
