// Package state holds the aggregate game state: the generated maze, the
// collectible batches, the power pool and the player. Gameplay functions
// mutate it; renderers read it.
package state

import (
	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/geom"
	"darkmaze/pkg/engine/rng"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/levelgen"
	"darkmaze/pkg/game/power"
)

// FlashlightID is the power consumer id of the player's flashlight.
const FlashlightID = "flashlight"

// Game represents a single run of Darkmaze.
type Game struct {
	Cfg config.Config

	Maze *world.Maze

	Lootboxes []*levelgen.Collectible
	NavAids   []*levelgen.Collectible

	Power *power.Simulation

	// FlashlightLamp is the emitter the power simulation drives; renderers
	// scale brightness by its intensity.
	FlashlightLamp *power.Lamp

	// FlashlightLevel is remembered even while the flashlight is off; only
	// toggling on pushes the level's rate to the simulation.
	FlashlightLevel int
	FlashlightOn    bool

	Player  geom.Vec3
	Heading float64

	Score int
	Won   bool

	// Discovered tracks every cell the player has seen, for the map view.
	Discovered mapset.Set[*world.Cell]

	Messages []string

	// Generator and placer share one random stream, so Restart continues
	// it instead of replaying the same layout.
	gen    generator.MazeGenerator
	placer *levelgen.Placer
}

// NewGame creates a game from the given configuration and generates the
// first maze.
func NewGame(cfg config.Config) *Game {
	source := rng.New(cfg.Maze.Seed)

	g := &Game{
		Cfg:             cfg,
		Power:           power.NewSimulation(cfg.Power),
		FlashlightLamp:  power.NewLamp(1.0),
		FlashlightLevel: 1,
		gen:             generator.New(cfg.Maze, source),
		placer:          levelgen.NewPlacer(cfg.Placement, source),
	}

	g.Restart()
	return g
}

// Restart regenerates the maze and collectibles and resets the run. The
// previous batch and every power consumer are dropped first, so nothing
// collected or registered before the restart carries over.
func (g *Game) Restart() {
	g.Lootboxes = nil
	g.NavAids = nil
	g.Power.Reset()

	g.Maze = g.gen.Generate(g.Cfg.Maze.Width, g.Cfg.Maze.Height)
	g.Lootboxes = g.placer.PlaceLootboxes(g.Maze)
	g.NavAids = g.placer.PlaceNavigationAids(g.Maze, g.legendaryPositions())

	if spawn := g.Maze.SpawnPosition(); spawn != nil {
		g.Player = *spawn
	}
	g.Heading = 0
	g.Score = 0
	g.Won = false
	g.Discovered = mapset.New[*world.Cell]()
	g.Messages = make([]string, 0)

	g.FlashlightLamp.SetIntensity(1.0)
	g.FlashlightOn = false
	g.Power.RegisterConsumer(FlashlightID, g.FlashlightLamp, power.KindFlashlight, 1)

	log.WithFields(log.Fields{
		"lootboxes": len(g.Lootboxes),
		"nav_aids":  len(g.NavAids),
		"spawn":     g.Player,
	}).Info("game started")
}

// Collect marks the collectible collected, scores it and feeds its charge
// into the power pool. Returns false if it was already collected.
func (g *Game) Collect(c *levelgen.Collectible) bool {
	if !c.Collect() {
		return false
	}

	g.Score += c.Points
	actual := g.Power.AddCharge(c.Rarity)

	log.WithFields(log.Fields{
		"kind":   c.Kind,
		"rarity": c.Rarity,
		"points": c.Points,
		"charge": actual,
	}).Debug("collectible picked up")

	return true
}

// CollectedCount returns how many lootboxes have been collected.
func (g *Game) CollectedCount() int {
	n := 0
	for _, c := range g.Lootboxes {
		if c.Collected {
			n++
		}
	}
	return n
}

// legendaryPositions returns the positions of the legendary lootboxes in
// the current batch, the anchors for navigation aid placement.
func (g *Game) legendaryPositions() []geom.Vec3 {
	var out []geom.Vec3
	for _, c := range g.Lootboxes {
		if c.Rarity == levelgen.RarityLegendary {
			out = append(out, c.Position)
		}
	}
	return out
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}
