package gameplay

import (
	"testing"

	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/levelgen"
	"darkmaze/pkg/game/power"
	"darkmaze/pkg/game/state"
)

// corridorGame builds a game on a hand-made maze: a single east-west
// corridor at z=2 from x=1 to x=3, everything else walled.
func corridorGame(t *testing.T) *state.Game {
	t.Helper()

	m := world.NewMaze(5, 5, 2.0, 1.6)
	for x := 1; x <= 3; x++ {
		m.CellAt(x, 2).Open(world.KindFloor)
	}
	m.SetSpawn(m.CellToWorld(1, 2))
	m.SetExit(m.CellToWorld(3, 2))

	cfg := config.Default()
	g := &state.Game{
		Cfg:            cfg,
		Maze:           m,
		Power:          power.NewSimulation(cfg.Power),
		FlashlightLamp: power.NewLamp(1.0),
		Player:         *m.SpawnPosition(),
		Discovered:     mapset.New[*world.Cell](),
	}
	g.Power.RegisterConsumer(state.FlashlightID, g.FlashlightLamp, power.KindFlashlight, 1)
	return g
}

func TestMove_BlockedByWall(t *testing.T) {
	g := corridorGame(t)
	start := g.Player

	// North of the corridor is wall.
	Move(g, 0, -g.Maze.CellSize)
	if g.Player != start {
		t.Errorf("player moved into a wall: %+v -> %+v", start, g.Player)
	}
}

func TestMove_OpenDirection(t *testing.T) {
	g := corridorGame(t)
	start := g.Player

	Move(g, g.Maze.CellSize, 0)
	if g.Player.X != start.X+g.Maze.CellSize || g.Player.Z != start.Z {
		t.Errorf("player = %+v, want one cell east of %+v", g.Player, start)
	}
}

func TestMove_SlidesAlongWall(t *testing.T) {
	g := corridorGame(t)
	start := g.Player

	// Diagonal northeast: north is blocked, east is open. The east
	// component must still apply.
	Move(g, g.Maze.CellSize, -g.Maze.CellSize)
	if g.Player.X != start.X+g.Maze.CellSize {
		t.Errorf("east component lost: player = %+v", g.Player)
	}
	if g.Player.Z != start.Z {
		t.Errorf("north component applied through a wall: player = %+v", g.Player)
	}
}

func TestMove_ReachingExitWins(t *testing.T) {
	g := corridorGame(t)

	Move(g, g.Maze.CellSize, 0)
	if g.Won {
		t.Fatal("won one cell short of the exit")
	}
	Move(g, g.Maze.CellSize, 0)
	if !g.Won {
		t.Fatal("standing on the exit should win")
	}
}

func TestMove_DiscoversCells(t *testing.T) {
	g := corridorGame(t)

	Move(g, g.Maze.CellSize, 0)
	if g.Discovered.Size() == 0 {
		t.Error("moving should discover the cells in view")
	}
}

func TestCollectNearby_PicksUpAndScores(t *testing.T) {
	g := corridorGame(t)

	box := levelgen.NewLootbox(g.Player)
	box.Rarity = levelgen.RarityRare
	box.Points = levelgen.RarityRare.Points()
	g.Lootboxes = []*levelgen.Collectible{box}

	// Drain well below capacity so the full recharge fits.
	g.Power.SetRate(state.FlashlightID, 1000)
	g.Power.Tick(1.0)
	before := g.Power.Current()

	if n := CollectNearby(g); n != 1 {
		t.Fatalf("collected %d, want 1", n)
	}
	if !box.Collected {
		t.Error("lootbox not marked collected")
	}
	if g.Score != 25 {
		t.Errorf("score = %d, want 25 for a rare", g.Score)
	}
	if got := g.Power.Current(); got != before+360 {
		t.Errorf("charge = %v, want %v (+360 for a rare)", got, before+360)
	}

	// A second pass must not double-collect.
	if n := CollectNearby(g); n != 0 {
		t.Errorf("second pass collected %d, want 0", n)
	}
	if g.Score != 25 {
		t.Errorf("score after second pass = %d, want unchanged 25", g.Score)
	}
}

func TestCollectNearby_OutOfRange(t *testing.T) {
	g := corridorGame(t)

	far := g.Player
	far.X += 10
	g.Lootboxes = []*levelgen.Collectible{levelgen.NewLootbox(far)}

	if n := CollectNearby(g); n != 0 {
		t.Errorf("collected %d out-of-range boxes, want 0", n)
	}
}
