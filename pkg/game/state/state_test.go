package state

import (
	"testing"

	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/levelgen"
)

func newSeededGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Maze.Seed = seed
	return NewGame(cfg)
}

func TestNewGame_BuildsCompleteRun(t *testing.T) {
	g := newSeededGame(t, 1)

	if g.Maze == nil {
		t.Fatal("no maze generated")
	}
	if len(g.Lootboxes) == 0 {
		t.Error("no lootboxes placed")
	}
	if g.Maze.SpawnPosition() == nil || g.Maze.ExitPosition() == nil {
		t.Error("spawn or exit missing")
	}
	if g.Player != *g.Maze.SpawnPosition() {
		t.Errorf("player = %+v, want spawn %+v", g.Player, *g.Maze.SpawnPosition())
	}
	if g.Power.Current() != g.Power.Max() {
		t.Errorf("power = %v, want full pool %v", g.Power.Current(), g.Power.Max())
	}
	if g.Power.ConsumerCount() != 1 {
		t.Errorf("consumer count = %d, want 1 (the flashlight)", g.Power.ConsumerCount())
	}
	if g.FlashlightOn {
		t.Error("flashlight should start off")
	}
	if g.FlashlightLevel != 1 {
		t.Errorf("flashlight level = %d, want 1", g.FlashlightLevel)
	}
}

func TestCollect_ScoresAndCharges(t *testing.T) {
	g := newSeededGame(t, 2)

	g.Power.SetRate(FlashlightID, 1000)
	g.Power.Tick(1.0)
	before := g.Power.Current()

	box := g.Lootboxes[0]
	if !g.Collect(box) {
		t.Fatal("first collect returned false")
	}
	if g.Score != box.Points {
		t.Errorf("score = %d, want %d", g.Score, box.Points)
	}
	if g.Power.Current() <= before {
		t.Error("collecting should recharge the pool")
	}
	if g.CollectedCount() != 1 {
		t.Errorf("collected count = %d, want 1", g.CollectedCount())
	}

	if g.Collect(box) {
		t.Error("second collect of the same box must return false")
	}
	if g.Score != box.Points {
		t.Errorf("score changed on a re-collect: %d", g.Score)
	}
}

func TestRestart_ClearsEverything(t *testing.T) {
	g := newSeededGame(t, 3)

	oldBoxes := g.Lootboxes
	g.Collect(oldBoxes[0])
	g.Power.SetRate(FlashlightID, 1000)
	g.Power.Tick(2.0)
	g.Won = true

	g.Restart()

	if g.Score != 0 {
		t.Errorf("score = %d, want 0 after restart", g.Score)
	}
	if g.Won {
		t.Error("won flag survived restart")
	}
	if g.CollectedCount() != 0 {
		t.Errorf("collected count = %d, want 0: old batch must not carry over", g.CollectedCount())
	}
	if g.Power.Current() != g.Power.Max() {
		t.Errorf("power = %v, want full pool after restart", g.Power.Current())
	}
	if g.Power.ConsumerCount() != 1 {
		t.Errorf("consumer count = %d, want exactly 1 after re-registration", g.Power.ConsumerCount())
	}
	if g.Discovered.Size() != 0 {
		t.Errorf("discovered cells = %d, want 0 after restart", g.Discovered.Size())
	}

	// The old batch stays collected; the new batch is entirely fresh.
	if !oldBoxes[0].Collected {
		t.Error("restart must not un-collect the discarded batch")
	}
	for i, b := range g.Lootboxes {
		if b.Collected {
			t.Errorf("new lootbox %d already collected", i)
		}
	}
}

func TestRestart_LootboxCountInRange(t *testing.T) {
	g := newSeededGame(t, 4)
	cfg := g.Cfg.Placement

	for i := 0; i < 5; i++ {
		g.Restart()
		if n := len(g.Lootboxes); n > cfg.LootboxMax {
			t.Errorf("restart %d: %d lootboxes, max %d", i, n, cfg.LootboxMax)
		}
		if len(g.Lootboxes) == 0 {
			t.Errorf("restart %d: empty batch", i)
		}
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := newSeededGame(t, 5)
	g.Messages = nil

	for i := 0; i < 8; i++ {
		g.AddMessage("m")
	}
	if len(g.Messages) != 5 {
		t.Errorf("message log length = %d, want capped at 5", len(g.Messages))
	}
}

func TestLegendaryPositions_MatchBatch(t *testing.T) {
	g := newSeededGame(t, 6)

	want := 0
	for _, b := range g.Lootboxes {
		if b.Rarity == levelgen.RarityLegendary {
			want++
		}
	}
	if got := len(g.legendaryPositions()); got != want {
		t.Errorf("legendaryPositions() returned %d, want %d", got, want)
	}
}
