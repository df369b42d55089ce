package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/renderer"
	ebitenrenderer "darkmaze/pkg/game/renderer/ebiten"
	"darkmaze/pkg/game/renderer/tui"
	"darkmaze/pkg/game/state"
)

// turnSeconds is how much simulation time one TUI turn represents. The
// Ebiten backend runs in real time instead.
const turnSeconds = 0.5

func initGotext() {
	gotext.Configure("po", "en_GB", "default")
}

func initLogging(cfg config.LoggingConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "maze generation seed (0 = random)")
	rendererName := flag.String("renderer", "tui", "rendering backend: tui or ebiten")
	dumpMap := flag.Bool("dumpmap", false, "generate a maze, write map.txt and exit")
	flag.Parse()

	initGotext()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "darkmaze: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Maze.Seed = *seed
	}

	initLogging(cfg.Logging)

	game := state.NewGame(cfg)
	gameplay.RevealAroundPlayer(game)

	if *dumpMap {
		path, err := devtools.DumpMap(game)
		if err != nil {
			fmt.Fprintf(os.Stderr, "darkmaze: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	switch *rendererName {
	case "ebiten":
		if err := ebitenrenderer.New().Run(game); err != nil {
			log.WithError(err).Fatal("renderer exited")
		}
	case "tui":
		runTUI(game)
	default:
		fmt.Fprintf(os.Stderr, "darkmaze: unknown renderer %q\n", *rendererName)
		os.Exit(1)
	}
}

// runTUI drives the turn-based terminal loop: render, read one intent,
// apply it, advance the simulation by one turn.
func runTUI(g *state.Game) {
	r := tui.New()
	renderer.SetRenderer(r)
	renderer.Init()

	for {
		renderer.Clear()
		renderer.RenderFrame(g)

		if applyIntent(g, r.ReadIntent()) {
			return
		}

		gameplay.Update(g, turnSeconds)
	}
}

// applyIntent mutates the game for one player intent. Returns true when
// the player wants to quit.
func applyIntent(g *state.Game, intent input.Intent) bool {
	step := g.Maze.CellSize

	switch intent.Action {
	case input.ActionMoveNorth:
		gameplay.Move(g, 0, -step)
	case input.ActionMoveSouth:
		gameplay.Move(g, 0, step)
	case input.ActionMoveWest:
		gameplay.Move(g, -step, 0)
	case input.ActionMoveEast:
		gameplay.Move(g, step, 0)
	case input.ActionToggleFlashlight:
		gameplay.ToggleFlashlight(g)
	case input.ActionFlashlightUp:
		gameplay.RaiseFlashlightLevel(g)
	case input.ActionFlashlightDown:
		gameplay.LowerFlashlightLevel(g)
	case input.ActionRestart:
		g.Restart()
		gameplay.RevealAroundPlayer(g)
	case input.ActionToggleMap:
		if path, err := devtools.DumpMap(g); err == nil {
			g.AddMessage(gotext.Get("Map written to %s", path))
		}
	case input.ActionQuit:
		return true
	}
	return false
}
