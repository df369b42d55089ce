package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/levelgen"
	"darkmaze/pkg/game/state"
)

var (
	colorBackground = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	colorWall       = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	colorFloor      = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	colorRoom       = color.RGBA{R: 180, G: 175, B: 150, A: 255}
	colorPlayer     = color.RGBA{R: 80, G: 220, B: 80, A: 255}
	colorExit       = color.RGBA{R: 60, G: 255, B: 120, A: 255}
	colorNavAid     = color.RGBA{R: 80, G: 220, B: 220, A: 255}
)

var rarityColors = map[levelgen.Rarity]color.RGBA{
	levelgen.RarityCommon:    {R: 220, G: 220, B: 220, A: 255},
	levelgen.RarityRare:      {R: 90, G: 120, B: 255, A: 255},
	levelgen.RarityEpic:      {R: 200, G: 90, B: 255, A: 255},
	levelgen.RarityLegendary: {R: 255, G: 200, B: 60, A: 255},
}

// Draw renders the game to the screen (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.game
	if g == nil || g.Maze == nil {
		return
	}

	tile := tileSize(g)
	brightness := e.lightLevel(g)

	g.Maze.ForEachCell(func(x, z int, cell *world.Cell) {
		if !g.Discovered.Has(cell) {
			return
		}

		c := colorWall
		switch cell.Kind {
		case world.KindFloor:
			c = colorFloor
		case world.KindRoom:
			c = colorRoom
		}

		vector.DrawFilledRect(screen,
			float32(x)*tile, float32(z)*tile+hudHeight,
			tile, tile, scale(c, brightness), false)
	})

	e.drawCollectibles(screen, g, tile, brightness)
	e.drawMarker(screen, g, tile)
	e.drawHUD(screen, g)
}

// drawCollectibles draws uncollected lootboxes and navigation aids on
// discovered cells.
func (e *EbitenRenderer) drawCollectibles(screen *ebiten.Image, g *state.Game, tile float32, brightness float64) {
	draw := func(c *levelgen.Collectible, col color.RGBA) {
		x, z := g.Maze.WorldToCell(c.Position.X, c.Position.Z)
		cell := g.Maze.CellAt(x, z)
		if cell == nil || !g.Discovered.Has(cell) {
			return
		}
		cx := (float32(x) + 0.5) * tile
		cz := (float32(z)+0.5)*tile + hudHeight
		vector.DrawFilledCircle(screen, cx, cz, tile*0.3, scale(col, brightness), false)
	}

	for _, c := range g.NavAids {
		if !c.Collected {
			draw(c, colorNavAid)
		}
	}
	for _, c := range g.Lootboxes {
		if !c.Collected {
			draw(c, rarityColors[c.Rarity])
		}
	}

	if exit := g.Maze.ExitPosition(); exit != nil {
		x, z := g.Maze.WorldToCell(exit.X, exit.Z)
		if cell := g.Maze.CellAt(x, z); cell != nil && g.Discovered.Has(cell) {
			vector.DrawFilledRect(screen,
				float32(x)*tile+tile*0.2, float32(z)*tile+hudHeight+tile*0.2,
				tile*0.6, tile*0.6, colorExit, false)
		}
	}
}

// drawMarker draws the player.
func (e *EbitenRenderer) drawMarker(screen *ebiten.Image, g *state.Game, tile float32) {
	x, z := g.Maze.WorldToCell(g.Player.X, g.Player.Z)
	cx := (float32(x) + 0.5) * tile
	cz := (float32(z)+0.5)*tile + hudHeight
	vector.DrawFilledCircle(screen, cx, cz, tile*0.35, colorPlayer, false)
}

// drawHUD prints the power, flashlight and score readouts.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, g *state.Game) {
	stats := g.Power.Stats()

	flashlight := "off"
	if g.FlashlightOn {
		flashlight = fmt.Sprintf("L%d (%.2f)", g.FlashlightLevel, g.FlashlightLamp.Intensity())
	}

	line1 := fmt.Sprintf("Power %.0f/%.0f (%.0f%%) %s  drain %.1f/s",
		stats.Current, stats.Max, g.Power.Percentage(), g.Power.State(), stats.Rate)
	line2 := fmt.Sprintf("Flashlight %s  Score %d  Lootboxes %d/%d",
		flashlight, g.Score, g.CollectedCount(), len(g.Lootboxes))

	ebitenutil.DebugPrintAt(screen, line1, 8, 8)
	ebitenutil.DebugPrintAt(screen, line2, 8, 26)

	if g.Won {
		ebitenutil.DebugPrintAt(screen, "You found the exit! Press R to play again.", 8, 44)
	}
}

// lightLevel derives the map brightness from the flashlight lamp: the
// simulation's dim/flicker/blackout shows up directly on screen.
func (e *EbitenRenderer) lightLevel(g *state.Game) float64 {
	if !g.FlashlightOn {
		return 0.35
	}
	v := g.FlashlightLamp.Intensity()
	if v < 0.1 {
		v = 0.1
	}
	if v > 1.5 {
		v = 1.5
	}
	return v
}

// tileSize fits the whole maze under the HUD.
func tileSize(g *state.Game) float32 {
	tw := float32(screenWidth) / float32(g.Maze.Width)
	th := float32(screenHeight-hudHeight) / float32(g.Maze.Height)
	if tw < th {
		return tw
	}
	return th
}

// scale multiplies a color's RGB channels by the brightness factor.
func scale(c color.RGBA, factor float64) color.RGBA {
	mul := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return color.RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}
