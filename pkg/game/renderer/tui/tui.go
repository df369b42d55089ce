// Package tui renders a bird's-eye terminal view of the maze: discovered
// cells, collectibles colored by rarity, the power HUD and the message log.
package tui

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/levelgen"
	"darkmaze/pkg/game/power"
	"darkmaze/pkg/game/state"
)

// Icons for the map view.
const (
	PlayerIcon  = "@"
	IconWall    = "▒"
	IconFloor   = "░"
	IconRoom    = "·"
	IconVoid    = " "
	IconExit    = "△"
	IconLootbox = "◆"
	IconNavAid  = "✦"
)

// Viewport margins and minimum sizes.
const (
	ViewportMinRows = 9
	ViewportMinCols = 21
	// Lines needed outside the viewport: title, power HUD, status line,
	// messages pane and the input prompt.
	ViewportTopMargin = 14
)

const powerBarWidth = 30

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall   color.Style
	colorFloor  color.Style
	colorPlayer color.Style
	colorExit   color.Style
	colorNavAid color.Style
	colorSubtle color.Style
	colorDanger color.Style
	colorGood   color.Style

	rarityColors map[levelgen.Rarity]color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorNavAid = color.Style{color.FgCyan, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDanger = color.Style{color.FgRed, color.OpBold}
	t.colorGood = color.Style{color.FgGreen}

	t.rarityColors = map[levelgen.Rarity]color.Style{
		levelgen.RarityCommon:    {color.FgWhite},
		levelgen.RarityRare:      {color.FgBlue, color.OpBold},
		levelgen.RarityEpic:      {color.FgMagenta, color.OpBold},
		levelgen.RarityLegendary: {color.FgYellow, color.OpBold},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// ReadIntent blocks on the next keypress and returns its intent.
func (t *TUIRenderer) ReadIntent() input.Intent {
	return input.ReadIntent()
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.colorSubtle.Printf("%s\n\n", gotext.Get("Darkmaze"))

	t.printMap(g)
	t.printPowerHUD(g)
	t.printStatusLine(g)
	t.printMessagesPane(g)

	fmt.Printf("\n> ")
}

// viewportSize returns the map viewport dimensions based on terminal size,
// kept odd so the player can sit in the exact center.
func viewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - 4
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return rows, cols
}

// printMap renders the viewport centered on the player.
func (t *TUIRenderer) printMap(g *state.Game) {
	rows, cols := viewportSize()

	playerX, playerZ := g.Maze.WorldToCell(g.Player.X, g.Player.Z)
	startX := playerX - cols/2
	startZ := playerZ - rows/2

	markers := t.collectibleMarkers(g)

	for vRow := 0; vRow < rows; vRow++ {
		fmt.Print("  ")
		for vCol := 0; vCol < cols; vCol++ {
			x := startX + vCol
			z := startZ + vRow

			if x == playerX && z == playerZ {
				fmt.Print(t.colorPlayer.Sprint(PlayerIcon))
				continue
			}
			fmt.Print(t.renderCell(g, x, z, markers))
		}
		fmt.Print("\n")
	}
	fmt.Println()
}

// cellMarker is a collectible or exit occupying a cell in the map view.
type cellMarker struct {
	icon  string
	style color.Style
}

// collectibleMarkers indexes uncollected collectibles and the exit by grid
// cell so the map pass is a plain lookup.
func (t *TUIRenderer) collectibleMarkers(g *state.Game) map[[2]int]cellMarker {
	markers := make(map[[2]int]cellMarker)

	for _, c := range g.NavAids {
		if c.Collected {
			continue
		}
		x, z := g.Maze.WorldToCell(c.Position.X, c.Position.Z)
		markers[[2]int{x, z}] = cellMarker{icon: IconNavAid, style: t.colorNavAid}
	}
	for _, c := range g.Lootboxes {
		if c.Collected {
			continue
		}
		x, z := g.Maze.WorldToCell(c.Position.X, c.Position.Z)
		markers[[2]int{x, z}] = cellMarker{icon: IconLootbox, style: t.rarityColors[c.Rarity]}
	}

	if exit := g.Maze.ExitPosition(); exit != nil {
		x, z := g.Maze.WorldToCell(exit.X, exit.Z)
		markers[[2]int{x, z}] = cellMarker{icon: IconExit, style: t.colorExit}
	}

	return markers
}

// renderCell returns the string representation of one map cell. Only
// discovered cells are drawn; everything else is void.
func (t *TUIRenderer) renderCell(g *state.Game, x, z int, markers map[[2]int]cellMarker) string {
	cell := g.Maze.CellAt(x, z)
	if cell == nil || !g.Discovered.Has(cell) {
		return IconVoid
	}

	if m, ok := markers[[2]int{x, z}]; ok {
		return m.style.Sprint(m.icon)
	}

	switch cell.Kind {
	case world.KindWall:
		return t.colorWall.Sprint(IconWall)
	case world.KindRoom:
		return t.colorFloor.Sprint(IconRoom)
	default:
		return t.colorFloor.Sprint(IconFloor)
	}
}

// printPowerHUD renders the power bar, the discrete state and the drain.
func (t *TUIRenderer) printPowerHUD(g *state.Game) {
	stats := g.Power.Stats()
	pct := g.Power.Percentage()

	filled := int(math.Round(pct / 100 * powerBarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > powerBarWidth {
		filled = powerBarWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", powerBarWidth-filled)

	style := t.colorGood
	switch g.Power.State() {
	case power.StateLow:
		style = color.Style{color.FgYellow, color.OpBold}
	case power.StateCritical, power.StateDepleted:
		style = t.colorDanger
	}

	fmt.Printf("  %s [%s] %3.0f%% %s",
		gotext.Get("Power"), style.Sprint(bar), pct, style.Sprint(g.Power.State().String()))

	if stats.Rate > 0 {
		fmt.Printf("  %s", t.colorSubtle.Sprintf("-%.1f/s", stats.Rate))
	}
	fmt.Println()
}

// printStatusLine renders score, collection progress and the flashlight.
func (t *TUIRenderer) printStatusLine(g *state.Game) {
	flashlight := gotext.Get("off")
	if g.FlashlightOn {
		flashlight = fmt.Sprintf("L%d", g.FlashlightLevel)
	}

	fmt.Printf("  %s %s  %s %d/%d  %s %s\n",
		t.colorSubtle.Sprint(gotext.Get("Score:")), t.colorGood.Sprintf("%d", g.Score),
		t.colorSubtle.Sprint(gotext.Get("Lootboxes:")), g.CollectedCount(), len(g.Lootboxes),
		t.colorSubtle.Sprint(gotext.Get("Flashlight:")), flashlight)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("Messages") + " "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-len(label))

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  " + gotext.Get("(no messages)")))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
