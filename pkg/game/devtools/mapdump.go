// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/levelgen"
	"darkmaze/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell, without the
// player/exit/collectible overlay.
func cellSymbol(cell *world.Cell) rune {
	if cell == nil {
		return '#'
	}
	switch cell.Kind {
	case world.KindRoom:
		return 'o'
	case world.KindFloor:
		return '.'
	default:
		return '#'
	}
}

// raritySymbol maps a lootbox rarity to its overlay character.
func raritySymbol(r levelgen.Rarity) rune {
	switch r {
	case levelgen.RarityLegendary:
		return 'L'
	case levelgen.RarityEpic:
		return 'E'
	case levelgen.RarityRare:
		return 'R'
	default:
		return 'C'
	}
}

// DumpMap writes the full generated map with collectible overlays to
// map.txt in the working directory and returns the absolute path.
func DumpMap(g *state.Game) (string, error) {
	f, err := os.Create(mapDumpFilename)
	if err != nil {
		return "", fmt.Errorf("creating map dump: %w", err)
	}
	defer f.Close()

	overlay := buildOverlay(g)

	for z := 0; z < g.Maze.Height; z++ {
		row := make([]rune, g.Maze.Width)
		for x := 0; x < g.Maze.Width; x++ {
			if r, ok := overlay[[2]int{x, z}]; ok {
				row[x] = r
				continue
			}
			row[x] = cellSymbol(g.Maze.CellAt(x, z))
		}
		fmt.Fprintln(f, string(row))
	}

	writeLegend(f, g)

	abs, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return mapDumpFilename, nil
	}
	return abs, nil
}

// buildOverlay indexes the player, endpoints and collectibles by grid cell.
func buildOverlay(g *state.Game) map[[2]int]rune {
	overlay := make(map[[2]int]rune)

	for _, c := range g.NavAids {
		x, z := g.Maze.WorldToCell(c.Position.X, c.Position.Z)
		overlay[[2]int{x, z}] = 'n'
	}
	for _, c := range g.Lootboxes {
		x, z := g.Maze.WorldToCell(c.Position.X, c.Position.Z)
		overlay[[2]int{x, z}] = raritySymbol(c.Rarity)
	}

	if exit := g.Maze.ExitPosition(); exit != nil {
		x, z := g.Maze.WorldToCell(exit.X, exit.Z)
		overlay[[2]int{x, z}] = 'X'
	}
	if spawn := g.Maze.SpawnPosition(); spawn != nil {
		x, z := g.Maze.WorldToCell(spawn.X, spawn.Z)
		overlay[[2]int{x, z}] = 'S'
	}

	px, pz := g.Maze.WorldToCell(g.Player.X, g.Player.Z)
	overlay[[2]int{px, pz}] = '@'

	return overlay
}

// writeLegend appends the symbol legend and a rarity census.
func writeLegend(f *os.File, g *state.Game) {
	fmt.Fprintln(f)
	fmt.Fprintln(f, "# wall  . corridor  o room  S spawn  X exit  @ player")
	fmt.Fprintln(f, "C/R/E/L lootbox by rarity  n navigation aid")
	fmt.Fprintln(f)

	counts := make(map[levelgen.Rarity]int)
	for _, c := range g.Lootboxes {
		counts[c.Rarity]++
	}

	rarities := make([]levelgen.Rarity, 0, len(counts))
	for r := range counts {
		rarities = append(rarities, r)
	}
	sort.Slice(rarities, func(i, j int) bool { return rarities[i] < rarities[j] })

	for _, r := range rarities {
		fmt.Fprintf(f, "%-9s %d\n", r, counts[r])
	}
	fmt.Fprintf(f, "nav aids  %d\n", len(g.NavAids))
}
