package levelgen

import (
	"math/rand"

	"darkmaze/pkg/engine/world"
)

// sectionGrid is the fixed partition of the maze used to spread placements
// across its whole area. Pure rejection sampling tends to cluster slots in
// whichever region gets sampled first; bucketing open cells into a 4x4
// grid of sections and round-robining through them load-balances instead.
const sectionGrid = 4

// bucketSections partitions every Room/Floor cell into its section.
// Sections with no open cells come back empty and are skipped by callers.
func bucketSections(m *world.Maze) [][]*world.Cell {
	sections := make([][]*world.Cell, sectionGrid*sectionGrid)

	sectionW := (m.Width + sectionGrid - 1) / sectionGrid
	sectionH := (m.Height + sectionGrid - 1) / sectionGrid

	m.ForEachCell(func(x, z int, cell *world.Cell) {
		if !cell.Kind.IsOpen() {
			return
		}
		idx := (z/sectionH)*sectionGrid + x/sectionW
		sections[idx] = append(sections[idx], cell)
	})

	return sections
}

// shuffledSectionOrder returns the section indices in random order.
func shuffledSectionOrder(rng *rand.Rand) []int {
	order := make([]int, sectionGrid*sectionGrid)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}
