package levelgen

import (
	"testing"

	"darkmaze/pkg/engine/geom"
)

func TestAssignRarities_Empty(t *testing.T) {
	out := AssignRarities(nil, geom.Vec3{}, geom.Vec3{}, 100)
	if len(out) != 0 {
		t.Errorf("expected empty result, got %v", out)
	}
}

func TestAssignRarities_SinglePosition(t *testing.T) {
	positions := []geom.Vec3{{X: 1, Z: 1}}
	out := AssignRarities(positions, geom.Vec3{}, geom.Vec3{X: 10, Z: 10}, 100)

	if out[0] != RarityLegendary {
		t.Errorf("single position must take the legendary guarantee, got %v", out[0])
	}
}

// When every slot sits close to both endpoints, no position qualifies on
// distance and the legendary falls through to the final position.
func TestAssignRarities_FinalPositionGuarantee(t *testing.T) {
	spawn := geom.Vec3{X: 0, Z: 0}
	exit := geom.Vec3{X: 4, Z: 0}
	diagonal := 100.0 // all normalized distances well under every threshold

	positions := make([]geom.Vec3, 8)
	for i := range positions {
		positions[i] = geom.Vec3{X: float64(i), Z: 1}
	}

	out := AssignRarities(positions, spawn, exit, diagonal)

	for i := 0; i < len(out)-1; i++ {
		if out[i] == RarityLegendary {
			t.Errorf("position %d took legendary despite failing every distance check", i)
		}
	}
	if out[len(out)-1] != RarityLegendary {
		t.Errorf("final position = %v, want Legendary via the hard guarantee", out[len(out)-1])
	}
}

func TestAssignRarities_IdealLegendaryFirst(t *testing.T) {
	spawn := geom.Vec3{X: 0, Z: 0}
	exit := geom.Vec3{X: 100, Z: 0}
	diagonal := 100.0

	// First position is > 0.6 of the diagonal from both endpoints.
	positions := []geom.Vec3{
		{X: 50, Z: 80},
		{X: 1, Z: 1},
		{X: 2, Z: 2},
	}

	out := AssignRarities(positions, spawn, exit, diagonal)
	if out[0] != RarityLegendary {
		t.Errorf("position 0 = %v, want Legendary (far from both endpoints)", out[0])
	}
}

func TestAssignRarities_Cardinality(t *testing.T) {
	spawn := geom.Vec3{X: 0, Z: 0}
	exit := geom.Vec3{X: 60, Z: 60}
	diagonal := 85.0

	positions := make([]geom.Vec3, 12)
	for i := range positions {
		positions[i] = geom.Vec3{X: float64(i * 5), Z: float64((i * 7) % 60)}
	}

	out := AssignRarities(positions, spawn, exit, diagonal)

	counts := make(map[Rarity]int)
	for _, r := range out {
		counts[r]++
	}

	if counts[RarityLegendary] != 1 {
		t.Errorf("legendary count = %d, want exactly 1", counts[RarityLegendary])
	}
	if counts[RarityEpic] > 1 {
		t.Errorf("epic count = %d, want at most 1", counts[RarityEpic])
	}
	if counts[RarityRare] > 2 {
		t.Errorf("rare count = %d, want at most 2", counts[RarityRare])
	}

	total := counts[RarityLegendary] + counts[RarityEpic] + counts[RarityRare] + counts[RarityCommon]
	if total != len(positions) {
		t.Errorf("assigned %d rarities over %d positions (unexpected tier present)", total, len(positions))
	}
}

func TestRarity_Points(t *testing.T) {
	cases := []struct {
		rarity Rarity
		want   int
	}{
		{RarityCommon, 10},
		{RarityRare, 25},
		{RarityEpic, 50},
		{RarityLegendary, 100},
		{RarityNone, 0},
	}

	for _, tc := range cases {
		if got := tc.rarity.Points(); got != tc.want {
			t.Errorf("%v.Points() = %d, want %d", tc.rarity, got, tc.want)
		}
	}
}
