package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.Maze.Width)
	assert.Equal(t, 30, cfg.Maze.Height)
	assert.Equal(t, 2.0, cfg.Maze.CellSize)
	assert.Equal(t, 15, cfg.Maze.RoomAttempts)
	assert.Equal(t, 4, cfg.Maze.RoomMinSize)
	assert.Equal(t, 8, cfg.Maze.RoomMaxSize)

	assert.Equal(t, 10, cfg.Placement.LootboxMin)
	assert.Equal(t, 15, cfg.Placement.LootboxMax)
	assert.Equal(t, 12.0, cfg.Placement.LootboxSpacing)

	assert.Equal(t, 6000.0, cfg.Power.MaxCharge)
	require.Len(t, cfg.Power.FlashlightRates, 5)
	assert.InDelta(t, 100.0/3.0, cfg.Power.FlashlightRates[2], 1e-9)
	assert.Equal(t, 1080.0, cfg.Power.ChargeLegendary)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"maze too small for two rooms", func(c *Config) { c.Maze.Width = 10 }},
		{"non-positive cell size", func(c *Config) { c.Maze.CellSize = 0 }},
		{"room min above max", func(c *Config) { c.Maze.RoomMinSize = 9 }},
		{"opening chance above 1", func(c *Config) { c.Maze.OpeningChance = 1.5 }},
		{"lootbox min above max", func(c *Config) { c.Placement.LootboxMin = 99 }},
		{"zero lootbox spacing", func(c *Config) { c.Placement.LootboxSpacing = 0 }},
		{"negative nav aid max", func(c *Config) { c.Placement.NavAidMax = -1 }},
		{"zero max charge", func(c *Config) { c.Power.MaxCharge = 0 }},
		{"wrong rate count", func(c *Config) { c.Power.FlashlightRates = []float64{1, 2} }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := []byte("maze:\n  width: 40\n  height: 40\n  seed: 7\npower:\n  max_charge: 9000\n")
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Maze.Width)
	assert.Equal(t, int64(7), cfg.Maze.Seed)
	assert.Equal(t, 9000.0, cfg.Power.MaxCharge)
	// Untouched keys keep their defaults.
	assert.Equal(t, 15, cfg.Placement.LootboxMax)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load("/no/such/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidFileFailsValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := []byte("power:\n  max_charge: -5\n")
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
