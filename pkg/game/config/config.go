// Package config provides Viper-based configuration loading for Darkmaze.
// Every tuning constant of the maze generator, the placement engine and the
// power simulation flows from here; defaults match the shipped balance.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// MazeConfig holds maze generation settings.
type MazeConfig struct {
	// Width and Height are the grid dimensions in cells.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// CellSize is world units per cell.
	CellSize float64 `mapstructure:"cell_size"`
	// WallHeight is the wall mesh height in world units (rendering only).
	WallHeight float64 `mapstructure:"wall_height"`
	// EyeHeight is the fixed Y for spawn/exit and player positions.
	EyeHeight float64 `mapstructure:"eye_height"`
	// RoomAttempts is how many room placements are tried per generation.
	RoomAttempts int `mapstructure:"room_attempts"`
	// RoomMinSize and RoomMaxSize bound random room dimensions.
	RoomMinSize int `mapstructure:"room_min_size"`
	RoomMaxSize int `mapstructure:"room_max_size"`
	// OpeningChance is the per-cell probability of a shortcut opening.
	OpeningChance float64 `mapstructure:"opening_chance"`
	// Seed fixes the generation rng; 0 means a fresh layout every run.
	Seed int64 `mapstructure:"seed"`
}

// PlacementConfig holds collectible placement settings.
type PlacementConfig struct {
	// LootboxMin and LootboxMax bound the per-game lootbox count.
	LootboxMin int `mapstructure:"lootbox_min"`
	LootboxMax int `mapstructure:"lootbox_max"`
	// LootboxSpacing is the minimum distance between lootboxes.
	LootboxSpacing float64 `mapstructure:"lootbox_spacing"`
	// SpawnClearance and ExitClearance keep lootboxes off the endpoints.
	SpawnClearance float64 `mapstructure:"spawn_clearance"`
	ExitClearance  float64 `mapstructure:"exit_clearance"`
	// NavAidMax bounds the per-game navigation aid count (0 allowed).
	NavAidMax int `mapstructure:"nav_aid_max"`
	// NavAidSpacing is the minimum distance between navigation aids.
	NavAidSpacing float64 `mapstructure:"nav_aid_spacing"`
}

// PowerConfig holds power simulation settings.
type PowerConfig struct {
	// MaxCharge is the power pool capacity.
	MaxCharge float64 `mapstructure:"max_charge"`
	// FlashlightRates is consumption in units/sec for levels 1-5.
	FlashlightRates []float64 `mapstructure:"flashlight_rates"`
	// ChargeCommon..ChargeLegendary are charge added per collected rarity.
	ChargeCommon    float64 `mapstructure:"charge_common"`
	ChargeRare      float64 `mapstructure:"charge_rare"`
	ChargeEpic      float64 `mapstructure:"charge_epic"`
	ChargeLegendary float64 `mapstructure:"charge_legendary"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
}

// Config is the top-level application configuration.
type Config struct {
	Maze      MazeConfig      `mapstructure:"maze"`
	Placement PlacementConfig `mapstructure:"placement"`
	Power     PowerConfig     `mapstructure:"power"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	// Generator precondition: the grid must fit two max-size rooms plus margin.
	minDim := 2*c.Maze.RoomMaxSize + 2
	if c.Maze.Width < minDim || c.Maze.Height < minDim {
		errs = append(errs, fmt.Sprintf("maze dimensions must be >= %d (2×room_max_size+2), got %dx%d",
			minDim, c.Maze.Width, c.Maze.Height))
	}
	if c.Maze.CellSize <= 0 {
		errs = append(errs, fmt.Sprintf("maze.cell_size must be positive, got %v", c.Maze.CellSize))
	}
	if c.Maze.RoomMinSize < 1 || c.Maze.RoomMinSize > c.Maze.RoomMaxSize {
		errs = append(errs, fmt.Sprintf("maze.room_min_size must be in [1, room_max_size], got %d", c.Maze.RoomMinSize))
	}
	if c.Maze.OpeningChance < 0 || c.Maze.OpeningChance > 1 {
		errs = append(errs, fmt.Sprintf("maze.opening_chance must be in [0,1], got %v", c.Maze.OpeningChance))
	}

	if c.Placement.LootboxMin < 1 || c.Placement.LootboxMin > c.Placement.LootboxMax {
		errs = append(errs, fmt.Sprintf("placement.lootbox_min must be in [1, lootbox_max], got %d", c.Placement.LootboxMin))
	}
	if c.Placement.LootboxSpacing <= 0 {
		errs = append(errs, fmt.Sprintf("placement.lootbox_spacing must be positive, got %v", c.Placement.LootboxSpacing))
	}
	if c.Placement.NavAidMax < 0 {
		errs = append(errs, fmt.Sprintf("placement.nav_aid_max must be >= 0, got %d", c.Placement.NavAidMax))
	}

	if c.Power.MaxCharge <= 0 {
		errs = append(errs, fmt.Sprintf("power.max_charge must be positive, got %v", c.Power.MaxCharge))
	}
	if len(c.Power.FlashlightRates) != 5 {
		errs = append(errs, fmt.Sprintf("power.flashlight_rates must have 5 entries, got %d", len(c.Power.FlashlightRates)))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from an optional YAML file with DARKMAZE_*
// environment overrides on top of the built-in defaults. An empty path
// loads pure defaults.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with DARKMAZE_ prefix
	v.SetEnvPrefix("DARKMAZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults must always validate; a failure here is a programming error.
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("maze.width", 30)
	v.SetDefault("maze.height", 30)
	v.SetDefault("maze.cell_size", 2.0)
	v.SetDefault("maze.wall_height", 3.0)
	v.SetDefault("maze.eye_height", 1.6)
	v.SetDefault("maze.room_attempts", 15)
	v.SetDefault("maze.room_min_size", 4)
	v.SetDefault("maze.room_max_size", 8)
	v.SetDefault("maze.opening_chance", 0.02)
	v.SetDefault("maze.seed", 0)

	v.SetDefault("placement.lootbox_min", 10)
	v.SetDefault("placement.lootbox_max", 15)
	v.SetDefault("placement.lootbox_spacing", 12.0)
	v.SetDefault("placement.spawn_clearance", 1.5)
	v.SetDefault("placement.exit_clearance", 3.0)
	v.SetDefault("placement.nav_aid_max", 3)
	v.SetDefault("placement.nav_aid_spacing", 15.0)

	v.SetDefault("power.max_charge", 6000.0)
	v.SetDefault("power.flashlight_rates", []float64{5, 20, 100.0 / 3.0, 30, 60})
	v.SetDefault("power.charge_common", 180.0)
	v.SetDefault("power.charge_rare", 360.0)
	v.SetDefault("power.charge_epic", 720.0)
	v.SetDefault("power.charge_legendary", 1080.0)

	v.SetDefault("logging.level", "info")
}
