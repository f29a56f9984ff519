// Package config provides YAML-based gameplay configuration with embedded
// defaults and difficulty presets.
package config

import (
	"fmt"

	"github.com/arcadelab/snaketui/internal/core"
)

// Config contains all gameplay constants. Values are fixed for the process
// lifetime once loaded; there is no runtime reconfiguration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Snake   SnakeConfig   `yaml:"snake"`
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
	Audio   AudioConfig   `yaml:"audio"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the snake's fixed initial configuration.
type SnakeConfig struct {
	InitialLength  int    `yaml:"initial_length"`
	StartDirection string `yaml:"start_direction"` // up, down, left, right
}

// ScoringConfig defines score values.
type ScoringConfig struct {
	ApplePoints int `yaml:"apple_points"`
}

// SpeedConfig defines how often the snake moves, in platform ticks.
type SpeedConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// AudioConfig toggles sound effects.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Direction parses the configured start direction.
func (c SnakeConfig) Direction() (core.Direction, error) {
	switch c.StartDirection {
	case "up":
		return core.DirUp, nil
	case "down":
		return core.DirDown, nil
	case "left":
		return core.DirLeft, nil
	case "right", "":
		return core.DirRight, nil
	default:
		return 0, fmt.Errorf("config: unknown start direction %q", c.StartDirection)
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("config: board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: initial snake length must be >= 1, got %d", c.Snake.InitialLength)
	}
	dir, err := c.Snake.Direction()
	if err != nil {
		return err
	}
	if max := c.maxSpawnLength(dir); c.Snake.InitialLength > max {
		return fmt.Errorf("config: initial snake length %d does not fit a centered spawn on a %dx%d board (max %d)",
			c.Snake.InitialLength, c.Board.Width, c.Board.Height, max)
	}
	if c.Scoring.ApplePoints < 0 {
		return fmt.Errorf("config: apple points must be non-negative, got %d", c.Scoring.ApplePoints)
	}
	if c.Speed.MoveEveryTicks < 1 {
		return fmt.Errorf("config: move interval must be >= 1 tick, got %d", c.Speed.MoveEveryTicks)
	}
	return nil
}

// maxSpawnLength returns the longest snake whose body, trailing backward from
// the board center opposite the start direction, still lies entirely on the
// board.
func (c Config) maxSpawnLength(dir core.Direction) int {
	switch dir {
	case core.DirRight:
		return c.Board.Width/2 + 1
	case core.DirLeft:
		return c.Board.Width - c.Board.Width/2
	case core.DirDown:
		return c.Board.Height/2 + 1
	default: // DirUp
		return c.Board.Height - c.Board.Height/2
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the move interval for a difficulty preset.
// DifficultyFixed (and the empty preset) leaves the configured value alone.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.MoveEveryTicks = 9
	case DifficultyNormal:
		cfg.Speed.MoveEveryTicks = 6
	case DifficultyHard:
		cfg.Speed.MoveEveryTicks = 3
	case DifficultyFixed, "":
		// keep configured value
	default:
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
	return nil
}
