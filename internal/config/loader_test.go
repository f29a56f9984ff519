package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/arcadelab/snaketui/internal/core"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default YAML is invalid: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from hardcoded default %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snake.yaml")

	custom := `
board:
  width: 20
  height: 16
scoring:
  apple_points: 25
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 20 || cfg.Board.Height != 16 {
		t.Errorf("board = %dx%d, expected 20x16", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Scoring.ApplePoints != 25 {
		t.Errorf("apple points = %d, expected 25", cfg.Scoring.ApplePoints)
	}
	// Keys the file omits keep their defaults
	if cfg.Snake.InitialLength != Default().Snake.InitialLength {
		t.Errorf("initial length = %d, expected default %d",
			cfg.Snake.InitialLength, Default().Snake.InitialLength)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snake.yaml")

	bad := `
board:
  width: 2
  height: 2
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a 2x2 board")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero board", func(c *Config) { c.Board.Width = 0 }, false},
		{"zero length", func(c *Config) { c.Snake.InitialLength = 0 }, false},
		{"snake wider than board", func(c *Config) { c.Snake.InitialLength = 40 }, false},
		{"tail past left edge", func(c *Config) {
			c.Board.Width, c.Board.Height = 10, 10
			c.Snake.InitialLength = 9
		}, false},
		{"tail exactly at left edge", func(c *Config) {
			c.Board.Width, c.Board.Height = 10, 10
			c.Snake.InitialLength = 6
		}, true},
		{"one segment past left edge", func(c *Config) {
			c.Board.Width, c.Board.Height = 10, 10
			c.Snake.InitialLength = 7
		}, false},
		{"tail past top edge facing down", func(c *Config) {
			c.Board.Width, c.Board.Height = 10, 10
			c.Snake.StartDirection = "down"
			c.Snake.InitialLength = 7
		}, false},
		{"tall snake facing up fits", func(c *Config) {
			c.Board.Width, c.Board.Height = 10, 10
			c.Snake.StartDirection = "up"
			c.Snake.InitialLength = 5
		}, true},
		{"negative points", func(c *Config) { c.Scoring.ApplePoints = -1 }, false},
		{"zero move interval", func(c *Config) { c.Speed.MoveEveryTicks = 0 }, false},
		{"bad direction", func(c *Config) { c.Snake.StartDirection = "sideways" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestSnakeDirection(t *testing.T) {
	cfg := Default()
	dir, err := cfg.Snake.Direction()
	if err != nil {
		t.Fatalf("Direction() failed: %v", err)
	}
	if dir != core.DirRight {
		t.Errorf("default direction = %v, expected right", dir)
	}

	cfg.Snake.StartDirection = ""
	if dir, err = cfg.Snake.Direction(); err != nil || dir != core.DirRight {
		t.Errorf("empty direction should default to right, got %v, %v", dir, err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 9},
		{DifficultyNormal, 6},
		{DifficultyHard, 3},
		{DifficultyFixed, Default().Speed.MoveEveryTicks},
		{"", Default().Speed.MoveEveryTicks},
	}

	for _, tc := range tests {
		cfg := Default()
		if err := ApplyPreset(&cfg, tc.preset); err != nil {
			t.Fatalf("ApplyPreset(%q) failed: %v", tc.preset, err)
		}
		if cfg.Speed.MoveEveryTicks != tc.expected {
			t.Errorf("ApplyPreset(%q): move interval = %d, expected %d",
				tc.preset, cfg.Speed.MoveEveryTicks, tc.expected)
		}
	}

	cfg := Default()
	if err := ApplyPreset(&cfg, "impossible"); err == nil {
		t.Error("ApplyPreset with unknown preset should fail")
	}
}
