package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in gameplay configuration: a 40x30 board, a
// three-segment snake centered and facing right, 10 points per apple, and
// one move every 6 platform ticks (10 moves per second at 60 fps).
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  40,
			Height: 30,
		},
		Snake: SnakeConfig{
			InitialLength:  3,
			StartDirection: "right",
		},
		Scoring: ScoringConfig{
			ApplePoints: 10,
		},
		Speed: SpeedConfig{
			MoveEveryTicks: 6,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}
