package game

import (
	"github.com/arcadelab/snaketui/internal/core"
)

// State is the game's lifecycle state.
type State string

const (
	StatePlaying State = "playing"
	StateDead    State = "dead"
	StateWon     State = "won"
)

// Snapshot is the read-only view of the game the presentation layer renders
// from. Segment and apple data are copies; mutating a snapshot never touches
// the engine.
type Snapshot struct {
	Tick      uint64
	Score     int
	State     State
	Paused    bool
	Direction core.Direction
	Segments  []core.Cell // Head first
	Apple     core.Cell
	HasApple  bool
	Board     core.Board
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		State:     g.state,
		Paused:    g.paused,
		Direction: g.snake.Direction(),
		Segments:  g.snake.Segments(),
		Apple:     g.apple,
		HasApple:  g.hasApple,
		Board:     g.board,
	}
}
