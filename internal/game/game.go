// Package game implements the snake game engine: tick advancement, collision
// resolution, apple spawning, scoring, and the playing/dead/won state
// machine. It is pure logic; the terminal platform drives it and reads
// snapshots, never the other way around.
package game

import (
	"math/rand"

	"github.com/arcadelab/snaketui/internal/config"
	"github.com/arcadelab/snaketui/internal/core"
)

// Game is the controller owning all mutable game state. It is not safe for
// concurrent use; the platform calls it from a single goroutine, one Step
// per frame.
type Game struct {
	cfg      config.Config
	board    core.Board
	startDir core.Direction

	rng     *rand.Rand
	spawner *Spawner

	snake    *Snake
	apple    core.Cell
	hasApple bool
	score    int
	state    State
	paused   bool

	tick       uint64
	moveTicker int // frames until the next move
}

// New creates a game for the given gameplay configuration. Reset must be
// called before the first Step.
func New(cfg config.Config) *Game {
	dir, err := cfg.Snake.Direction()
	if err != nil {
		dir = core.DirRight
	}
	return &Game{
		cfg:      cfg,
		board:    core.Board{Width: cfg.Board.Width, Height: cfg.Board.Height},
		startDir: dir,
	}
}

// Board returns the fixed playfield dimensions.
func (g *Game) Board() core.Board {
	return g.board
}

// Reset initializes the game from scratch with the given runtime seed:
// fresh snake at the fixed initial position, score 0, one spawned apple,
// state Playing.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.spawner = NewSpawner(g.rng)
	g.tick = 0
	g.moveTicker = 0
	g.restart()
}

// restart rebuilds snake, score and apple exactly as at start. The running
// generator is kept, so a seeded session stays deterministic across
// restarts.
func (g *Game) restart() {
	g.snake = NewSnake(g.board, g.cfg.Snake.InitialLength, g.startDir)
	g.score = 0
	g.paused = false
	g.state = StatePlaying
	g.spawnApple()
}

// spawnApple requests a fresh apple; a full board ends the game as a win.
func (g *Game) spawnApple() {
	cell, err := g.spawner.Spawn(g.board, g.snake)
	if err != nil {
		g.hasApple = false
		g.state = StateWon
		return
	}
	g.apple = cell
	g.hasApple = true
}

// HandleInput processes one discrete input action. Directional actions
// buffer a turn for the next move and are ignored unless Playing; Restart is
// honored in every state; Pause toggles while Playing. Quit is host-level
// and ignored here.
func (g *Game) HandleInput(a core.Action) {
	if a == core.ActionRestart {
		g.restart()
		return
	}

	if g.state != StatePlaying {
		return
	}

	switch a {
	case core.ActionPause:
		g.paused = !g.paused
	default:
		if dir, ok := a.Direction(); ok && !g.paused {
			g.snake.Turn(dir)
		}
	}
}

// Step advances the simulation by one platform frame. The snake moves once
// every MoveEveryTicks frames; each move is one game tick in the classic
// sense. No-op while Dead, Won, or paused.
func (g *Game) Step() core.StepResult {
	g.tick++

	if g.state != StatePlaying || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.moveTicker++
	if g.moveTicker < g.cfg.Speed.MoveEveryTicks {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	events := g.move()
	return core.StepResult{State: g.State(), Events: events}
}

// move executes one game tick: advance the snake, then resolve in order
// bounds death, self-collision death, apple. A head that is out of bounds is
// a boundary death even if it would also self-collide; a head on the apple
// can never self-collide because the apple is never inside the snake.
func (g *Game) move() []core.Event {
	newHead := g.snake.Advance()

	if !g.board.Contains(newHead) {
		g.state = StateDead
		return []core.Event{core.EventDied}
	}

	if g.snake.SelfCollision() {
		g.state = StateDead
		return []core.Event{core.EventDied}
	}

	if g.hasApple && newHead == g.apple {
		g.snake.Grow(1)
		g.score += g.cfg.Scoring.ApplePoints
		events := []core.Event{core.EventAppleEaten}
		g.spawnApple()
		if g.state == StateWon {
			events = append(events, core.EventWon)
		}
		return events
	}

	return nil
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state != StatePlaying,
		Won:      g.state == StateWon,
		Paused:   g.paused,
	}
}
