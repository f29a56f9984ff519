package game

import (
	"errors"
	"math/rand"

	"github.com/arcadelab/snaketui/internal/core"
)

// ErrNoFreeCell is returned by Spawn when every board cell is occupied by
// the snake. The controller treats it as the win condition.
var ErrNoFreeCell = errors.New("game: no free cell for apple")

// Spawner picks apple locations. Randomness is injected so tests can run
// deterministic games.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from the given generator.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn selects a cell uniformly at random among all board cells the snake
// does not occupy. Returns ErrNoFreeCell when the board is full.
func (s *Spawner) Spawn(board core.Board, snake *Snake) (core.Cell, error) {
	free := make([]core.Cell, 0, board.Cells()-snake.Len())
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			c := core.Cell{X: x, Y: y}
			if !snake.Occupies(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return core.Cell{}, ErrNoFreeCell
	}

	return free[s.rng.Intn(len(free))], nil
}
