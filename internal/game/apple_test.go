package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/arcadelab/snaketui/internal/core"
)

func TestSpawnNeverOnSnake(t *testing.T) {
	board := core.Board{Width: 8, Height: 8}
	s := NewSnake(board, 3, core.DirRight)
	spawner := NewSpawner(rand.New(rand.NewSource(999)))

	for i := 0; i < 200; i++ {
		cell, err := spawner.Spawn(board, s)
		if err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
		if s.Occupies(cell) {
			t.Fatalf("apple spawned on snake at %v", cell)
		}
		if !board.Contains(cell) {
			t.Fatalf("apple spawned out of bounds at %v", cell)
		}
	}
}

func TestSpawnDeterministic(t *testing.T) {
	board := core.Board{Width: 8, Height: 8}

	var first, second []core.Cell
	for _, out := range []*[]core.Cell{&first, &second} {
		s := NewSnake(board, 3, core.DirRight)
		spawner := NewSpawner(rand.New(rand.NewSource(42)))
		for i := 0; i < 50; i++ {
			cell, err := spawner.Spawn(board, s)
			if err != nil {
				t.Fatalf("Spawn() failed: %v", err)
			}
			*out = append(*out, cell)
		}
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("spawn %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	board := core.Board{Width: 4, Height: 4}

	segments := make([]core.Cell, 0, board.Cells())
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			segments = append(segments, core.Cell{X: x, Y: y})
		}
	}
	s := &Snake{segments: segments, dir: core.DirRight, pendingDir: core.DirRight}

	spawner := NewSpawner(rand.New(rand.NewSource(1)))
	_, err := spawner.Spawn(board, s)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Spawn() on full board = %v, expected ErrNoFreeCell", err)
	}
}

func TestSpawnSingleFreeCell(t *testing.T) {
	board := core.Board{Width: 4, Height: 4}

	segments := make([]core.Cell, 0, board.Cells()-1)
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			if x == 0 && y == 3 {
				continue
			}
			segments = append(segments, core.Cell{X: x, Y: y})
		}
	}
	s := &Snake{segments: segments, dir: core.DirRight, pendingDir: core.DirRight}

	spawner := NewSpawner(rand.New(rand.NewSource(7)))
	cell, err := spawner.Spawn(board, s)
	if err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}
	if cell != (core.Cell{X: 0, Y: 3}) {
		t.Errorf("Spawn() = %v, expected the only free cell (0,3)", cell)
	}
}
