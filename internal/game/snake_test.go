package game

import (
	"testing"

	"github.com/arcadelab/snaketui/internal/core"
)

func TestNewSnakeInitialBody(t *testing.T) {
	board := core.Board{Width: 10, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	want := []core.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	got := s.Segments()
	if len(got) != len(want) {
		t.Fatalf("length = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, expected %v", i, got[i], want[i])
		}
	}
	if s.Direction() != core.DirRight {
		t.Errorf("direction = %v, expected right", s.Direction())
	}
}

func TestAdvanceShiftsBody(t *testing.T) {
	board := core.Board{Width: 10, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	newHead := s.Advance()
	if newHead != (core.Cell{X: 6, Y: 5}) {
		t.Errorf("new head = %v, expected (6,5)", newHead)
	}
	if s.Len() != 3 {
		t.Errorf("length = %d, expected 3 (tail removed)", s.Len())
	}
	if s.Occupies(core.Cell{X: 3, Y: 5}) {
		t.Error("old tail cell should be vacated")
	}
}

func TestTurnIgnoresReversal(t *testing.T) {
	board := core.Board{Width: 10, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	s.Turn(core.DirLeft) // 180° from current direction, ignored
	s.Advance()
	if s.Direction() != core.DirRight {
		t.Errorf("direction after reversal attempt = %v, expected right", s.Direction())
	}
	if s.Head() != (core.Cell{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected (6,5)", s.Head())
	}
}

func TestTurnLastInputWins(t *testing.T) {
	board := core.Board{Width: 10, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	s.Turn(core.DirUp)
	s.Turn(core.DirDown) // overwrites the buffer
	s.Advance()
	if s.Direction() != core.DirDown {
		t.Errorf("direction = %v, expected down (last input wins)", s.Direction())
	}
}

func TestTurnReversalAfterLegalTurnIsIgnored(t *testing.T) {
	board := core.Board{Width: 10, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	// Up is legal and buffered; Left is still the reverse of the *current*
	// direction (right) and must not clobber the buffer.
	s.Turn(core.DirUp)
	s.Turn(core.DirLeft)
	s.Advance()
	if s.Direction() != core.DirUp {
		t.Errorf("direction = %v, expected up", s.Direction())
	}
}

func TestGrowSameTick(t *testing.T) {
	board := core.Board{Width: 10, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	s.Advance()
	s.Grow(1) // eat: tail removed by Advance comes back
	if s.Len() != 4 {
		t.Errorf("length = %d, expected 4 after same-tick growth", s.Len())
	}
	if !s.Occupies(core.Cell{X: 3, Y: 5}) {
		t.Error("restored tail should be the cell vacated this tick")
	}
}

func TestGrowPendingConsumedOnLaterTicks(t *testing.T) {
	board := core.Board{Width: 20, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	s.Grow(2) // no Advance yet this tick, both units pend
	if s.Len() != 3 {
		t.Fatalf("length = %d, growth should be pending", s.Len())
	}

	s.Advance()
	if s.Len() != 4 {
		t.Errorf("length after first move = %d, expected 4", s.Len())
	}
	s.Advance()
	if s.Len() != 5 {
		t.Errorf("length after second move = %d, expected 5", s.Len())
	}
	s.Advance()
	if s.Len() != 5 {
		t.Errorf("length after third move = %d, expected 5 (growth exhausted)", s.Len())
	}
}

func TestOccupies(t *testing.T) {
	board := core.Board{Width: 10, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	for _, seg := range s.Segments() {
		if !s.Occupies(seg) {
			t.Errorf("Occupies(%v) = false for own segment", seg)
		}
	}
	if s.Occupies(core.Cell{X: 0, Y: 0}) {
		t.Error("Occupies should be false for a free cell")
	}
}

func TestSelfCollision(t *testing.T) {
	// Spiral that closes on itself: moving right from (5,5) hits (6,5).
	s := &Snake{
		segments: []core.Cell{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 6, Y: 4},
			{X: 5, Y: 4},
		},
		dir:        core.DirRight,
		pendingDir: core.DirRight,
	}
	// Growth pending so the tail stays put and the body really closes.
	s.Grow(1)

	s.Advance()
	if !s.SelfCollision() {
		t.Error("head moving into own body should self-collide")
	}
}

func TestMovingIntoVacatedTailIsNotCollision(t *testing.T) {
	// 2x2 loop: head chases its own tail; the tail cell is vacated in the
	// same tick the head enters it.
	s := &Snake{
		segments: []core.Cell{
			{X: 1, Y: 1},
			{X: 2, Y: 1},
			{X: 2, Y: 2},
			{X: 1, Y: 2},
		},
		dir:        core.DirDown,
		pendingDir: core.DirDown,
	}

	s.Advance() // head -> (1,2), old tail cell
	if s.SelfCollision() {
		t.Error("moving into the just-vacated tail cell must not be a collision")
	}
}

func TestSegmentsReturnsCopy(t *testing.T) {
	board := core.Board{Width: 10, Height: 10}
	s := NewSnake(board, 3, core.DirRight)

	segs := s.Segments()
	segs[0] = core.Cell{X: 99, Y: 99}
	if s.Head() == (core.Cell{X: 99, Y: 99}) {
		t.Error("Segments() must return a copy, not the backing slice")
	}
}
