package game

import (
	"github.com/arcadelab/snaketui/internal/core"
)

// Snake is the snake's body: an ordered sequence of cells with the head at
// index 0, the current movement direction, a single buffered pending
// direction, and a pending-growth counter for cells still owed after eating.
type Snake struct {
	segments      []core.Cell
	dir           core.Direction
	pendingDir    core.Direction
	pendingGrowth int

	// popped is the tail cell removed by the most recent Advance, so Grow
	// can re-attach it when an apple is eaten in the same tick.
	popped *core.Cell
}

// NewSnake builds a snake of the given length with its head at the board
// center, body trailing opposite the movement direction.
func NewSnake(board core.Board, length int, dir core.Direction) *Snake {
	if length < 1 {
		length = 1
	}

	head := board.Center()
	segments := make([]core.Cell, length)
	segments[0] = head
	for i := 1; i < length; i++ {
		segments[i] = segments[i-1].Neighbor(dir.Opposite())
	}

	return &Snake{
		segments:   segments,
		dir:        dir,
		pendingDir: dir,
	}
}

// Turn buffers a direction change for the next Advance. A turn that is the
// exact reverse of the current direction is silently ignored: the snake can
// never be commanded onto its own neck in a single input. Repeated calls
// between ticks overwrite the buffer, so the last legal input wins.
func (s *Snake) Turn(d core.Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.pendingDir = d
}

// Advance moves the snake one cell: the buffered direction becomes current,
// the new head cell is pushed to the front, and the tail is removed unless
// pending growth consumes the move. Returns the new head cell for the
// controller's collision checks.
func (s *Snake) Advance() core.Cell {
	s.dir = s.pendingDir

	newHead := s.segments[0].Neighbor(s.dir)
	s.segments = append([]core.Cell{newHead}, s.segments...)

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		s.popped = nil
	} else {
		last := len(s.segments) - 1
		tail := s.segments[last]
		s.segments = s.segments[:last]
		s.popped = &tail
	}

	return newHead
}

// Grow adds amount cells of growth. The first unit re-attaches the tail cell
// removed by the current tick's Advance, so eating an apple lengthens the
// snake in the same tick; any remainder is banked as pending growth for
// future ticks.
func (s *Snake) Grow(amount int) {
	if amount <= 0 {
		return
	}
	if s.popped != nil {
		s.segments = append(s.segments, *s.popped)
		s.popped = nil
		amount--
	}
	s.pendingGrowth += amount
}

// Occupies returns true if any segment equals c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.segments {
		if seg == c {
			return true
		}
	}
	return false
}

// SelfCollision returns true if the head cell equals any other segment's
// cell. Meaningful after Advance: the vacated tail cell is already gone, so
// moving into it does not count as a collision.
func (s *Snake) SelfCollision() bool {
	head := s.segments[0]
	for _, seg := range s.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.segments[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Cell {
	out := make([]core.Cell, len(s.segments))
	copy(out, s.segments)
	return out
}
