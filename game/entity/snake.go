package entity

import (
	"retry-snake/game/types"
)

// Snake holds the occupied cells, head first, and the committed direction.
// Cells are only added at the head and removed from the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(origin types.Point) *Snake {
	s := &Snake{}
	s.Reset(origin)
	return s
}

// Reset places a snake of InitialLength cells with its head at origin,
// body trailing to the left, moving right.
func (s *Snake) Reset(origin types.Point) {
	s.Body = s.Body[:0]
	for i := 0; i < types.InitialLength; i++ {
		s.Body = append(s.Body, types.Point{X: origin.X - i, Y: origin.Y})
	}
	s.Direction = types.RIGHT
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Peek returns the head position a move in dir would produce
func (s *Snake) Peek(dir types.Direction) types.Point {
	return s.GetHead().Add(dir)
}

// Advance prepends the next head and drops the tail unless grow is set.
// dir becomes the committed direction.
func (s *Snake) Advance(dir types.Direction, grow bool) types.Point {
	newHead := s.Peek(dir)
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if !grow {
		s.RemoveTail()
	}
	s.Direction = dir
	return newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether p is one of the snake's cells
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, safe to hand to renderers
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.Body))
	copy(cells, s.Body)
	return cells
}
