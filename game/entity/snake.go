package entity

import (
	"math-snake/game/types"
)

// Direction is one of the four cardinal headings
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ToPoint converts a Direction to its unit step
func (d Direction) ToPoint() types.Point {
	switch d {
	case Up:
		return types.Point{X: 0, Y: -1}
	case Right:
		return types.Point{X: 1, Y: 0}
	case Down:
		return types.Point{X: 0, Y: 1}
	case Left:
		return types.Point{X: -1, Y: 0}
	default:
		return types.Point{}
	}
}

// Opposite returns the heading pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Snake keeps its body head first
type Snake struct {
	Body      []types.Point
	Direction Direction
	lastMoved Direction
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: Right,
		lastMoved: Right,
	}
}

// Move prepends the new head; the tail stays until RemoveTail
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.lastMoved = s.Direction
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head enters on the next tick
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.ToPoint())
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment is on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection turns the snake unless dir reverses either the pending
// heading or the heading of the last move. Returns whether it turned.
func (s *Snake) SetDirection(dir Direction) bool {
	if dir == s.Direction.Opposite() || dir == s.lastMoved.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
