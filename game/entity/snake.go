package entity

import (
	"snakey-game/game/types"
)

// Snake is the player. Head is the only cell the player steers; Tail follows
// it one frame behind per segment.
type Snake struct {
	Head      types.Point
	Previous  types.Point
	Direction types.Direction
	Length    int
	Speed     int
	Tail      Trail
	Color     types.Color
}

func NewSnake(start types.Point, length, speed int, color types.Color) *Snake {
	return &Snake{
		Head:      start,
		Previous:  start,
		Direction: types.Up,
		Length:    length,
		Speed:     speed,
		Color:     color,
	}
}

// SetDirection changes heading unless dir would reverse the snake onto
// itself. It reports whether the change was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Advance moves the head one step and drags the tail behind it. The tail
// gains at most one segment per call until it reaches Length-1.
func (s *Snake) Advance(step int) {
	s.Previous = s.Head
	s.Head = s.Head.Add(s.Direction.Delta(step))

	if s.Length <= 1 {
		return
	}
	s.Tail.Push(s.Previous)
	s.Tail.Truncate(s.Length - 1)
}

// Eat grows the snake by one segment and speeds it up by one frame per second.
func (s *Snake) Eat() {
	s.Length++
	s.Speed++
}

// Grow adds a segment without changing speed.
func (s *Snake) Grow() {
	s.Length++
}
