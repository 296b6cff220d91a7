package types

import (
	"github.com/pkg/errors"
)

// Config holds the fixed parameters of a game session. It is built once at
// startup and passed by value.
type Config struct {
	Title         string
	ScreenWidth   int
	ScreenHeight  int
	Step          int // distance the head moves per frame
	BoxSize       int // edge of a drawn segment or food
	InitialSpeed  int // frames per second at start
	InitialLength int
	FoodStart     Point
	FoodMargin    int // keeps spawned food away from the right and bottom edges
	SelfCollision bool
	Seed          uint64 // 0 picks a time based seed
}

// DefaultConfig returns the classic 600x800 setup.
func DefaultConfig() Config {
	return Config{
		Title:         "Snakey Game",
		ScreenWidth:   600,
		ScreenHeight:  800,
		Step:          10,
		BoxSize:       20,
		InitialSpeed:  10,
		InitialLength: 1,
		FoodStart:     Point{X: 30, Y: 30},
		FoodMargin:    50,
	}
}

// PlayerStart is the centre of the screen.
func (c Config) PlayerStart() Point {
	return Point{X: c.ScreenWidth / 2, Y: c.ScreenHeight / 2}
}

func (c Config) Validate() error {
	if c.ScreenWidth <= c.FoodMargin || c.ScreenHeight <= c.FoodMargin {
		return errors.Errorf("screen %dx%d too small for food margin %d", c.ScreenWidth, c.ScreenHeight, c.FoodMargin)
	}
	if c.Step <= 0 {
		return errors.Errorf("step must be positive, got %d", c.Step)
	}
	if (c.ScreenWidth-c.FoodMargin)/c.Step < 2 || (c.ScreenHeight-c.FoodMargin)/c.Step < 2 {
		return errors.New("no room to spawn food")
	}
	if c.BoxSize <= 0 {
		return errors.Errorf("box size must be positive, got %d", c.BoxSize)
	}
	if c.InitialSpeed <= 0 {
		return errors.Errorf("initial speed must be positive, got %d", c.InitialSpeed)
	}
	if c.InitialLength < 1 {
		return errors.Errorf("initial length must be at least 1, got %d", c.InitialLength)
	}
	return nil
}
