package ui

import (
	"github.com/pkg/errors"

	"snakey-game/game"
	"snakey-game/game/types"
)

// Renderer turns game state into canvas commands. It only reads the game.
type Renderer struct {
	background types.Color
}

func NewRenderer() *Renderer {
	return &Renderer{background: types.Black}
}

// Begin clears the canvas for a new frame.
func (r *Renderer) Begin(c Canvas) {
	c.SetDrawColor(r.background)
	c.Clear()
}

// Draw paints the snake, the border and the food, in that order.
func (r *Renderer) Draw(c Canvas, g *game.Game) error {
	if err := r.drawSnake(c, g); err != nil {
		return err
	}

	c.SetDrawColor(g.Border.Color)
	if err := c.DrawRect(g.Border.Outline()); err != nil {
		return errors.Wrap(err, "drawing border")
	}

	if g.Food.Spawned {
		c.SetDrawColor(g.Food.Color)
		if err := c.FillRect(box(g.Food.Position, g.Config.BoxSize)); err != nil {
			return errors.Wrap(err, "drawing food")
		}
	}
	return nil
}

func (r *Renderer) drawSnake(c Canvas, g *game.Game) error {
	snake := g.Snake
	size := g.Config.BoxSize

	c.SetDrawColor(snake.Color)
	if err := c.FillRect(box(snake.Head, size)); err != nil {
		return errors.Wrap(err, "drawing player")
	}
	for i := 0; i < snake.Tail.Len(); i++ {
		if err := c.FillRect(box(snake.Tail.At(i), size)); err != nil {
			return errors.Wrapf(err, "drawing tail segment %d", i)
		}
	}
	return nil
}

func box(p types.Point, size int) types.Rect {
	return types.Rect{X: p.X, Y: p.Y, Width: size, Height: size}
}
