package entity

import "snakey-game/game/types"

// outlineInset is how much smaller the drawn outline is than the playable
// area, so its right and bottom edges stay on screen.
const outlineInset = 10

// Border is the fixed playfield boundary.
type Border struct {
	Origin types.Point
	Width  int
	Height int
	Color  types.Color
}

func NewBorder(width, height int) *Border {
	return &Border{
		Width:  width,
		Height: height,
		Color:  types.White,
	}
}

// Contains reports whether a box of edge margin placed at p lies strictly
// inside the border. Touching an edge counts as outside.
func (b *Border) Contains(p types.Point, margin int) bool {
	return p.X > b.Origin.X &&
		p.Y > b.Origin.Y &&
		p.X+margin < b.Origin.X+b.Width &&
		p.Y+margin < b.Origin.Y+b.Height
}

// Outline is the rectangle drawn on screen for the border.
func (b *Border) Outline() types.Rect {
	return types.Rect{
		X:      b.Origin.X,
		Y:      b.Origin.Y,
		Width:  b.Width - outlineInset,
		Height: b.Height - outlineInset,
	}
}
