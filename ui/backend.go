package ui

import (
	"snakey-game/game"
	"snakey-game/game/types"
)

// Canvas is the drawing surface the renderer issues commands to.
type Canvas interface {
	SetDrawColor(c types.Color)
	FillRect(r types.Rect) error
	DrawRect(r types.Rect) error
	Clear()
	Present()
}

// InputSource hands out all events that arrived since the last call.
type InputSource interface {
	Poll() []game.Event
}

// Backend is a window or terminal the game runs in.
type Backend interface {
	Canvas
	InputSource
	Close() error
}
