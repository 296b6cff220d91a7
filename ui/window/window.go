package window

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"snakey-game/game"
	"snakey-game/game/types"
)

// Window is a ui.Backend backed by a raylib window. raylib must be driven
// from the main goroutine.
type Window struct {
	color   color.RGBA
	drawing bool
}

// Open creates the game window. raylib reports failures only through
// IsWindowReady, so that is what is checked.
func Open(cfg types.Config) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, errors.Errorf("initialising %dx%d window", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	// Escape must reach the game as a key instead of closing the window.
	rl.SetExitKey(rl.KeyNull)

	return &Window{color: rl.White}, nil
}

func (w *Window) Poll() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() {
		events = append(events, game.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		events = append(events, game.KeyEvent(mapKey(key)))
	}
	return events
}

func mapKey(key int32) game.Key {
	switch key {
	case rl.KeyEscape:
		return game.KeyEscape
	case rl.KeyUp:
		return game.KeyUp
	case rl.KeyDown:
		return game.KeyDown
	case rl.KeyLeft:
		return game.KeyLeft
	case rl.KeyRight:
		return game.KeyRight
	case rl.KeyB:
		return game.KeyGrow
	}
	return game.KeyUnknown
}

func (w *Window) SetDrawColor(c types.Color) {
	w.color = rl.NewColor(c.R, c.G, c.B, 255)
}

func (w *Window) Clear() {
	w.begin()
	rl.ClearBackground(w.color)
}

func (w *Window) FillRect(r types.Rect) error {
	w.begin()
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height), w.color)
	return nil
}

func (w *Window) DrawRect(r types.Rect) error {
	w.begin()
	rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height), w.color)
	return nil
}

// Present ends the frame. raylib also polls input here.
func (w *Window) Present() {
	w.begin()
	rl.EndDrawing()
	w.drawing = false
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func (w *Window) begin() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
}
