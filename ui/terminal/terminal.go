// Package terminal runs the game inside a text terminal using tcell. Screen
// units are mapped onto character cells, one cell per 10x20 block.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"snakey-game/game"
	"snakey-game/game/types"
)

const (
	cellWidth  = 10
	cellHeight = 20

	eventBuffer = 64
	fillRune    = '█'
)

var ErrEmptyRect = errors.New("rectangle has no area")

// Terminal is a ui.Backend drawing into a tcell screen.
type Terminal struct {
	screen tcell.Screen
	color  tcell.Color
	style  tcell.Style
	events chan tcell.Event
	done   chan struct{}
}

// Open initialises the controlling terminal.
func Open() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating terminal screen")
	}
	return New(s)
}

// New takes ownership of s and starts reading its events.
func New(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising terminal screen")
	}
	s.HideCursor()

	t := &Terminal{
		screen: s,
		color:  tcell.ColorWhite,
		style:  tcell.StyleDefault,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.readEvents()
	return t, nil
}

// readEvents forwards blocking PollEvent results so Poll never blocks.
// PollEvent returns nil once the screen is finalised.
func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Poll() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := t.translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) (game.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return game.QuitEvent(), true
		}
		return game.KeyEvent(mapKey(ev)), true
	}
	return game.Event{}, false
}

func mapKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyEscape:
		return game.KeyEscape
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyRune:
		if ev.Rune() == 'b' || ev.Rune() == 'B' {
			return game.KeyGrow
		}
	}
	return game.KeyUnknown
}

func (t *Terminal) SetDrawColor(c types.Color) {
	t.color = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	t.style = tcell.StyleDefault.Foreground(t.color).Background(tcell.ColorBlack)
}

// Clear paints every cell with the current draw color.
func (t *Terminal) Clear() {
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.color))
}

func (t *Terminal) FillRect(r types.Rect) error {
	if r.Width <= 0 || r.Height <= 0 {
		return ErrEmptyRect
	}
	x0, y0, x1, y1 := cells(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t.screen.SetContent(x, y, fillRune, nil, t.style)
		}
	}
	return nil
}

func (t *Terminal) DrawRect(r types.Rect) error {
	if r.Width <= 0 || r.Height <= 0 {
		return ErrEmptyRect
	}
	x0, y0, x1, y1 := cells(r)
	for x := x0 + 1; x < x1; x++ {
		t.screen.SetContent(x, y0, tcell.RuneHLine, nil, t.style)
		t.screen.SetContent(x, y1, tcell.RuneHLine, nil, t.style)
	}
	for y := y0 + 1; y < y1; y++ {
		t.screen.SetContent(x0, y, tcell.RuneVLine, nil, t.style)
		t.screen.SetContent(x1, y, tcell.RuneVLine, nil, t.style)
	}
	t.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, t.style)
	t.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, t.style)
	t.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, t.style)
	t.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, t.style)
	return nil
}

func (t *Terminal) Present() {
	t.screen.Show()
}

func (t *Terminal) Close() error {
	close(t.done)
	t.screen.Fini()
	return nil
}

// cells returns the inclusive cell range covered by r.
func cells(r types.Rect) (x0, y0, x1, y1 int) {
	return r.X / cellWidth, r.Y / cellHeight,
		(r.X + r.Width - 1) / cellWidth, (r.Y + r.Height - 1) / cellHeight
}
