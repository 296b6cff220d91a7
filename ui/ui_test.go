package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"snakey-game/game"
	"snakey-game/game/types"
)

type drawCall struct {
	op    string
	color types.Color
	rect  types.Rect
}

// fakeBackend records canvas commands and replays queued input, one batch
// per frame.
type fakeBackend struct {
	color    types.Color
	calls    []drawCall
	frames   [][]game.Event
	polls    int
	presents int
	fillErr  error
}

func (f *fakeBackend) SetDrawColor(c types.Color) { f.color = c }

func (f *fakeBackend) FillRect(r types.Rect) error {
	if f.fillErr != nil {
		return f.fillErr
	}
	f.calls = append(f.calls, drawCall{"fill", f.color, r})
	return nil
}

func (f *fakeBackend) DrawRect(r types.Rect) error {
	f.calls = append(f.calls, drawCall{"outline", f.color, r})
	return nil
}

func (f *fakeBackend) Clear() {
	f.calls = append(f.calls, drawCall{op: "clear", color: f.color})
}

func (f *fakeBackend) Present() { f.presents++ }

func (f *fakeBackend) Poll() []game.Event {
	defer func() { f.polls++ }()
	if f.polls < len(f.frames) {
		return f.frames[f.polls]
	}
	return nil
}

func (f *fakeBackend) Close() error { return nil }

func newTestGame() *game.Game {
	cfg := types.DefaultConfig()
	cfg.Seed = 3
	return game.NewGame(cfg)
}

func TestRendererDrawOrder(t *testing.T) {
	g := newTestGame()
	g.Snake.Length = 3
	g.Step()
	g.Step()

	fb := &fakeBackend{}
	r := NewRenderer()
	r.Begin(fb)
	if err := r.Draw(fb, g); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	want := []drawCall{
		{"clear", types.Black, types.Rect{}},
		{"fill", types.White, types.Rect{X: 300, Y: 380, Width: 20, Height: 20}},
		{"fill", types.White, types.Rect{X: 300, Y: 390, Width: 20, Height: 20}},
		{"fill", types.White, types.Rect{X: 300, Y: 400, Width: 20, Height: 20}},
		{"outline", types.White, types.Rect{X: 0, Y: 0, Width: 590, Height: 790}},
		{"fill", types.Red, types.Rect{X: 30, Y: 30, Width: 20, Height: 20}},
	}
	if len(fb.calls) != len(want) {
		t.Fatalf("Expected %d draw calls, got %d: %+v", len(want), len(fb.calls), fb.calls)
	}
	for i := range want {
		if fb.calls[i] != want[i] {
			t.Errorf("Call %d: expected %+v, got %+v", i, want[i], fb.calls[i])
		}
	}
}

func TestRendererDoesNotMutate(t *testing.T) {
	g := newTestGame()
	g.Food.MarkEaten()
	head := g.Snake.Head

	fb := &fakeBackend{}
	if err := NewRenderer().Draw(fb, g); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if g.Snake.Head != head {
		t.Error("Expected drawing not to move the snake")
	}
	if g.Food.Spawned {
		t.Error("Expected drawing not to respawn food")
	}
	for _, c := range fb.calls {
		if c.color == types.Red {
			t.Error("Expected eaten food not to be drawn")
		}
	}
}

func TestRendererPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	fb := &fakeBackend{fillErr: boom}
	err := NewRenderer().Draw(fb, newTestGame())
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped boom error, got %v", err)
	}
}

func newTestLoop(fb *fakeBackend) (*Loop, *[]time.Duration) {
	var sleeps []time.Duration
	l := NewLoop(fb)
	l.Sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return l, &sleeps
}

func TestLoopQuitsOnEscape(t *testing.T) {
	fb := &fakeBackend{frames: [][]game.Event{
		nil,
		{game.KeyEvent(game.KeyLeft), game.KeyEvent(game.KeyEscape), game.KeyEvent(game.KeyDown)},
	}}
	l, sleeps := newTestLoop(fb)
	g := newTestGame()

	outcome, err := l.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome != game.Quit {
		t.Errorf("Expected Quit, got %v", outcome)
	}
	if g.Stats().Frames != 1 {
		t.Errorf("Expected no update after quit, got %d frames", g.Stats().Frames)
	}
	if g.Snake.Direction != types.Left {
		t.Errorf("Expected events after escape to be dropped, direction %v", g.Snake.Direction)
	}
	if fb.presents != 1 || len(*sleeps) != 1 {
		t.Errorf("Expected 1 presented frame and 1 sleep, got %d and %d", fb.presents, len(*sleeps))
	}
}

func TestLoopEndsAtBorder(t *testing.T) {
	fb := &fakeBackend{}
	l, sleeps := newTestLoop(fb)
	g := newTestGame()

	outcome, err := l.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome != game.WallHit {
		t.Errorf("Expected WallHit, got %v", outcome)
	}
	// 39 frames are played before the head reaches y=0 on the 40th.
	if fb.presents != 39 {
		t.Errorf("Expected 39 presented frames, got %d", fb.presents)
	}
	for _, d := range *sleeps {
		if d != 100*time.Millisecond {
			t.Fatalf("Expected 100ms sleeps at speed 10, got %v", d)
		}
	}
}

func TestLoopSkipsFrameOnDrawError(t *testing.T) {
	fb := &fakeBackend{
		frames:  [][]game.Event{nil, nil, {game.QuitEvent()}},
		fillErr: errors.New("no canvas"),
	}
	l, sleeps := newTestLoop(fb)

	outcome, err := l.Run(context.Background(), newTestGame())
	if err != nil {
		t.Fatalf("Expected draw errors not to abort, got %v", err)
	}
	if outcome != game.Quit {
		t.Errorf("Expected Quit, got %v", outcome)
	}
	if fb.presents != 0 {
		t.Errorf("Expected failed frames not to be presented, got %d", fb.presents)
	}
	if len(*sleeps) != 2 {
		t.Errorf("Expected pacing to continue, got %d sleeps", len(*sleeps))
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	fb := &fakeBackend{}
	l := NewLoop(fb)
	ctx, cancel := context.WithCancel(context.Background())
	l.Sleep = func(time.Duration) { cancel() }

	outcome, err := l.Run(ctx, newTestGame())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if outcome != game.Running {
		t.Errorf("Expected game still running, got %v", outcome)
	}
}
