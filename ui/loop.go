package ui

import (
	"context"
	"log"
	"time"

	"snakey-game/game"
)

// Loop drives a game on a backend until the player quits or dies.
type Loop struct {
	Backend  Backend
	Renderer *Renderer
	Sleep    func(time.Duration)
}

func NewLoop(b Backend) *Loop {
	return &Loop{
		Backend:  b,
		Renderer: NewRenderer(),
		Sleep:    time.Sleep,
	}
}

// Run plays g to the end and returns how it ended. A cancelled context stops
// the loop between frames.
func (l *Loop) Run(ctx context.Context, g *game.Game) (game.Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return g.Outcome(), err
		}

		for _, ev := range l.Backend.Poll() {
			if g.HandleEvent(ev) {
				return g.Outcome(), nil
			}
		}

		l.Renderer.Begin(l.Backend)

		if outcome := g.Step(); outcome != game.Running {
			return outcome, nil
		}

		if err := l.Renderer.Draw(l.Backend, g); err != nil {
			log.Printf("frame skipped: %v", err)
		} else {
			l.Backend.Present()
		}

		l.Sleep(g.FrameDelay())
	}
}
