package game

import (
	"log"
	"time"

	"snakey-game/game/entity"
	"snakey-game/game/manager"
	"snakey-game/game/types"
)

// Outcome is the state of the session after a frame.
type Outcome int

const (
	Running Outcome = iota
	WallHit
	SelfHit
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case WallHit:
		return "hit the wall"
	case SelfHit:
		return "bit itself"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Game is one play session. All state is owned here and mutated only from
// the loop goroutine.
type Game struct {
	Config  types.Config
	Snake   *entity.Snake
	Food    *entity.Food
	Border  *entity.Border
	outcome Outcome

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

func NewGame(cfg types.Config) *Game {
	g := &Game{
		Config:       cfg,
		Snake:        entity.NewSnake(cfg.PlayerStart(), cfg.InitialLength, cfg.InitialSpeed, types.White),
		Food:         entity.NewFood(cfg.FoodStart),
		Border:       entity.NewBorder(cfg.ScreenWidth, cfg.ScreenHeight),
		collisionMgr: manager.NewCollisionManager(cfg.BoxSize, cfg.Step, cfg.SelfCollision),
		foodMgr:      manager.NewFoodManager(cfg),
		stateMgr:     manager.NewStateManager(cfg.InitialLength),
	}
	log.Printf("session %s started: %dx%d, speed %d", g.stateMgr.Stats().UUID, cfg.ScreenWidth, cfg.ScreenHeight, cfg.InitialSpeed)
	return g
}

// HandleEvent applies one input event. It returns true when the player asked
// to leave.
func (g *Game) HandleEvent(ev Event) bool {
	if ev.Kind == EventQuit {
		g.finish(Quit)
		return true
	}

	switch ev.Key {
	case KeyEscape:
		g.finish(Quit)
		return true
	case KeyUp:
		g.Snake.SetDirection(types.Up)
	case KeyDown:
		g.Snake.SetDirection(types.Down)
	case KeyLeft:
		g.Snake.SetDirection(types.Left)
	case KeyRight:
		g.Snake.SetDirection(types.Right)
	case KeyGrow:
		g.Snake.Grow()
	}
	return false
}

// Step advances the simulation by one frame: move, border and self checks,
// then food. It does not draw anything.
func (g *Game) Step() Outcome {
	if g.outcome != Running {
		return g.outcome
	}

	g.Snake.Advance(g.Config.Step)
	g.stateMgr.RecordFrame(g.Snake.Length)

	switch g.collisionMgr.Check(g.Snake, g.Border) {
	case manager.WallCollision:
		g.finish(WallHit)
		return g.outcome
	case manager.SelfCollision:
		g.finish(SelfHit)
		return g.outcome
	}

	if g.collisionMgr.HitsFood(g.Snake, g.Food) {
		g.Food.MarkEaten()
		g.Snake.Eat()
		g.stateMgr.RecordFood()
		log.Printf("food eaten at %v, length %d, speed %d", g.Food.Position, g.Snake.Length, g.Snake.Speed)
	}

	if g.foodMgr.SpawnOrHold(g.Food) {
		log.Printf("food spawned at %v", g.Food.Position)
	}
	return Running
}

// FrameDelay is how long the loop waits between frames at the current speed.
func (g *Game) FrameDelay() time.Duration {
	return time.Second / time.Duration(g.Snake.Speed)
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Over() bool {
	return g.outcome != Running
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}

func (g *Game) Summary() string {
	return g.stateMgr.Summary()
}

func (g *Game) finish(o Outcome) {
	if g.outcome != Running {
		return
	}
	g.outcome = o
	g.stateMgr.End(o.String())
	log.Printf("session %s ended: %s", g.stateMgr.Stats().UUID, o)
}
