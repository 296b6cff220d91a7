package manager

import (
	"snakey-game/game/entity"
	"snakey-game/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

type CollisionManager struct {
	boxSize       int
	step          int
	selfCollision bool
}

func NewCollisionManager(boxSize, step int, selfCollision bool) *CollisionManager {
	return &CollisionManager{
		boxSize:       boxSize,
		step:          step,
		selfCollision: selfCollision,
	}
}

// Check runs the fatal collision checks for the snake's current head.
// Self collision is only tested when enabled.
func (cm *CollisionManager) Check(snake *entity.Snake, border *entity.Border) CollisionType {
	if cm.HitsBorder(snake, border) {
		return WallCollision
	}
	if cm.selfCollision && cm.HitsSelf(snake) {
		return SelfCollision
	}
	return NoCollision
}

// HitsBorder reports whether the head box touches or crosses the border.
func (cm *CollisionManager) HitsBorder(snake *entity.Snake, border *entity.Border) bool {
	return !border.Contains(snake.Head, cm.boxSize)
}

// HitsSelf checks the head against every tail segment except the newest,
// which always sits one step behind the head. Segments overlap on screen, so
// only a head landing on a segment's grid cell counts.
func (cm *CollisionManager) HitsSelf(snake *entity.Snake) bool {
	tolerance := cm.step / 2
	for i := 1; i < snake.Tail.Len(); i++ {
		if types.Intersects(snake.Head, snake.Tail.At(i), tolerance) {
			return true
		}
	}
	return false
}

// HitsFood reports whether the head overlaps spawned food.
func (cm *CollisionManager) HitsFood(snake *entity.Snake, food *entity.Food) bool {
	if !food.Spawned {
		return false
	}
	return types.Intersects(snake.Head, food.Position, cm.boxSize/2)
}
