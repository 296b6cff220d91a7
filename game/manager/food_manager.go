package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snakey-game/game/entity"
	"snakey-game/game/types"
)

// minCell is the smallest grid index food may land on, keeping it off the
// top and left edges.
const minCell = 2

type FoodManager struct {
	rng        *rand.Rand
	step       int
	maxX, maxY int // largest grid index on each axis
}

func NewFoodManager(cfg types.Config) *FoodManager {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		rng:  rand.New(rand.NewSource(seed)),
		step: cfg.Step,
		maxX: (cfg.ScreenWidth - cfg.FoodMargin) / cfg.Step,
		maxY: (cfg.ScreenHeight - cfg.FoodMargin) / cfg.Step,
	}
}

// SpawnOrHold places eaten food at a fresh random cell. Food that is still
// on screen is left alone. It reports whether the food moved.
func (fm *FoodManager) SpawnOrHold(food *entity.Food) bool {
	if food.Spawned {
		return false
	}
	food.Place(fm.GenerateFood())
	return true
}

// GenerateFood returns a random position on the step grid.
func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.randCell(fm.maxX) * fm.step,
		Y: fm.randCell(fm.maxY) * fm.step,
	}
}

func (fm *FoodManager) randCell(max int) int {
	return minCell + fm.rng.Intn(max-minCell+1)
}
