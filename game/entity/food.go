package entity

import "snakey-game/game/types"

// Food waits at Position while Spawned is set. Once eaten it stays hidden
// until the food manager places it again.
type Food struct {
	Position types.Point
	Spawned  bool
	Color    types.Color
}

func NewFood(start types.Point) *Food {
	return &Food{
		Position: start,
		Spawned:  true,
		Color:    types.Red,
	}
}

func (f *Food) MarkEaten() {
	f.Spawned = false
}

// Place moves the food to p and shows it.
func (f *Food) Place(p types.Point) {
	f.Position = p
	f.Spawned = true
}
