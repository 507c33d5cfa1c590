package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// TimeBonus adds seconds to the level countdown when the player touches it.
type TimeBonus struct {
	sprite
}

func NewTimeBonus(img image.Image, spec prefabs.EntitySpec, pos common.Position) *TimeBonus {
	return &TimeBonus{sprite: newSprite(img, spec, pos)}
}
