package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Door is the level exit.
type Door struct {
	sprite
}

func NewDoor(img image.Image, spec prefabs.EntitySpec, pos common.Position) *Door {
	return &Door{sprite: newSprite(img, spec, pos)}
}
