package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Pencil is a decorative collectible. Nothing collides with it.
type Pencil struct {
	sprite
}

func NewPencil(img image.Image, spec prefabs.EntitySpec, pos common.Position) *Pencil {
	return &Pencil{sprite: newSprite(img, spec, pos)}
}
