package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Ghost drifts sideways by its reach and back.
type Ghost struct {
	sprite
	baseX   int
	reach   int
	frames  int
	shifted bool
}

func NewGhost(img image.Image, spec prefabs.EntitySpec, pos common.Position) *Ghost {
	g := &Ghost{
		sprite: newSprite(img, spec, pos),
		reach:  spec.Reach,
		frames: max(spec.Frames, 1),
	}
	g.baseX = g.rect.X
	return g
}

func (g *Ghost) SwitchPosition() {
	g.shifted = !g.shifted
	g.rect.X = g.baseX
	col := 0
	if g.shifted {
		g.rect.X += g.reach
		col = 1 % g.frames
	}
	g.frame(col, 0)
}

func (g *Ghost) Shifted() bool { return g.shifted }
