package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Plantivorus is a carnivorous plant. Its sheet stacks the closed, half open
// and open frames vertically.
type Plantivorus struct {
	sprite
	frames int
	phase  int
}

func NewPlantivorus(img image.Image, spec prefabs.EntitySpec, pos common.Position) *Plantivorus {
	return &Plantivorus{sprite: newSprite(img, spec, pos), frames: max(spec.Frames, 1)}
}

func (p *Plantivorus) SwitchPosition() {
	p.phase = (p.phase + 1) % p.frames
	p.frame(0, p.phase)
}

func (p *Plantivorus) Phase() int { return p.phase }
