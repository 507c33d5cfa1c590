package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Arachne hangs from its cell and drops down by its reach every other
// switch, moving its rect with it.
type Arachne struct {
	sprite
	baseY  int
	reach  int
	frames int
	down   bool
}

func NewArachne(img image.Image, spec prefabs.EntitySpec, pos common.Position) *Arachne {
	a := &Arachne{
		sprite: newSprite(img, spec, pos),
		reach:  spec.Reach,
		frames: max(spec.Frames, 1),
	}
	a.baseY = a.rect.Y
	return a
}

func (a *Arachne) SwitchPosition() {
	a.down = !a.down
	a.rect.Y = a.baseY
	col := 0
	if a.down {
		a.rect.Y += a.reach
		col = 1 % a.frames
	}
	a.frame(col, 0)
}

func (a *Arachne) Down() bool { return a.down }
