package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Spike is a floor hazard that cycles between extended and retracted frames.
// Its rect does not change with the frame.
type Spike struct {
	sprite
	frames int
	phase  int
}

func NewSpike(img image.Image, spec prefabs.EntitySpec, pos common.Position) *Spike {
	return &Spike{sprite: newSprite(img, spec, pos), frames: max(spec.Frames, 1)}
}

// SwitchSpikes advances the spike to its next animation phase.
func (s *Spike) SwitchSpikes() {
	s.phase = (s.phase + 1) % s.frames
	s.frame(s.phase, 0)
}

func (s *Spike) Phase() int { return s.phase }
