package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Monster paces its row between columns x1 and x2 (inclusive), one step per
// move, turning around at either end.
type Monster struct {
	sprite
	x1, x2 int
	step   int
	frames int
	dir    int
	anim   int
}

// NewMonster places a monster on column x1 of row, facing right. The bounds
// are swapped when given in reverse order.
func NewMonster(img image.Image, spec prefabs.EntitySpec, x1, x2, row int) *Monster {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return &Monster{
		sprite: newSprite(img, spec, common.NewPosition(x1, row)),
		x1:     x1 * common.CellSize,
		x2:     x2 * common.CellSize,
		step:   max(spec.Step, 1),
		frames: max(spec.Frames, 1),
		dir:    1,
	}
}

// Move advances the monster one patrol step.
func (m *Monster) Move() {
	m.rect = m.rect.Translate(m.dir*m.step, 0)
	switch {
	case m.dir > 0 && m.rect.X >= m.x2:
		m.rect.X = m.x2
		m.dir = -1
	case m.dir < 0 && m.rect.X <= m.x1:
		m.rect.X = m.x1
		m.dir = 1
	}

	m.anim = (m.anim + 1) % m.frames
	row := 0
	if m.dir < 0 {
		row = 1
	}
	m.frame(m.anim, row)
}

// Bounds returns the patrol interval in world pixels.
func (m *Monster) Bounds() (int, int) { return m.x1, m.x2 }

// Direction is +1 when walking right and -1 when walking left.
func (m *Monster) Direction() int { return m.dir }
