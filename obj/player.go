package obj

import (
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Player is the character moved by the keyboard. Horizontal moves and jump
// arcs are applied speculatively by the caller, which reverts them when the
// new rect hits the ground.
type Player struct {
	sprite
	spec prefabs.PlayerSpec

	// dx is the last horizontal direction, reused while in a jump arc.
	dx        int
	walkFrame int
	jumping   bool
	jumpLeft  int
	falling   bool
}

func NewPlayer(img image.Image, spec prefabs.PlayerSpec, pos common.Position) *Player {
	return &Player{
		sprite: newSprite(img, spec.EntitySpec, pos),
		spec:   spec,
	}
}

// MoveX shifts the player by dir horizontal steps and makes dir the
// equipped direction.
func (p *Player) MoveX(dir int) {
	p.rect = p.rect.Translate(dir*p.spec.Step, 0)
	if dir == 0 {
		return
	}
	p.dx = dir
	p.walkFrame = (p.walkFrame + 1) % max(p.spec.Frames, 1)
	p.updateFrame()
}

// MoveY shifts the player by units jump steps (negative is up).
func (p *Player) MoveY(units int) {
	p.rect = p.rect.Translate(0, units*p.spec.JumpStep)
}

// Jump starts a jump arc.
func (p *Player) Jump() {
	p.jumping = true
	p.jumpLeft = p.spec.JumpTicks
}

// Walk advances the jump arc by one tick: one step up, then one step along
// the equipped direction. Hitting the ground on the way up ends the arc.
func (p *Player) Walk(ground []common.Rect) {
	if !p.jumping {
		return
	}

	up := p.rect.Translate(0, -p.spec.JumpStep)
	if hitsAny(up, ground) {
		p.jumping = false
		p.jumpLeft = 0
		return
	}

	p.rect = up
	if p.dx != 0 {
		if side := p.rect.Translate(p.dx*p.spec.Step, 0); !hitsAny(side, ground) {
			p.rect = side
		}
	}

	p.jumpLeft--
	if p.jumpLeft <= 0 {
		p.jumping = false
	}
}

// Fall applies one tick of gravity and stops on the ground.
func (p *Player) Fall(ground []common.Rect) {
	if below := p.rect.Translate(0, p.spec.FallStep); !hitsAny(below, ground) {
		p.rect = below
		p.falling = true
		return
	}
	if p.falling {
		// landed
		p.falling = false
		p.dx = 0
	}
}

func (p *Player) Jumping() bool { return p.jumping }
func (p *Player) Falling() bool { return p.falling }

// Row 0 of the sheet faces right, row 1 faces left.
func (p *Player) updateFrame() {
	row := 0
	if p.dx < 0 {
		row = 1
	}
	p.frame(p.walkFrame, row)
}

func hitsAny(r common.Rect, rects []common.Rect) bool {
	for _, o := range rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
