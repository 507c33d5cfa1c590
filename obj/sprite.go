package obj

import (
	"errors"
	"image"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

var errNoImage = errors.New("no decoded image")

// Entity is anything a level draws and tests for collisions.
type Entity interface {
	Rect() common.Rect
	Render(r Renderer)
}

// sprite is the part every entity shares: a decoded image that is turned
// into an exclusively owned texture, the frame of the sheet to draw and the
// world-space rect.
type sprite struct {
	image   image.Image
	texture Texture
	src     common.Rect
	rect    common.Rect
}

func newSprite(img image.Image, spec prefabs.EntitySpec, pos common.Position) sprite {
	x, y := pos.Pixel()
	return sprite{
		image: img,
		src:   common.Rect{Width: spec.Width, Height: spec.Height},
		rect: common.Rect{
			X:      x + spec.OffsetX,
			Y:      y + spec.OffsetY,
			Width:  spec.Width,
			Height: spec.Height,
		},
	}
}

// initTexture uploads the decoded image and drops it. The texture is owned
// by the sprite from then on.
func (s *sprite) initTexture(r Renderer) error {
	if s.image == nil {
		return errNoImage
	}
	tex, err := r.NewTexture(s.image)
	if err != nil {
		return err
	}
	s.texture = tex
	s.image = nil
	return nil
}

func (s *sprite) release() {
	if s.texture != nil {
		s.texture.Release()
		s.texture = nil
	}
	s.image = nil
}

func (s *sprite) Rect() common.Rect { return s.rect }

func (s *sprite) Render(r Renderer) {
	if s.texture == nil {
		return
	}
	src, dst := s.src, s.rect
	r.Draw(s.texture, &src, &dst)
}

// frame selects column col and row row of the sheet.
func (s *sprite) frame(col, row int) {
	s.src.X = col * s.src.Width
	s.src.Y = row * s.src.Height
}
