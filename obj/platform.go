package obj

import (
	"image"
	"image/color"

	"github.com/milk9111/sheetrunner/common"
)

// Texture is a render-ready image. Whoever creates a texture owns it and
// must release it exactly once.
type Texture interface {
	Size() (w, h int)
	Release()
}

// Renderer uploads decoded images and draws textures onto the current frame.
// A nil src draws the whole texture, a nil dst fills the whole frame.
type Renderer interface {
	NewTexture(img image.Image) (Texture, error)
	Draw(tex Texture, src, dst *common.Rect)
	Clear()
	Present()
}

// ImageDecoder decodes an image file into memory.
type ImageDecoder interface {
	DecodeImage(path string) (image.Image, error)
}

// Font renders text into a decoded image, wrapping lines at wrap pixels.
type Font interface {
	Render(text string, c color.Color, wrap int) (image.Image, error)
	Close() error
}

type Typesetter interface {
	OpenFont(path string, size float64) (Font, error)
}

// Music is a looping background track. Volume ranges over 0..1.
type Music interface {
	Play()
	Stop()
	SetVolume(v float64)
	Close() error
}

// Sound is a short effect that may be played many times.
type Sound interface {
	Play()
	SetVolume(v float64)
	Close() error
}

type Mixer interface {
	LoadMusic(path string) (Music, error)
	LoadSound(path string) (Sound, error)
}

// Clock provides the millisecond tick count and the blocking pause used by
// the transition screens.
type Clock interface {
	Ticks() int64
	Delay(ms int64)
}

// Platform bundles every collaborator the level engine talks to.
type Platform struct {
	Images   ImageDecoder
	Renderer Renderer
	Fonts    Typesetter
	Audio    Mixer
	Clock    Clock
}
