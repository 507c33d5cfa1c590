package assets

import "github.com/milk9111/sheetrunner/obj"

// NewPlatform wires the ebiten implementations of every collaborator the
// level engine needs.
func NewPlatform(r *Renderer, c *Clock) *obj.Platform {
	return &obj.Platform{
		Images:   Store{},
		Renderer: r,
		Fonts:    Typesetter{},
		Audio:    NewMixer(),
		Clock:    c,
	}
}
