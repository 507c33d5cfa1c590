package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/obj"
)

// Texture is an ebiten image owned by one entity or screen.
type Texture struct {
	img      *ebiten.Image
	r        *Renderer
	released bool
}

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Release marks the texture as dead. The GPU image is deallocated at the
// next Present that no longer shows it.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	t.r.pending = append(t.r.pending, t)
}

type drawOp struct {
	tex      *Texture
	src, dst image.Rectangle
}

// Renderer records the draw calls made while the game updates and replays
// the last presented frame whenever ebiten asks for a draw. A presented
// frame stays on screen until the next Present.
type Renderer struct {
	width, height int

	ops     []drawOp
	frame   []drawOp
	pending []*Texture
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

func (r *Renderer) NewTexture(img image.Image) (obj.Texture, error) {
	if img == nil {
		return nil, errNilImage
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errEmptyImage
	}
	return &Texture{img: ebiten.NewImageFromImage(img), r: r}, nil
}

func (r *Renderer) Draw(tex obj.Texture, src, dst *common.Rect) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.released {
		return
	}
	op := drawOp{tex: t, src: t.img.Bounds(), dst: image.Rect(0, 0, r.width, r.height)}
	if src != nil {
		op.src = toRectangle(*src).Intersect(op.src)
	}
	if dst != nil {
		op.dst = toRectangle(*dst)
	}
	if op.src.Empty() || op.dst.Empty() {
		return
	}
	r.ops = append(r.ops, op)
}

// Clear drops everything recorded since the last Present.
func (r *Renderer) Clear() {
	r.ops = r.ops[:0]
}

// Present makes the recorded ops the visible frame and deallocates released
// textures the new frame no longer draws.
func (r *Renderer) Present() {
	r.frame = append(r.frame[:0], r.ops...)
	r.ops = r.ops[:0]

	visible := make(map[*Texture]bool, len(r.frame))
	for _, op := range r.frame {
		visible[op.tex] = true
	}
	kept := r.pending[:0]
	for _, t := range r.pending {
		if visible[t] {
			kept = append(kept, t)
			continue
		}
		t.img.Deallocate()
	}
	r.pending = kept
}

// Replay draws the presented frame onto screen.
func (r *Renderer) Replay(screen *ebiten.Image) {
	for _, op := range r.frame {
		sub := op.tex.img.SubImage(op.src).(*ebiten.Image)
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(
			float64(op.dst.Dx())/float64(op.src.Dx()),
			float64(op.dst.Dy())/float64(op.src.Dy()),
		)
		opts.GeoM.Translate(float64(op.dst.Min.X), float64(op.dst.Min.Y))
		screen.DrawImage(sub, opts)
	}
}

// Frame returns the number of ops in the presented frame.
func (r *Renderer) Frame() int { return len(r.frame) }

func toRectangle(rc common.Rect) image.Rectangle {
	return image.Rect(rc.X, rc.Y, rc.X+rc.Width, rc.Y+rc.Height)
}
