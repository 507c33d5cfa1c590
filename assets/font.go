package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/milk9111/sheetrunner/obj"
)

// Typesetter opens TrueType fonts from disk.
type Typesetter struct{}

func (Typesetter) OpenFont(path string, size float64) (obj.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", path, err)
	}
	return &Font{face: face}, nil
}

// Font rasterizes text with one face.
type Font struct {
	face font.Face
}

// NewFont wraps an existing face.
func NewFont(face font.Face) *Font {
	return &Font{face: face}
}

// Render draws text onto a transparent image just large enough to hold it.
// Lines break at newlines and, when wrap is positive, between words so that
// no line is wider than wrap pixels.
func (f *Font) Render(text string, c color.Color, wrap int) (image.Image, error) {
	if f.face == nil {
		return nil, fmt.Errorf("font is closed")
	}
	lines := wrapText(f.face, text, wrap)

	m := f.face.Metrics()
	lineHeight := m.Height.Ceil()
	width := 1
	for _, l := range lines {
		width = max(width, font.MeasureString(f.face, l).Ceil())
	}
	height := max(lineHeight*len(lines), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: f.face}
	for i, l := range lines {
		d.Dot = fixed.Point26_6{X: 0, Y: m.Ascent + fixed.I(i*lineHeight)}
		d.DrawString(l)
	}
	return dst, nil
}

func (f *Font) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}

// wrapText splits text at newlines, then greedily fills each line with whole
// words up to wrap pixels. A word wider than wrap gets a line of its own.
func wrapText(face font.Face, text string, wrap int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if wrap <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if font.MeasureString(face, candidate).Ceil() > wrap {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
